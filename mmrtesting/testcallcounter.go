package mmrtesting

import "sync"

// TestCallCounter records how many times each named method of a test double
// was called
type TestCallCounter struct {
	mu          sync.Mutex
	MethodCalls map[string]int
}

func (r *TestCallCounter) IncMethodCall(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MethodCalls == nil {
		r.MethodCalls = make(map[string]int)
	}
	r.MethodCalls[name]++
	return r.MethodCalls[name]
}

func (r *TestCallCounter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.MethodCalls = make(map[string]int)
}

func (r *TestCallCounter) MethodCallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.MethodCalls[name]
}
