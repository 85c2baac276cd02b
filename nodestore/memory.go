package nodestore

import (
	"bytes"
	"fmt"
	"sync"
)

// MemoryStore is an append only, slice backed, node store.
//
// Positions are one based and must be written in order, exactly once. It is
// safe for concurrent use, though the mmr accumulator only ever has a single
// writer.
type MemoryStore struct {
	opts  Options
	mu    sync.RWMutex
	nodes [][]byte
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, o := range opts {
		o(&s.opts)
	}
	if s.opts.Capacity > 0 {
		s.nodes = make([][]byte, 0, s.opts.Capacity)
	}
	return s
}

func (s *MemoryStore) Size() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.nodes))
}

func (s *MemoryStore) Get(pos uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos == 0 || pos > uint64(len(s.nodes)) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, pos)
	}
	return s.nodes[pos-1], nil
}

// Put stores a copy of value at pos, which must be Size() + 1
func (s *MemoryStore) Put(pos uint64, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := uint64(len(s.nodes))
	if pos != 0 && pos <= size {
		return fmt.Errorf("%w: %d", ErrExists, pos)
	}
	if pos != size+1 {
		return fmt.Errorf("%w: got %d, expected %d", ErrOutOfOrder, pos, size+1)
	}
	if s.opts.HashSize != 0 && len(value) != s.opts.HashSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrHashSize, len(value), s.opts.HashSize)
	}
	s.nodes = append(s.nodes, bytes.Clone(value))
	return nil
}
