package mmr

import (
	"bytes"
	"fmt"
	"hash"
	"sync"
)

// Accumulator maintains an append only mmr over a NodeStore.
//
// A single writer is assumed. Append is serialised against everything else: the
// leaf write, every carry merge and the root recompute happen under one
// exclusive lock, so readers only ever observe completed appends.
//
// The hasher is only used while the exclusive lock is held.
type Accumulator struct {
	mu     sync.RWMutex
	store  NodeStore
	hasher hash.Hash

	width uint64
	size  uint64
	root  []byte

	// failed is set when the store rejects a write or is missing a node. The
	// store may then hold nodes the accumulator has not counted, so the
	// instance refuses all further work.
	failed error
}

// NewAccumulator returns an accumulator over store.
//
// If the store implements Sizer and already holds nodes, the accumulator
// resumes from them. The existing size must be a complete mmr size, and the
// root is recomputed from the stored peaks.
func NewAccumulator(store NodeStore, hasher hash.Hash) (*Accumulator, error) {
	a := &Accumulator{
		store:  store,
		hasher: hasher,
	}

	sizer, ok := store.(Sizer)
	if !ok || sizer.Size() == 0 {
		return a, nil
	}

	var err error
	size := sizer.Size()
	if a.width, err = LeafCount(size); err != nil {
		return nil, fmt.Errorf("store size %d: %w", size, err)
	}
	a.size = size
	if a.root, err = a.rootAt(a.width); err != nil {
		return nil, err
	}
	return a, nil
}

// Append adds value as the next leaf and returns the new root.
//
// A store error is fatal. It is returned, wrapped in ErrStoreFailed, from that
// and every later call that needs the store.
func (a *Accumulator) Append(value []byte) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failed != nil {
		return nil, a.failed
	}
	if a.width == MaxWidth {
		return nil, fmt.Errorf("%w: accumulator is full", ErrInvalidInput)
	}

	size, err := AddLeaf(a.store, a.hasher, a.size, value)
	if err != nil {
		return nil, a.fail(err)
	}

	root, err := a.rootAt(a.width + 1)
	if err != nil {
		return nil, a.fail(err)
	}
	a.size = size
	a.width++
	a.root = root
	return bytes.Clone(root), nil
}

// Root returns the current root. It is nil until the first append.
func (a *Accumulator) Root() []byte {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return bytes.Clone(a.root)
}

// Width returns the number of leaves appended so far
func (a *Accumulator) Width() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.width
}

// Size returns the number of nodes, leaves and interior, written so far
func (a *Accumulator) Size() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// Get returns the stored hash for pos
func (a *Accumulator) Get(pos uint64) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if pos == 0 || pos > a.size {
		return nil, fmt.Errorf("%w: position %d, size %d", ErrPositionNotFound, pos, a.size)
	}
	return a.get(pos)
}

// PeakHashes returns the hashes of the current peaks, tallest first
func (a *Accumulator) PeakHashes() ([][]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.failed != nil {
		return nil, a.failed
	}
	if a.width == 0 {
		return nil, nil
	}
	return a.peakHashes(a.width)
}

// RootAt returns the root the accumulator had when it held width leaves.
//
// Because stored hashes are never changed, the peaks of every earlier state are
// still present and the historic root can be recomputed exactly.
func (a *Accumulator) RootAt(width uint64) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failed != nil {
		return nil, a.failed
	}
	if width == 0 || width > a.width {
		return nil, fmt.Errorf("%w: width %d, current width %d", ErrInvalidInput, width, a.width)
	}
	return a.rootAt(width)
}

// Err returns the error that stopped the accumulator, or nil
func (a *Accumulator) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.failed
}

// fail requires the exclusive lock
func (a *Accumulator) fail(err error) error {
	a.failed = fmt.Errorf("%w: %w", ErrStoreFailed, err)
	return a.failed
}

// rootAt requires the exclusive lock, as it uses the hasher
func (a *Accumulator) rootAt(width uint64) ([]byte, error) {
	peaks, err := a.peakHashes(width)
	if err != nil {
		return nil, err
	}
	return BagPeaks(a.hasher, width, peaks), nil
}

func (a *Accumulator) peakHashes(width uint64) ([][]byte, error) {
	peaks, err := GetPeakIndexes(width)
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(peaks))
	for _, pos := range peaks {
		value, err := a.get(pos)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func (a *Accumulator) get(pos uint64) ([]byte, error) {
	value, err := a.store.Get(pos)
	if err != nil {
		return nil, fmt.Errorf("%w: position %d: %v", ErrNodeMissing, pos, err)
	}
	return value, nil
}
