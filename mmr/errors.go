package mmr

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid mmr argument")
	ErrLeafHasNoChildren = errors.New("mmr leaf has no children")
	ErrPositionNotFound  = errors.New("mmr position not found")
	ErrNotALeaf          = errors.New("mmr node not a leaf")
	ErrProofMismatch     = errors.New("mmr proof does not reproduce the root")

	// ErrNodeMissing is returned when the store lacks a hash the structure
	// requires. It means the store is corrupt and the accumulator instance
	// should not be used further.
	ErrNodeMissing = errors.New("mmr node missing from store")

	// ErrStoreFailed wraps the first store error an accumulator encounters.
	// The accumulator returns it from every later call that needs the store.
	ErrStoreFailed = errors.New("mmr store failed, accumulator stopped")
)
