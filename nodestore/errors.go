package nodestore

import "errors"

var (
	ErrExists          = errors.New("node position already written")
	ErrNotFound        = errors.New("node position not found")
	ErrOutOfOrder      = errors.New("node positions must be written in order")
	ErrHashSize        = errors.New("node value has the wrong size")
	ErrBlobNotFound    = errors.New("the blob was not found")
	ErrCorruptLog      = errors.New("node log blob is not a whole number of nodes")
	ErrLogIDRequired   = errors.New("a log identifier is required")
	ErrNothingToCommit = errors.New("no nodes have been added since the last commit")
)
