package checkpoint

import "errors"

var (
	ErrRootDetached   = errors.New("checkpoint root is detached, it must be recomputed from the log")
	ErrWidthNotInLog  = errors.New("checkpoint width is beyond the log")
	ErrSignerRequired = errors.New("a cose signer and its public key are required")
)
