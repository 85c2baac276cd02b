package checkpoint

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// State defines the details we include in our signed commitment to an
// accumulator.
type State struct {
	// The width (leaf count) fixes the peaks, and so the path to the root, of
	// the accumulator. Every later state can reproduce this root exactly,
	// because stored nodes are never changed, and hence can be used to verify
	// this checkpoint.
	Width uint64 `cbor:"1,keyasint"`
	Root  []byte `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the root was
	// signed. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
}

// NewCodec returns the deterministic codec used for checkpoint payloads
func NewCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}
