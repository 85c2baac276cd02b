package checkpoint

import (
	"crypto"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// rootSource is satisfied by *mmr.Accumulator
type rootSource interface {
	Width() uint64
	RootAt(width uint64) ([]byte, error)
}

// Decode decodes the State from a signed checkpoint. The returned state is
// unverified and its Root is nil.
func Decode(codec dtcbor.CBORCodec, msg []byte) (*dtcose.CoseSign1Message, State, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(
		msg, dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts()))
	if err != nil {
		return nil, State{}, err
	}

	var unverified State
	if err = codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, State{}, err
	}
	return signed, unverified, nil
}

// VerifyState applies state to the signed message and verifies the result.
//
// Verification of a checkpoint is a 3 step process:
//  1. Use Decode to obtain the State from the signed message. This state will
//     not verify as the root was removed after signing.
//  2. Use State.Width to recompute the root from the log
//  3. Set State.Root and call this function to complete the verification
//
// VerifyAccumulator does steps 2 and 3.
func VerifyState(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, state State, external []byte,
) error {
	if len(state.Root) == 0 {
		return ErrRootDetached
	}
	var err error
	signed.Payload, err = codec.MarshalCBOR(state)
	if err != nil {
		return err
	}
	// The cose package reports verification failures through the global
	// logger, which must exist before it is used.
	if logger.Sugar == nil {
		logger.New("INFO")
	}
	return signed.VerifyWithProvider(keyProvider, external)
}

// VerifyAccumulator recomputes the root for the signed width from log and
// verifies the checkpoint against it, using the public key carried in the
// checkpoint's CWT claims. It returns the verified state.
//
// It is the caller's responsibility to decide whether that key is trusted.
func VerifyAccumulator(
	codec dtcbor.CBORCodec, log rootSource,
	signed *dtcose.CoseSign1Message, unverified State, external []byte,
) (State, error) {
	if unverified.Width == 0 || unverified.Width > log.Width() {
		return State{}, fmt.Errorf(
			"%w: width %d, log width %d", ErrWidthNotInLog, unverified.Width, log.Width())
	}
	root, err := log.RootAt(unverified.Width)
	if err != nil {
		return State{}, err
	}
	state := unverified
	state.Root = root
	if err = VerifyState(codec, dtcose.NewCWTPublicKeyProvider(signed), signed, state, external); err != nil {
		return State{}, err
	}
	return state, nil
}
