package checkpoint

import (
	"crypto/ecdsa"
	"crypto/rand"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

// Signer is used to produce a signature over an accumulator state. This
// signature commits to the state, and should only be published after checking
// the new state is an extension of the last one signed.
type Signer struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSigner(issuer string, cborCodec dtcbor.CBORCodec) Signer {
	return Signer{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// Sign1 signs the provided state and returns the encoded COSE Sign1 message.
//
// The public key is included in the protected CWT claims. The root is removed
// from the payload after signing, so the message only verifies once the root
// has been recomputed from the log at State.Width.
func (s Signer) Sign1(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, state State, external []byte,
) ([]byte, error) {
	if coseSigner == nil || publicKey == nil {
		return nil, ErrSignerRequired
	}

	payload, err := s.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	coseHeaders := cose.Headers{
		Protected: cose.ProtectedHeader{
			cose.HeaderLabelAlgorithm: coseSigner.Algorithm(),
			cose.HeaderLabelKeyID:     []byte(keyIdentifier),
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				s.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}

	msg := cose.Sign1Message{
		Headers: coseHeaders,
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	state.Root = nil
	if msg.Payload, err = s.cborCodec.MarshalCBOR(state); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}
