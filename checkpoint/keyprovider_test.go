package checkpoint_test

import (
	"crypto"
	"crypto/ecdsa"

	"github.com/veraison/go-cose"
)

type testKeyProvider struct {
	key *ecdsa.PublicKey
}

func (p *testKeyProvider) PublicKey() (crypto.PublicKey, cose.Algorithm, error) {
	return p.key, cose.AlgorithmES256, nil
}
