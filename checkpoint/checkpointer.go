package checkpoint

import (
	"crypto/ecdsa"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/veraison/go-cose"
)

type CheckpointerConfig struct {
	Subject       string
	KeyIdentifier string
}

// Checkpointer signs the current state of an accumulator
type Checkpointer struct {
	Cfg       CheckpointerConfig
	Log       logger.Logger
	Signer    Signer
	Key       cose.Signer
	PublicKey *ecdsa.PublicKey

	// now is replaced in tests
	now func() time.Time
}

func NewCheckpointer(
	cfg CheckpointerConfig, log logger.Logger, signer Signer,
	key cose.Signer, publicKey *ecdsa.PublicKey,
) *Checkpointer {
	return &Checkpointer{
		Cfg:       cfg,
		Log:       log,
		Signer:    signer,
		Key:       key,
		PublicKey: publicKey,
		now:       time.Now,
	}
}

// Checkpoint signs the state of the accumulator at its current width. Appends
// that race with the call are simply not included.
func (c *Checkpointer) Checkpoint(log rootSource) ([]byte, State, error) {
	width := log.Width()
	if width == 0 {
		return nil, State{}, ErrWidthNotInLog
	}
	root, err := log.RootAt(width)
	if err != nil {
		return nil, State{}, err
	}
	state := State{
		Width:     width,
		Root:      root,
		Timestamp: c.now().UnixMilli(),
	}
	msg, err := c.Signer.Sign1(c.Key, c.Cfg.KeyIdentifier, c.PublicKey, c.Cfg.Subject, state, nil)
	if err != nil {
		return nil, State{}, err
	}
	c.Log.Infof("checkpoint %s: width %d, root %x", c.Cfg.Subject, width, root)
	return msg, state, nil
}
