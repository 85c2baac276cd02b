package mmrtesting

import (
	"context"
	"os"
	"testing"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-mmraccumulator/mmr"
	"github.com/forestrie/go-mmraccumulator/nodestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	// CanonicalWidth is the width of the accumulator built by
	// CanonicalAccumulator. Its node positions cover every floor of the
	// 5 level numbering diagram used throughout the mmr package docs.
	CanonicalWidth = 27

	// EnvBlobEmulator must be set for tests that need the azurite blob
	// emulator. Those tests are skipped otherwise.
	EnvBlobEmulator = "MMR_TEST_BLOB_EMULATOR"
)

type TestContext struct {
	TestGenerator
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	// We seed the RNG of the generator with StartTimeMS. It is normal to force
	// it to some fixed value so that the generated data is the same from run
	// to run.
	StartTimeMS     int64
	TestLabelPrefix string
	Container       string // can be "" defaults to TestLabelPrefix
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		TestGenerator: NewTestGenerator(cfg.StartTimeMS),
		T:             t,
	}
	logger.New("TEST")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewAccumulator returns an empty sha256 accumulator over a fresh memory store
func (c *TestContext) NewAccumulator() (*mmr.Accumulator, *nodestore.MemoryStore) {
	store := nodestore.NewMemoryStore(nodestore.WithHashSize(nodestore.DefaultHashSize))
	a, err := mmr.NewAccumulator(store, mmr.NewSHA256())
	require.NoError(c.T, err)
	return a, store
}

// AppendLeaves appends n generated values to a and returns them in append
// order
func (c *TestContext) AppendLeaves(a *mmr.Accumulator, n uint64) [][]byte {
	values := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		value := c.NextValue()
		_, err := a.Append(value)
		require.NoError(c.T, err)
		values = append(values, value)
	}
	return values
}

// CanonicalAccumulator returns an accumulator holding CanonicalWidth
// numbered leaves. The leaf values, and hence the root, are the same for
// every call.
func (c *TestContext) CanonicalAccumulator() (*mmr.Accumulator, [][]byte) {
	a, _ := c.NewAccumulator()
	values := make([][]byte, 0, CanonicalWidth)
	for i := uint64(0); i < CanonicalWidth; i++ {
		value := NumberedValue(i)
		_, err := a.Append(value)
		require.NoError(c.T, err)
		values = append(values, value)
	}
	return a, values
}

// NewStorer connects to the azurite blob emulator, creating container if it
// doesn't exist. The test is skipped if the emulator is not configured.
func (c *TestContext) NewStorer(container string) *azblob.Storer {
	if os.Getenv(EnvBlobEmulator) == "" {
		c.T.Skipf("%s not set, skipping blob emulator test", EnvBlobEmulator)
	}
	storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
	if err != nil {
		c.T.Fatalf("failed to connect to blob store emulator: %v", err)
	}
	client := storer.GetServiceClient()
	// Note: we expect a 'already exists' error here and  ignore it.
	_, _ = client.CreateContainer(context.Background(), container, nil)
	return storer
}

// NewLogID returns a log identifier for a fresh, empty, node log
func (c *TestContext) NewLogID() uuid.UUID {
	return uuid.New()
}
