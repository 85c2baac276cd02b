package nodestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

const (
	// tags written with every commit, so the log state can be found without
	// reading the blob
	TagKeySize     = "mmrsize"
	TagKeyHashSize = "hashsize"
)

type blobStorer interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)

	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)
}

type BlobStoreConfig struct {
	LogID    uuid.UUID
	HashSize int // defaults to DefaultHashSize
}

// BlobStore holds the node log for a single mmr in memory and commits it to
// azure blob storage as one blob of fixed width node values, in position
// order.
//
// Nodes added with Put are visible to Get immediately but are only durable
// once Commit succeeds. Commits use the blob etag for optimistic concurrency,
// a store that has lost a race must Load again before it can make progress.
type BlobStore struct {
	Cfg   BlobStoreConfig
	Log   logger.Logger
	Store blobStorer

	mu        sync.RWMutex
	blobPath  string
	etag      string
	data      []byte
	committed uint64
}

func NewBlobStore(cfg BlobStoreConfig, log logger.Logger, store blobStorer) (*BlobStore, error) {
	if cfg.LogID == uuid.Nil {
		return nil, ErrLogIDRequired
	}
	if cfg.HashSize == 0 {
		cfg.HashSize = DefaultHashSize
	}
	if cfg.HashSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrHashSize, cfg.HashSize)
	}
	s := &BlobStore{
		Cfg:      cfg,
		Log:      log,
		Store:    store,
		blobPath: LogBlobPath(cfg.LogID),
	}
	return s, nil
}

func (s *BlobStore) BlobPath() string { return s.blobPath }

// ETag returns the etag of the blob as last read or written. It is empty if
// the blob has not been created yet.
func (s *BlobStore) ETag() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.etag
}

// Load replaces the in memory log with the committed blob. A missing blob is
// an empty log.
func (s *BlobStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, err := s.Store.Reader(ctx, s.blobPath)
	if err != nil {
		err = WrapBlobNotFound(err)
		if !IsBlobNotFound(err) {
			return err
		}
		s.Log.Debugf("node log %s not found, starting empty", s.blobPath)
		s.data = nil
		s.etag = ""
		s.committed = 0
		return nil
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return err
	}
	if len(data)%s.Cfg.HashSize != 0 {
		return fmt.Errorf("%w: %d bytes in %s", ErrCorruptLog, len(data), s.blobPath)
	}

	s.data = data
	s.etag = ""
	if rr.ETag != nil {
		s.etag = *rr.ETag
	}
	s.committed = uint64(len(data) / s.Cfg.HashSize)
	s.Log.Debugf("loaded %d nodes from %s", s.committed, s.blobPath)
	return nil
}

func (s *BlobStore) Size() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size()
}

// Pending returns the number of nodes added since the last Load or Commit
func (s *BlobStore) Pending() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size() - s.committed
}

func (s *BlobStore) Get(pos uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos == 0 || pos > s.size() {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, pos)
	}
	start := (pos - 1) * uint64(s.Cfg.HashSize)
	return bytes.Clone(s.data[start : start+uint64(s.Cfg.HashSize)]), nil
}

// Put appends value at pos, which must be Size() + 1
func (s *BlobStore) Put(pos uint64, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.size()
	if pos != 0 && pos <= size {
		return fmt.Errorf("%w: %d", ErrExists, pos)
	}
	if pos != size+1 {
		return fmt.Errorf("%w: got %d, expected %d", ErrOutOfOrder, pos, size+1)
	}
	if len(value) != s.Cfg.HashSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrHashSize, len(value), s.Cfg.HashSize)
	}
	s.data = append(s.data, value...)
	return nil
}

// Commit writes the whole node log to the blob.
//
// The first commit creates the blob and fails if some other writer created it
// first. Later commits only succeed if the blob is unchanged since this store
// last read or wrote it.
func (s *BlobStore) Commit(ctx context.Context) (*azblob.WriteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.size()
	if size == s.committed {
		return nil, ErrNothingToCommit
	}

	opts := []azblob.Option{azblob.WithTags(map[string]string{
		TagKeySize:     strconv.FormatUint(size, 10),
		TagKeyHashSize: strconv.Itoa(s.Cfg.HashSize),
	})}
	// The etag guards against racy updates. It is absent only when creating
	// the blob, in which case we require that no blob matches *any* etag.
	if s.etag != "" {
		opts = append(opts, azblob.WithEtagMatch(s.etag))
	} else {
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	}

	wr, err := s.Store.Put(ctx, s.blobPath, azblob.NewBytesReaderCloser(s.data), opts...)
	if err != nil {
		return wr, err
	}
	if wr != nil && wr.ETag != nil {
		s.etag = *wr.ETag
	}
	s.Log.Debugf("committed %d nodes (%d new) to %s", size, size-s.committed, s.blobPath)
	s.committed = size
	return wr, nil
}

func (s *BlobStore) size() uint64 {
	return uint64(len(s.data) / s.Cfg.HashSize)
}
