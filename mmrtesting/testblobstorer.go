package mmrtesting

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/forestrie/go-mmraccumulator/nodestore"
)

// TestBlobStorer is an in memory stand in for the azure blob Storer
// methods the node store uses. Every Put issues a new etag.
//
// Conditional write options are opaque, so etag conflicts are simulated by
// setting PutErr. Reads of absent blobs fail with NotFound, which defaults to
// nodestore.ErrBlobNotFound.
type TestBlobStorer struct {
	TestCallCounter

	mu     sync.Mutex
	blobs  map[string][]byte
	etags  map[string]string
	serial int

	PutErr    error
	ReaderErr error
	NotFound  error
}

func NewTestBlobStorer() *TestBlobStorer {
	return &TestBlobStorer{
		blobs:    make(map[string][]byte),
		etags:    make(map[string]string),
		NotFound: nodestore.ErrBlobNotFound,
	}
}

func (s *TestBlobStorer) Reader(
	ctx context.Context, identity string, opts ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	s.IncMethodCall("Reader")
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ReaderErr != nil {
		return nil, s.ReaderErr
	}
	data, ok := s.blobs[identity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", identity, s.NotFound)
	}
	etag := s.etags[identity]
	return &azblob.ReaderResponse{
		Reader:        io.NopCloser(bytes.NewReader(bytes.Clone(data))),
		ETag:          &etag,
		ContentLength: int64(len(data)),
	}, nil
}

func (s *TestBlobStorer) Put(
	ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option,
) (*azblob.WriteResponse, error) {
	s.IncMethodCall("Put")
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PutErr != nil {
		return nil, s.PutErr
	}
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	s.serial++
	etag := fmt.Sprintf("0x%08x", s.serial)
	s.blobs[identity] = data
	s.etags[identity] = etag
	return &azblob.WriteResponse{ETag: &etag}, nil
}

// Blob returns the last data written for identity
func (s *TestBlobStorer) Blob(identity string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[identity]
	return data, ok
}
