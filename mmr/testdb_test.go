package mmr

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"testing"
)

var errTestNotFound = errors.New("test db: not found")

type testDb struct {
	t     *testing.T
	store map[uint64][]byte
	size  uint64
}

func NewTestDb(t *testing.T) *testDb {
	db := testDb{
		t: t, store: make(map[uint64][]byte),
	}
	return &db
}

func (db *testDb) Size() uint64 {
	return db.size
}

func (db *testDb) Put(pos uint64, value []byte) error {
	if _, ok := db.store[pos]; ok {
		db.t.Fatalf("position %v already set", pos)
	}
	db.store[pos] = value
	if pos > db.size {
		db.size = pos
	}
	return nil
}

func (db *testDb) Get(pos uint64) ([]byte, error) {
	if value, ok := db.store[pos]; ok {
		return value, nil
	}
	return nil, errTestNotFound
}

func (db *testDb) mustGet(pos uint64) []byte {
	if value, err := db.Get(pos); err == nil {
		return value
	}
	db.t.Fatalf("position %v not found", pos)
	return nil
}

// corrupt replaces a stored value, which the accumulator itself never does
func (db *testDb) corrupt(pos uint64, value []byte) {
	if _, ok := db.store[pos]; !ok {
		db.t.Fatalf("position %v not found", pos)
	}
	db.store[pos] = value
}

// hashNum returns the hash of num, used as a deterministic leaf value
func hashNum(num uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, num)
	h := sha256.New()
	h.Write(b)
	return h.Sum(nil)
}

// newTestAccumulator appends width leaves, valued hashNum(leafIndex), to a
// fresh sha256 accumulator
func newTestAccumulator(t *testing.T, width uint64) (*Accumulator, *testDb, [][]byte) {
	db := NewTestDb(t)
	a, err := NewAccumulator(db, NewSHA256())
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}
	values := make([][]byte, 0, width)
	for i := uint64(0); i < width; i++ {
		value := hashNum(i)
		if _, err := a.Append(value); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
		values = append(values, value)
	}
	return a, db, values
}

var errTestPut = errors.New("test db: put failed")

// failingDb fails the first Put at failPos
type failingDb struct {
	*testDb
	failPos uint64
}

func (db *failingDb) Put(pos uint64, value []byte) error {
	if pos == db.failPos {
		db.failPos = 0
		return errTestPut
	}
	return db.testDb.Put(pos, value)
}
