package ldb

import (
	"fmt"

	"github.com/evmkit/slotstore/common"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// TableSpace divides the key-value database into spaces by prefixing keys.
type TableSpace byte

const (
	// WordStoreKey is the tablespace for storage slot words.
	WordStoreKey TableSpace = 'W'
)

// DbKey is a database key: one tablespace byte followed by the slot key.
type DbKey [1 + common.SlotSize]byte

func (d DbKey) ToBytes() []byte {
	return d[:]
}

// ToDBKey converts a slot to its database key within the given tablespace.
func ToDBKey(t TableSpace, slot common.Slot) DbKey {
	var dbKey DbKey
	dbKey[0] = byte(t)
	copy(dbKey[1:], slot[:])
	return dbKey
}

const errClosed = common.ConstError("store already closed")

// Store is a goleveldb-backed WordStore implementation. Slots without an
// explicitly stored word read as the zero word, matching the semantics of
// the in-memory store.
type Store struct {
	db     *leveldb.DB
	table  TableSpace
	owned  bool // close the database handle together with the store
	closed bool
}

// NewStore constructs a word store on top of an existing database handle.
// The handle remains owned by the caller.
func NewStore(db *leveldb.DB, table TableSpace) *Store {
	return &Store{db: db, table: table}
}

// OpenStore opens the database in the given directory and constructs a word
// store owning the database handle.
func OpenStore(path string, table TableSpace) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb in %s: %w", path, err)
	}
	return &Store{db: db, table: table, owned: true}, nil
}

func (s *Store) Load(slot common.Slot) (value common.Word, err error) {
	if s.closed {
		return value, errClosed
	}
	dbKey := ToDBKey(s.table, slot)
	data, err := s.db.Get(dbKey.ToBytes(), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return value, nil
		}
		return value, err
	}
	copy(value[:], data)
	return value, nil
}

func (s *Store) Store(slot common.Slot, value common.Word) error {
	if s.closed {
		return errClosed
	}
	dbKey := ToDBKey(s.table, slot)
	return s.db.Put(dbKey.ToBytes(), value[:], nil)
}

// Visit calls the given function for every explicitly stored slot of the
// store's tablespace, in ascending slot order, until the function returns
// false or the end of the tablespace is reached.
func (s *Store) Visit(visit func(slot common.Slot, value common.Word) bool) error {
	if s.closed {
		return errClosed
	}
	iter := s.db.NewIterator(util.BytesPrefix([]byte{byte(s.table)}), nil)
	defer iter.Release()
	for iter.Next() {
		var slot common.Slot
		var value common.Word
		copy(slot[:], iter.Key()[1:])
		copy(value[:], iter.Value())
		if !visit(slot, value) {
			break
		}
	}
	return iter.Error()
}

func (s *Store) Flush() error {
	return nil // writes are pushed to the database as they come
}

func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
