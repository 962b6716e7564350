package repositories

import (
	"encoding/json"
	"zenchat/errors"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds optimistic retries of read-modify-write transactions.
const maxConflictRetries = 5

// readJSON decodes the value stored at key. A missing key yields notFound.
func readJSON(txn *badger.Txn, key []byte, v any, notFound error) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func writeJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// update retries fn when a concurrent transaction touched the same keys.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxConflictRetries; i++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// scanKeys returns the suffix of every key under prefix, in key order.
func scanKeys(txn *badger.Txn, prefix []byte) []string {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	var suffixes []string
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		suffixes = append(suffixes, string(it.Item().Key()[len(prefix):]))
	}
	return suffixes
}
