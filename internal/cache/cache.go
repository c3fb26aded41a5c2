// ABOUTME: In-memory response cache for analysis round trips.
// ABOUTME: Backed by Badger in in-memory mode; dies with the session.
package cache

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
)

// Cache stores raw analysis responses keyed by request kind and input text,
// so re-analyzing identical text within one session skips a network round
// trip. Cached responses still pass through extraction and validation, and
// appends are unaffected: logging the same meal twice still counts twice.
type Cache struct {
	db *badger.DB
}

// Open creates an in-memory cache.
func Open() (*Cache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached response for a kind/input pair, if present.
func (c *Cache) Get(kind, input string) (string, bool) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(kind, input))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return "", false
	}
	return string(value), true
}

// Put stores a response for a kind/input pair. Failures are swallowed: the
// cache is an optimization, never a correctness dependency.
func (c *Cache) Put(kind, input, response string) {
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(kind, input), []byte(response))
	})
}

// Close releases the cache.
func (c *Cache) Close() error {
	return c.db.Close()
}

func key(kind, input string) []byte {
	return []byte(kind + "\x00" + input)
}
