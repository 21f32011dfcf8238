// Package store persists pinned notes, saved searches and settings in a bbolt database.
package store

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	"github.com/gruntwork-io/notecards/internal/errors"
	"go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketPinned   = "pinned"
	BucketSearches = "searches"
	BucketSettings = "settings"
)

// SettingSort holds the last sort mode chosen in a front end.
const SettingSort = "sort"

const openTimeout = time.Second

var (
	// ErrNoSearch is returned when no saved search has the given name.
	ErrNoSearch = errors.New("no such saved search")
	// ErrNoSetting is returned when a setting was never stored.
	ErrNoSetting = errors.New("no such setting")
)

var buckets = []string{BucketPinned, BucketSearches, BucketSettings}

// SavedSearch is a named query.
type SavedSearch struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// Store is the persistent storage of notecards.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database file at path, creating its directory as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.New(err)
	}

	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, errors.Errorf("open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Errorf("initialize store %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.New(s.db.Close())
}

// Pin adds a path to the end of the pinned list. Pinning an already pinned path does nothing.
func (s *Store) Pin(path string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketPinned))

		if key := findValue(b, path); key != nil {
			return nil
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		return b.Put(sequenceKey(seq), []byte(path))
	})
}

// Unpin removes a path from the pinned list.
func (s *Store) Unpin(path string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketPinned))

		if key := findValue(b, path); key != nil {
			return b.Delete(key)
		}

		return nil
	})
}

// Pinned returns the pinned paths in the order they were pinned.
func (s *Store) Pinned() ([]string, error) {
	var pinned []string

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketPinned)).ForEach(func(_, v []byte) error {
			pinned = append(pinned, string(v))
			return nil
		})
	})

	return pinned, err
}

// SaveSearch stores a query under name, replacing any previous one.
func (s *Store) SaveSearch(name, query string) error {
	if name == "" {
		return errors.New("saved search name must not be empty")
	}

	return s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketSearches)).Put([]byte(name), []byte(query))
	})
}

// Search returns the query saved under name.
func (s *Store) Search(name string) (string, error) {
	var query string

	err := s.view(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(BucketSearches)).Get([]byte(name))
		if v == nil {
			return ErrNoSearch
		}

		query = string(v)

		return nil
	})

	return query, err
}

// Searches lists the saved searches ordered by name.
func (s *Store) Searches() ([]SavedSearch, error) {
	var searches []SavedSearch

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketSearches)).ForEach(func(k, v []byte) error {
			searches = append(searches, SavedSearch{Name: string(k), Query: string(v)})
			return nil
		})
	})

	return searches, err
}

// DeleteSearch removes a saved search.
func (s *Store) DeleteSearch(name string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketSearches))
		if b.Get([]byte(name)) == nil {
			return ErrNoSearch
		}

		return b.Delete([]byte(name))
	})
}

// Setting returns a stored setting.
func (s *Store) Setting(key string) (string, error) {
	var value string

	err := s.view(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(BucketSettings)).Get([]byte(key))
		if v == nil {
			return ErrNoSetting
		}

		value = string(v)

		return nil
	})

	return value, err
}

// SetSetting stores a setting.
func (s *Store) SetSetting(key, value string) error {
	return s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketSettings)).Put([]byte(key), []byte(value))
	})
}

func (s *Store) view(fn func(tx *bbolt.Tx) error) error {
	if err := s.db.View(fn); err != nil {
		return errors.New(err)
	}

	return nil
}

func (s *Store) update(fn func(tx *bbolt.Tx) error) error {
	if err := s.db.Update(fn); err != nil {
		return errors.New(err)
	}

	return nil
}

func findValue(b *bbolt.Bucket, value string) []byte {
	c := b.Cursor()

	for k, v := c.First(); k != nil; k, v = c.Next() {
		if bytes.Equal(v, []byte(value)) {
			return append([]byte(nil), k...)
		}
	}

	return nil
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}
