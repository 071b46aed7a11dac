package wlan

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	E "github.com/sagernet/sing-wlan/common/exceptions"

	"go.etcd.io/bbolt"
)

var profileBucket = []byte("profiles")

var (
	ErrProfileNotFound = E.New("profile not found")
	ErrProfileExists   = E.New("profile already exists")
)

// ProfileStore persists profile documents by name for platforms without an
// OS profile store.
type ProfileStore struct {
	db *bbolt.DB
}

func OpenProfileStore(path string) (*ProfileStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, E.Cause(err, "create profile store directory")
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, E.Cause(err, "open profile store ", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(profileBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, E.Cause(err, "initialize profile store")
	}
	return &ProfileStore{db: db}, nil
}

func (s *ProfileStore) Put(name string, document string, overwrite bool) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(profileBucket)
		if !overwrite && bucket.Get([]byte(name)) != nil {
			return ErrProfileExists
		}
		return bucket.Put([]byte(name), []byte(document))
	})
}

func (s *ProfileStore) Get(name string) (string, error) {
	var document string
	err := s.db.View(func(tx *bbolt.Tx) error {
		content := tx.Bucket(profileBucket).Get([]byte(name))
		if content == nil {
			return ErrProfileNotFound
		}
		document = string(content)
		return nil
	})
	return document, err
}

// List returns stored profile names in lexical order.
func (s *ProfileStore) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(profileBucket).ForEach(func(key, _ []byte) error {
			names = append(names, string(key))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *ProfileStore) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(profileBucket)
		if bucket.Get([]byte(name)) == nil {
			return ErrProfileNotFound
		}
		return bucket.Delete([]byte(name))
	})
}

func (s *ProfileStore) Close() error {
	return s.db.Close()
}
