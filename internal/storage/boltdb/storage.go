// Package boltdb implements storage.BlobStore on a single bbolt file.
package boltdb

import (
	"fmt"
	"log/slog"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/gyegi/calendar/internal/config"
)

// Config of a Repo.
type Config struct {
	// Path is the directory holding the database file.
	Path string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Repo stores blobs in the root bucket of a bbolt database. The file is
// opened for each call so several processes can take turns on it.
type Repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  *slog.Logger
}

// New returns a new repository rooted at c.Path.
func New(c Config) *Repo {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Repo{
		root: []byte(config.BoltRootBucket),
		path: filepath.Join(c.Path, config.BoltFileName),
		log:  log.With(slog.String(config.LogKeyComponent, config.CompStorage)),
	}
}

// Path returns the database file location.
func (r *Repo) Path() string {
	return r.path
}

func (r *Repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, config.FilePermUserRW, &bolt.Options{Timeout: config.BoltOpenTimeout})
	if err != nil {
		return fmt.Errorf("%s %s: %w", config.ErrOpenDB, r.path, err)
	}
	r.log.Debug(config.MsgDBOpened, slog.String(config.LogKeyPath, r.path))
	return r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("%s %s: %w", config.ErrBucketCreate, r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("%s %s", config.ErrBucketReadOnly, r.root)
		}
		return nil
	})
}

func (r *Repo) close() {
	if r.d == nil {
		return
	}
	if err := r.d.Close(); err != nil {
		r.log.Warn(config.ErrCloseDB, slog.Any(config.LogKeyError, err))
	}
	r.d = nil
}

// Load returns the value stored under key, or nil when absent.
func (r *Repo) Load(key string) ([]byte, error) {
	if err := r.open(); err != nil {
		r.close()
		return nil, err
	}
	defer r.close()

	var out []byte
	err := r.d.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(r.root)
		if rb == nil {
			return fmt.Errorf("%s %s", config.ErrBucketMissing, r.root)
		}
		if v := rb.Get([]byte(key)); v != nil {
			// Values are only valid for the life of the transaction.
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	return out, err
}

// Save replaces the value stored under key.
func (r *Repo) Save(key string, value []byte) error {
	if err := r.open(); err != nil {
		r.close()
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		rb := tx.Bucket(r.root)
		if rb == nil {
			return fmt.Errorf("%s %s", config.ErrBucketMissing, r.root)
		}
		return rb.Put([]byte(key), value)
	})
}
