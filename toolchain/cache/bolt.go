package cache

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"k8s.io/klog/v2"
)

var bucketName = []byte("artifacts")

// Bolt is a Cache backed by a single bbolt database file.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: creating bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Store implements Cache.
func (b *Bolt) Store(key string, data []byte) error {
	if err := checkStore(key, data); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	klog.V(2).InfoS("Stored cache entry", "db", b.db.Path(), "key", key, "bytes", len(data))
	return nil
}

// Read implements Cache.
func (b *Bolt) Read(key string, dst []byte) (uint64, error) {
	if key == "" {
		return 0, nil
	}

	var size uint64
	err := b.db.View(func(tx *bolt.Tx) error {
		// Get's result is only valid inside the transaction.
		blob := tx.Bucket(bucketName).Get([]byte(key))
		if blob != nil {
			size = readInto(dst, blob)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cache: reading %s: %w", key, err)
	}
	return size, nil
}
