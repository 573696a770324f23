package cache

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/opencontainers/go-digest"
)

var (
	ErrEmptyKey   = errors.New("cache: empty key")
	ErrEmptyData  = errors.New("cache: empty data")
	ErrInvalidKey = errors.New("cache: key must be alphanumeric")
)

// Cache stores and retrieves opaque blobs.
type Cache interface {
	// Store saves data under key, replacing any previous entry.
	Store(key string, data []byte) error

	// Read returns the size of the entry for key, or 0 if there is none.
	// The entry is copied into dst only when dst is large enough to hold it.
	Read(key string, dst []byte) (uint64, error)
}

// Key hashes parts into a hex encoded sha256 key. Each part is length
// prefixed so that ("ab", "c") and ("a", "bc") give different keys.
func Key(parts ...[]byte) string {
	d := digest.SHA256.Digester()
	h := d.Hash()

	var prefix [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(prefix[:], uint64(len(p)))
		_, _ = h.Write(prefix[:])
		_, _ = h.Write(p)
	}
	return d.Digest().Encoded()
}

func checkStore(key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: key %s", ErrEmptyData, key)
	}
	return nil
}

func checkAlnum(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// readInto applies the Read contract to an entry that was found.
func readInto(dst, blob []byte) uint64 {
	size := uint64(len(blob))
	if dst != nil && uint64(len(dst)) >= size {
		copy(dst, blob)
	}
	return size
}
