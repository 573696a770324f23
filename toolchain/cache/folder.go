package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// DefaultPrefix is prepended to every file name written by a Folder.
const DefaultPrefix = "algo_dft_cache_"

// Folder is a Cache that keeps one file per key in a directory and retains at
// most maxFiles of them, dropping the least recently used first.
type Folder struct {
	mu       sync.Mutex
	dir      string
	prefix   string
	maxFiles int
	now      func() time.Time
}

// FolderOption configures a Folder.
type FolderOption func(*Folder)

// WithPrefix overrides DefaultPrefix. Files without the prefix are never
// touched.
func WithPrefix(prefix string) FolderOption {
	return func(f *Folder) {
		if prefix != "" {
			f.prefix = prefix
		}
	}
}

// NewFolder opens a cache in dir, which must already exist, and purges it
// down to maxFiles entries.
func NewFolder(dir string, maxFiles int, opts ...FolderOption) (*Folder, error) {
	if maxFiles < 0 {
		return nil, fmt.Errorf("cache: maxFiles must be >= 0: %d", maxFiles)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cache: opening folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cache: %s is not a directory", dir)
	}

	f := &Folder{dir: dir, prefix: DefaultPrefix, maxFiles: maxFiles, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.purge(); err != nil {
		return nil, err
	}
	return f, nil
}

// Dir returns the cache directory.
func (f *Folder) Dir() string { return f.dir }

// Store implements Cache. Keys must be alphanumeric.
func (f *Folder) Store(key string, data []byte) error {
	if err := checkAlnum(key); err != nil {
		return err
	}
	if err := checkStore(key, data); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".tmp-"+key+"-")
	if err != nil {
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	now := f.now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	klog.V(2).InfoS("Stored cache entry", "path", path, "bytes", len(data))

	return f.purge()
}

// Read implements Cache. A successful copy marks the entry as recently used.
func (f *Folder) Read(key string, dst []byte) (uint64, error) {
	if err := checkAlnum(key); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache: reading %s: %w", key, err)
	}

	size := uint64(info.Size())
	if size == 0 {
		return 0, nil
	}
	if dst == nil || uint64(len(dst)) < size {
		return size, nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("cache: reading %s: %w", key, err)
	}
	if uint64(len(blob)) != size {
		return 0, fmt.Errorf("cache: reading %s: size changed from %d to %d", key, size, len(blob))
	}
	copy(dst, blob)

	now := f.now()
	if err := os.Chtimes(path, now, now); err != nil {
		klog.ErrorS(err, "Failed to touch cache entry", "path", path)
	}
	klog.V(2).InfoS("Read cache entry", "path", path, "bytes", size)
	return size, nil
}

// Purge removes the least recently used entries until at most maxFiles
// remain.
func (f *Folder) Purge(maxFiles int) error {
	if maxFiles < 0 {
		return fmt.Errorf("cache: maxFiles must be >= 0: %d", maxFiles)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purgeTo(maxFiles)
}

func (f *Folder) path(key string) string {
	return filepath.Join(f.dir, f.prefix+key)
}

func (f *Folder) purge() error {
	return f.purgeTo(f.maxFiles)
}

type entry struct {
	path    string
	modTime time.Time
}

func (f *Folder) purgeTo(maxFiles int) error {
	dirEntries, err := os.ReadDir(f.dir)
	if err != nil {
		return fmt.Errorf("cache: listing %s: %w", f.dir, err)
	}

	var entries []entry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || !strings.HasPrefix(de.Name(), f.prefix) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Removed concurrently.
			continue
		}
		entries = append(entries, entry{filepath.Join(f.dir, de.Name()), info.ModTime()})
	}
	if len(entries) <= maxFiles {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].modTime.Before(entries[j].modTime)
	})

	var errs []error
	for _, e := range entries[:len(entries)-maxFiles] {
		if err := os.Remove(e.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			klog.ErrorS(err, "Failed to purge cache entry", "path", e.path)
			errs = append(errs, err)
			continue
		}
		klog.V(2).InfoS("Purged cache entry", "path", e.path)
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache: purging %s: %w", f.dir, errors.Join(errs...))
	}
	return nil
}
