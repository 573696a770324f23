// Package cache stores compiled artifacts keyed by a content hash.
//
// Three implementations share the [Cache] contract: [Memory] keeps blobs in
// process memory, [Folder] writes one file per key into a directory and keeps
// only the most recently used files, and [Bolt] keeps all blobs in a single
// bbolt database file. [Key] derives a valid key from arbitrary inputs.
package cache
