// Package storage is the durable key-value port the client state machine
// persists through. Keys hold JSON blobs ("user", "cart_<userId>"). Business
// logic never touches a concrete backend directly.
package storage

// Store is a read-modify-write blob store. Concurrent writers to the same
// key are last-write-wins; there is no merge.
type Store interface {
	// Get decodes the value under key into out. It reports whether the key
	// was present.
	Get(key string, out any) (bool, error)
	// Set encodes v and replaces the value under key in one write.
	Set(key string, v any) error
	Delete(key string) error
}
