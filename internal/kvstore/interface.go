package kvstore

// Store is the key-value storage the tracker persists snapshots in.
// Values are opaque strings, in practice serialized JSON.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Keys(prefix string) ([]string, error)
}
