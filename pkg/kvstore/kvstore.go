// Package kvstore is the local persistence substrate: string keys mapped to
// serialized values, one key per record collection. It mirrors the
// browser-local storage model the app's data layer was designed around.
package kvstore

// Store is the key-value substrate the record collections persist into.
// Get reports absence as (_, false, nil); an error means the substrate
// itself failed, not that the key is missing.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}
