// Package storage defines the key-value blob persistence used for
// suggestions.
package storage

// BlobStore persists opaque values under string keys.
// Loading a key that was never saved returns nil and no error.
type BlobStore interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Memory is an in-process BlobStore. Create it with make.
// It is not safe for concurrent use.
type Memory map[string][]byte

func (m Memory) Load(key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m Memory) Save(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m[key] = v
	return nil
}
