package storage

// Codec encodes and decodes keys and values for a Backend that stores bytes.
//
// Key encodings must preserve ordering for List to return entries in
// ascending key order.
type Codec[K, V any] interface {
	EncodeKey(K) ([]byte, error)
	DecodeKey([]byte) (K, error)
	EncodeValue(V) ([]byte, error)
	DecodeValue([]byte) (V, error)
}
