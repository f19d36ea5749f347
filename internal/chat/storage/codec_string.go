package storage

import "encoding/json"

// Ensure StringKeyCodec implements Codec interface.
var _ Codec[string, any] = (*StringKeyCodec[any])(nil)

// StringKeyCodec stores string keys as their raw bytes, so byte order and
// string order agree, and encodes values as JSON.
type StringKeyCodec[V any] struct{}

// EncodeKey returns the bytes of key.
func (c *StringKeyCodec[V]) EncodeKey(key string) ([]byte, error) {
	return []byte(key), nil
}

// DecodeKey returns data as a string.
func (c *StringKeyCodec[V]) DecodeKey(data []byte) (string, error) {
	return string(data), nil
}

// EncodeValue encodes a value as JSON.
func (c *StringKeyCodec[V]) EncodeValue(value V) ([]byte, error) {
	return json.Marshal(value)
}

// DecodeValue decodes a JSON value.
func (c *StringKeyCodec[V]) DecodeValue(data []byte) (V, error) {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}
