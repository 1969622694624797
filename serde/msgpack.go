package serde

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgpackSerializer returns a serializer function where the input data (T)
// gets serialized to MessagePack byte-array data.
func NewMsgpackSerializer[T any]() SerializerFunc[T, []byte] {
	return func(t T) ([]byte, error) {
		data, err := msgpack.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("serde.Msgpack: failed to serialize data, %w", err)
		}

		return data, nil
	}
}

// NewMsgpackDeserializer returns a deserializer function where a byte-array
// is deserialized into the specified data type using MessagePack.
//
// A data factory function is required for creating new instances of the type
// (especially if pointer semantics is used).
func NewMsgpackDeserializer[T any](factory func() T) DeserializerFunc[T, []byte] {
	return func(data []byte) (T, error) {
		var zeroValue T

		model := factory()
		if err := msgpack.Unmarshal(data, &model); err != nil {
			return zeroValue, fmt.Errorf("serde.Msgpack: failed to deserialize data, %w", err)
		}

		return model, nil
	}
}

// NewMsgpack returns a new serde instance where some data (T) gets serialized
// to and deserialized from MessagePack as byte-array.
func NewMsgpack[T any](factory func() T) Fused[T, []byte] {
	return Fuse(
		NewMsgpackSerializer[T](),
		NewMsgpackDeserializer(factory),
	)
}
