package serde

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// NewProtoTextSerializer returns a serializer function where the input
// message (T) gets rendered in the Protobuf text format.
func NewProtoTextSerializer[T proto.Message]() SerializerFunc[T, string] {
	return func(t T) (string, error) {
		data, err := prototext.Marshal(t)
		if err != nil {
			return "", fmt.Errorf("serde.ProtoText: failed to serialize message, %w", err)
		}

		return string(data), nil
	}
}

// NewProtoTextDeserializer returns a deserializer function where a Protobuf
// text-format string is parsed into a destination message type (T).
//
// A message factory function is required for creating new instances of
// type T.
func NewProtoTextDeserializer[T proto.Message](factory func() T) DeserializerFunc[T, string] {
	return func(text string) (T, error) {
		var zeroValue T

		model := factory()
		if err := prototext.Unmarshal([]byte(text), model); err != nil {
			return zeroValue, fmt.Errorf("serde.ProtoText: failed to deserialize message, %w", err)
		}

		return model, nil
	}
}

// NewProtoText returns a new serde instance where a message (T) gets carried
// through its Protobuf text-format representation.
func NewProtoText[T proto.Message](factory func() T) Fused[T, string] {
	return Fuse(
		NewProtoTextSerializer[T](),
		NewProtoTextDeserializer(factory),
	)
}
