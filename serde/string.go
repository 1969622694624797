package serde

// StringSerializer is a specialized Serializer that emits a Src value
// as a single string scalar.
type StringSerializer[Src any] interface {
	Serializer[Src, string]
}

// StringDeserializer is a specialized Deserializer that recovers a Src value
// from a single string scalar.
type StringDeserializer[Src any] interface {
	Deserializer[Src, string]
}

// String is a Serde implementation used to carry a Src value to and from
// its string representation.
type String[Src any] interface {
	Serde[Src, string]
}

// NewRawString returns a serde that passes a string through as its raw
// UTF-8 bytes. Useful as the second stage of a Chain, to bring a
// string-scalar serde down to a byte-array one.
func NewRawString() Fused[string, []byte] {
	return Fuse[string, []byte](
		SerializerFunc[string, []byte](func(s string) ([]byte, error) {
			return []byte(s), nil
		}),
		DeserializerFunc[string, []byte](func(data []byte) (string, error) {
			return string(data), nil
		}),
	)
}
