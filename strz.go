package strz

import (
	"fmt"

	"github.com/strz/go-strz/serde"
)

// ParseFunc is the text-parsing capability of a type: it constructs a T
// from its string form, fallibly. Parsers such as uuid.Parse or
// url.Parse satisfy it directly.
type ParseFunc[T any] func(s string) (T, error)

// NewSerializer returns a serializer that emits the value's fmt.Stringer
// form as a string scalar. Stringification is assumed infallible, so the
// returned serializer never fails.
func NewSerializer[T fmt.Stringer]() serde.SerializerFunc[T, string] {
	return func(t T) (string, error) {
		return t.String(), nil
	}
}

// NewDeserializer returns a deserializer that reconstructs a T from a string
// scalar using the given parse function. A parse failure surfaces as a
// ParseError carrying the parser's own message.
func NewDeserializer[T any](parse ParseFunc[T]) serde.DeserializerFunc[T, string] {
	return func(s string) (T, error) {
		var zeroValue T

		v, err := parse(s)
		if err != nil {
			return zeroValue, errParse(s, err)
		}

		return v, nil
	}
}

// New returns a serde that carries a T through its text representation.
func New[T fmt.Stringer](parse ParseFunc[T]) serde.Fused[T, string] {
	return serde.Fuse[T, string](
		NewSerializer[T](),
		NewDeserializer(parse),
	)
}
