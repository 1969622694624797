package strz

import (
	"fmt"

	"github.com/tarantool/go-option"

	"github.com/strz/go-strz/serde"
)

// NewEmpSerializer returns a serializer for optional values where "no value"
// is represented by the empty string.
func NewEmpSerializer[T fmt.Stringer]() serde.SerializerFunc[option.Generic[T], string] {
	return func(src option.Generic[T]) (string, error) {
		if !src.IsSome() {
			return "", nil
		}

		return src.Unwrap().String(), nil
	}
}

// NewEmpDeserializer returns a deserializer for optional values where the
// empty string reads as "no value"; anything else is parsed with the given
// parse function.
func NewEmpDeserializer[T any](parse ParseFunc[T]) serde.DeserializerFunc[option.Generic[T], string] {
	return func(s string) (option.Generic[T], error) {
		if s == "" {
			return option.None[T](), nil
		}

		v, err := parse(s)
		if err != nil {
			return option.None[T](), errParse(s, err)
		}

		return option.Some(v), nil
	}
}

// NewEmp returns a serde that carries an optional T through its text
// representation, mapping "no value" to the empty string and back.
func NewEmp[T fmt.Stringer](parse ParseFunc[T]) serde.Fused[option.Generic[T], string] {
	return serde.Fuse[option.Generic[T], string](
		NewEmpSerializer[T](),
		NewEmpDeserializer(parse),
	)
}
