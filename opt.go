package strz

import (
	"fmt"

	"github.com/tarantool/go-option"

	"github.com/strz/go-strz/serde"
)

// NewOptSerializer returns a serializer for optional values: no value stays
// no value, a present value is emitted through its fmt.Stringer form.
func NewOptSerializer[T fmt.Stringer]() serde.SerializerFunc[option.Generic[T], option.Generic[string]] {
	return func(src option.Generic[T]) (option.Generic[string], error) {
		if !src.IsSome() {
			return option.None[string](), nil
		}

		return option.Some(src.Unwrap().String()), nil
	}
}

// NewOptDeserializer returns a deserializer for optional values: no value
// stays no value, a present string scalar is parsed with the given parse
// function.
func NewOptDeserializer[T any](parse ParseFunc[T]) serde.DeserializerFunc[option.Generic[T], option.Generic[string]] {
	return func(dst option.Generic[string]) (option.Generic[T], error) {
		if !dst.IsSome() {
			return option.None[T](), nil
		}

		s := dst.Unwrap()

		v, err := parse(s)
		if err != nil {
			return option.None[T](), errParse(s, err)
		}

		return option.Some(v), nil
	}
}

// NewOpt returns a serde that carries an optional T through its text
// representation, preserving "no value" on both sides of the bridge.
func NewOpt[T fmt.Stringer](parse ParseFunc[T]) serde.Fused[option.Generic[T], option.Generic[string]] {
	return serde.Fuse[option.Generic[T], option.Generic[string]](
		NewOptSerializer[T](),
		NewOptDeserializer(parse),
	)
}
