package strz

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// Opt wraps an optional struct field carried as a string scalar: a missing
// or null input reads as "no value", and "no value" writes back as null.
// The zero Opt holds no value, so entirely absent fields decode cleanly.
type Opt[T fmt.Stringer, PT Parseable[T]] struct {
	Value option.Generic[T]
}

// NewOptValue wraps a present value.
func NewOptValue[T fmt.Stringer, PT Parseable[T]](value T) Opt[T, PT] {
	return Opt[T, PT]{Value: option.Some(value)}
}

// MarshalJSON implements the json.Marshaler interface.
func (o Opt[T, PT]) MarshalJSON() ([]byte, error) {
	if !o.Value.IsSome() {
		return jsonNull, nil
	}

	return json.Marshal(o.Value.Unwrap().String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *Opt[T, PT]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Value = option.None[T]()
		return nil
	}

	text, err := stringScalar(data)
	if err != nil {
		return err
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	o.Value = option.Some(value)

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (o Opt[T, PT]) MarshalYAML() (interface{}, error) {
	if !o.Value.IsSome() {
		return nil, nil
	}

	return o.Value.Unwrap().String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The yaml
// decoder never routes null nodes here: it zeroes the field instead, and
// the zero Opt already holds no value.
func (o *Opt[T, PT]) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlScalar(node)
	if err != nil {
		return err
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	o.Value = option.Some(value)

	return nil
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (o Opt[T, PT]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.Value.IsSome() {
		return enc.EncodeNil()
	}

	return enc.EncodeString(o.Value.Unwrap().String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (o *Opt[T, PT]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}

	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return err
		}

		o.Value = option.None[T]()

		return nil
	}

	text, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w, %s", ErrNotString, err)
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	o.Value = option.Some(value)

	return nil
}
