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

// Emp wraps an optional struct field carried as a string scalar where the
// empty string stands for "no value": both null and "" read as no value, and
// "no value" writes back as "". The zero Emp holds no value, so entirely
// absent fields decode cleanly.
type Emp[T fmt.Stringer, PT Parseable[T]] struct {
	Value option.Generic[T]
}

// NewEmpValue wraps a present value.
func NewEmpValue[T fmt.Stringer, PT Parseable[T]](value T) Emp[T, PT] {
	return Emp[T, PT]{Value: option.Some(value)}
}

// MarshalJSON implements the json.Marshaler interface.
func (e Emp[T, PT]) MarshalJSON() ([]byte, error) {
	if !e.Value.IsSome() {
		return json.Marshal("")
	}

	return json.Marshal(e.Value.Unwrap().String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Emp[T, PT]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		e.Value = option.None[T]()
		return nil
	}

	text, err := stringScalar(data)
	if err != nil {
		return err
	}

	return e.set(text)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (e Emp[T, PT]) MarshalYAML() (interface{}, error) {
	if !e.Value.IsSome() {
		return "", nil
	}

	return e.Value.Unwrap().String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The yaml
// decoder never routes null nodes here: it zeroes the field instead, and
// the zero Emp already holds no value.
func (e *Emp[T, PT]) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlScalar(node)
	if err != nil {
		return err
	}

	return e.set(text)
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (e Emp[T, PT]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !e.Value.IsSome() {
		return enc.EncodeString("")
	}

	return enc.EncodeString(e.Value.Unwrap().String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (e *Emp[T, PT]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}

	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return err
		}

		e.Value = option.None[T]()

		return nil
	}

	text, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w, %s", ErrNotString, err)
	}

	return e.set(text)
}

func (e *Emp[T, PT]) set(text string) error {
	if text == "" {
		e.Value = option.None[T]()
		return nil
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	e.Value = option.Some(value)

	return nil
}
