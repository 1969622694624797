package strz

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Parseable is the pointer half of the text capability pair: a *T that can
// populate itself from text.
type Parseable[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Str wraps a struct field so that it is carried as a string scalar: written
// through the value's fmt.Stringer form, read back through its
// encoding.TextUnmarshaler implementation.
//
//	type Host struct {
//		IP strz.Str[net.IP, *net.IP] `json:"ip"`
//	}
//
// The wrapper applies to JSON, YAML and MessagePack alike.
type Str[T fmt.Stringer, PT Parseable[T]] struct {
	Value T
}

// NewStr wraps the given value.
func NewStr[T fmt.Stringer, PT Parseable[T]](value T) Str[T, PT] {
	return Str[T, PT]{Value: value}
}

// MarshalJSON implements the json.Marshaler interface.
func (s Str[T, PT]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Str[T, PT]) UnmarshalJSON(data []byte) error {
	text, err := stringScalar(data)
	if err != nil {
		return err
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	s.Value = value

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s Str[T, PT]) MarshalYAML() (interface{}, error) {
	return s.Value.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *Str[T, PT]) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlScalar(node)
	if err != nil {
		return err
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	s.Value = value

	return nil
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (s Str[T, PT]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.Value.String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (s *Str[T, PT]) DecodeMsgpack(dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w, %s", ErrNotString, err)
	}

	value, err := parseText[T, PT](text)
	if err != nil {
		return err
	}

	s.Value = value

	return nil
}

// parseText runs the wrapped type's text-parsing capability, mapping a
// failure into a ParseError.
func parseText[T any, PT Parseable[T]](text string) (T, error) {
	var value T

	if err := PT(&value).UnmarshalText([]byte(text)); err != nil {
		var zeroValue T
		return zeroValue, errParse(text, err)
	}

	return value, nil
}

// stringScalar extracts a JSON string scalar, reporting ErrNotString for any
// other input shape.
func stringScalar(data []byte) (string, error) {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%w, got %s", ErrNotString, data)
	}

	return s, nil
}

// yamlScalar extracts a YAML string scalar, reporting ErrNotString for any
// other input shape.
func yamlScalar(node *yaml.Node) (string, error) {
	var s string

	if err := node.Decode(&s); err != nil {
		return "", fmt.Errorf("%w, got yaml %s node", ErrNotString, node.Tag)
	}

	return s, nil
}
