// Package codec provides unified encoding and decoding across JSON,
// YAML and Base64. Failures surface as kernel domain errors: malformed
// payloads carry the invalid-argument code, encoding failures the
// internal code. Errors raised by a value's own marshaling hooks pass
// through untouched.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/functional"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	data, err := marshalJSON(v, c.Pretty, c.Indent)
	if err != nil {
		return nil, encodeError(err, "json encoding failed")
	}
	return data, nil
}

// Decode decodes JSON into value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return decodeError(err, "malformed JSON payload")
	}
	return nil
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// WithIndent sets the indentation string.
func (c *JSONCodec) WithIndent(indent string) *JSONCodec {
	c.Indent = indent
	return c
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	Pretty bool
	Indent string
}

// NewTypedJSONCodec creates a new type-safe JSON codec.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	data, err := marshalJSON(v, c.Pretty, c.Indent)
	if err != nil {
		return nil, encodeError(err, "json encoding failed")
	}
	return data, nil
}

// Decode decodes JSON into a value of type T.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, decodeError(err, "malformed JSON payload")
	}
	return v, nil
}

// WithPretty enables pretty printing.
func (c *TypedJSONCodec[T]) WithPretty() *TypedJSONCodec[T] {
	c.Pretty = true
	return c
}

func marshalJSON(v any, pretty bool, indent string) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", indent)
	}
	return json.Marshal(v)
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	data, err := marshalYAML(v, c.Indent)
	if err != nil {
		return nil, encodeError(err, "yaml encoding failed")
	}
	return data, nil
}

// Decode decodes YAML into value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return decodeError(err, "malformed YAML payload")
	}
	return nil
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	Indent int
}

// NewTypedYAMLCodec creates a new type-safe YAML codec.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{Indent: 2}
}

// Encode encodes value to YAML.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	data, err := marshalYAML(v, c.Indent)
	if err != nil {
		return nil, encodeError(err, "yaml encoding failed")
	}
	return data, nil
}

// Decode decodes YAML into a value of type T.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, decodeError(err, "malformed YAML payload")
	}
	return v, nil
}

func marshalYAML(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Base64Codec encodes/decodes binary payloads as Base64 text.
type Base64Codec struct {
	URLSafe bool
	Padding bool
}

// NewBase64Codec creates a new Base64 codec.
func NewBase64Codec() *Base64Codec {
	return &Base64Codec{Padding: true}
}

// Encode encodes bytes to a Base64 string.
func (c *Base64Codec) Encode(data []byte) string {
	return c.encoding().EncodeToString(data)
}

// Decode decodes a Base64 string to bytes.
func (c *Base64Codec) Decode(s string) ([]byte, error) {
	data, err := c.encoding().DecodeString(s)
	if err != nil {
		return nil, decodeError(err, "malformed Base64 payload")
	}
	return data, nil
}

// WithURLSafe switches to the URL-safe alphabet.
func (c *Base64Codec) WithURLSafe() *Base64Codec {
	c.URLSafe = true
	return c
}

// WithoutPadding disables padding.
func (c *Base64Codec) WithoutPadding() *Base64Codec {
	c.Padding = false
	return c
}

func (c *Base64Codec) encoding() *base64.Encoding {
	enc := base64.StdEncoding
	if c.URLSafe {
		enc = base64.URLEncoding
	}
	if !c.Padding {
		enc = enc.WithPadding(base64.NoPadding)
	}
	return enc
}

// decodeError classifies a decoding failure. Domain errors raised by a
// value's own unmarshaling hook keep their code; everything else is an
// invalid argument.
func decodeError(err error, message string) error {
	if _, ok := errors.AsDomain(err); ok {
		return err
	}
	return errors.ArgumentInvalid(message).WithCause(err)
}

// encodeError classifies an encoding failure as internal unless a
// marshaling hook already produced a domain error.
func encodeError(err error, message string) error {
	if _, ok := errors.AsDomain(err); ok {
		return err
	}
	return errors.Internal(message).WithCause(err)
}

// EncodeResult encodes and returns a Result for functional error
// handling.
func EncodeResult[T any](codec TypedCodec[T], v T) functional.Result[[]byte] {
	data, err := codec.Encode(v)
	if err != nil {
		return functional.Err[[]byte](err)
	}
	return functional.Ok(data)
}

// DecodeResult decodes and returns a Result for functional error
// handling.
func DecodeResult[T any](codec TypedCodec[T], data []byte) functional.Result[T] {
	v, err := codec.Decode(data)
	if err != nil {
		return functional.Err[T](err)
	}
	return functional.Ok(v)
}

// EncodeJSON is a convenience function for JSON encoding.
func EncodeJSON(v any) ([]byte, error) {
	return NewJSONCodec().Encode(v)
}

// DecodeJSON is a convenience function for JSON decoding.
func DecodeJSON[T any](data []byte) (T, error) {
	var v T
	err := NewJSONCodec().Decode(data, &v)
	return v, err
}

// EncodeYAML is a convenience function for YAML encoding.
func EncodeYAML(v any) ([]byte, error) {
	return NewYAMLCodec().Encode(v)
}

// DecodeYAML is a convenience function for YAML decoding.
func DecodeYAML[T any](data []byte) (T, error) {
	var v T
	err := NewYAMLCodec().Decode(data, &v)
	return v, err
}

// Base64Encode encodes bytes to a standard Base64 string.
func Base64Encode(data []byte) string {
	return NewBase64Codec().Encode(data)
}

// Base64Decode decodes a standard Base64 string to bytes.
func Base64Decode(s string) ([]byte, error) {
	return NewBase64Codec().Decode(s)
}

// Base64URLEncode encodes bytes to URL-safe Base64.
func Base64URLEncode(data []byte) string {
	return NewBase64Codec().WithURLSafe().Encode(data)
}

// Base64URLDecode decodes URL-safe Base64 to bytes.
func Base64URLDecode(s string) ([]byte, error) {
	return NewBase64Codec().WithURLSafe().Decode(s)
}

// MustEncode encodes or panics.
func MustEncode(codec Codec, v any) []byte {
	return errors.Must(codec.Encode(v))
}

// MustDecode decodes or panics.
func MustDecode[T any](codec Codec, data []byte) T {
	var v T
	err := codec.Decode(data, &v)
	return errors.Must(v, err)
}
