package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a wire encoding for specifications.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps user input (json, yaml, yml) onto a Format. Empty input
// selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// ContentType returns the media type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// Encode serialises spec in the requested format.
func Encode(spec Spec, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(spec)
	case FormatYAML:
		return EncodeYAML(spec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode parses data in the requested format and validates the result.
func Decode(data []byte, format Format) (Spec, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// EncodeJSON writes indented JSON without HTML escaping so markup stays
// readable.
func EncodeJSON(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spec); err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeJSON parses and validates a JSON specification.
func DecodeJSON(data []byte) (Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("render: decode json: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return normalise(spec), nil
}

// EncodeYAML writes a YAML document with two space indentation.
func EncodeYAML(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return nil, fmt.Errorf("render: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeYAML parses and validates a YAML specification.
func DecodeYAML(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("render: decode yaml: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return normalise(spec), nil
}

func normalise(spec Spec) Spec {
	if spec.LazyBuilder.Args == nil {
		spec.LazyBuilder.Args = []any{}
	}
	return spec
}
