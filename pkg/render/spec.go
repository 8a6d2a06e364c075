package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Spec is a render specification: it asks the consuming framework to render
// Markup straight away and, when CreatePlaceholder is set, to replace it later
// with the output of LazyBuilder.
type Spec struct {
	LazyBuilder       LazyBuilder `json:"#lazy_builder" yaml:"#lazy_builder,omitempty"`
	CreatePlaceholder bool        `json:"#create_placeholder" yaml:"#create_placeholder"`
	Markup            string      `json:"#markup" yaml:"#markup"`
}

// specWire is the JSON shape of Spec. The lazy builder is a pointer so a
// spec without a callback leaves the key out.
type specWire struct {
	LazyBuilder       *LazyBuilder `json:"#lazy_builder,omitempty"`
	CreatePlaceholder bool         `json:"#create_placeholder"`
	Markup            string       `json:"#markup"`
}

// LazyBuilder pairs a callback identifier with the ordered arguments the
// consumer passes to it. On the wire it is the two element sequence
// [callback, args].
//
// Numeric arguments are held as int64 when they are whole and as float64
// otherwise, so a value reads back the same from Go, JSON and YAML.
type LazyBuilder struct {
	Callback CallbackID
	Args     []any
}

// NewLazyBuilder returns a builder directive with a non-nil argument list and
// normalised numbers.
func NewLazyBuilder(callback CallbackID, args ...any) LazyBuilder {
	return LazyBuilder{Callback: callback, Args: normaliseArgs(args)}
}

// Validate enforces the placeholder invariant: a spec that asks for a
// placeholder must name a well formed callback. Whether the callback exists
// is for the consumer to decide.
func (s Spec) Validate() error {
	if s.LazyBuilder.Callback == "" {
		if s.CreatePlaceholder {
			return fmt.Errorf("%w: placeholder requested without a lazy builder", ErrInvalidSpec)
		}
		if len(s.LazyBuilder.Args) > 0 {
			return fmt.Errorf("%w: lazy builder arguments without a callback", ErrInvalidSpec)
		}
		return nil
	}
	if err := s.LazyBuilder.Callback.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result freely.
func (s Spec) Clone() Spec {
	out := s
	out.LazyBuilder = s.LazyBuilder.Clone()
	return out
}

// Equal reports structural equality. Nil and empty argument lists compare
// equal.
func (s Spec) Equal(other Spec) bool {
	return s.CreatePlaceholder == other.CreatePlaceholder &&
		s.Markup == other.Markup &&
		s.LazyBuilder.Equal(other.LazyBuilder)
}

// MarshalJSON writes the three wire keys, leaving out #lazy_builder when
// there is no callback.
func (s Spec) MarshalJSON() ([]byte, error) {
	wire := specWire{CreatePlaceholder: s.CreatePlaceholder, Markup: s.Markup}
	if !s.LazyBuilder.IsZero() {
		lb := s.LazyBuilder
		wire.LazyBuilder = &lb
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// IsZero reports a directive with neither callback nor arguments.
func (b LazyBuilder) IsZero() bool {
	return b.Callback == "" && len(b.Args) == 0
}

// Clone copies the argument list, including nested slices and maps.
func (b LazyBuilder) Clone() LazyBuilder {
	args := make([]any, 0, len(b.Args))
	for _, arg := range b.Args {
		args = append(args, cloneValue(arg))
	}
	return LazyBuilder{Callback: b.Callback, Args: args}
}

// Equal reports structural equality. Numbers compare by value, so int(3)
// and float64(3) are the same argument.
func (b LazyBuilder) Equal(other LazyBuilder) bool {
	if b.Callback != other.Callback {
		return false
	}
	if len(b.Args) == 0 && len(other.Args) == 0 {
		return true
	}
	return reflect.DeepEqual(normaliseArgs(b.Args), normaliseArgs(other.Args))
}

// MarshalJSON encodes the directive as [callback, args].
func (b LazyBuilder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.tuple())
}

// UnmarshalJSON decodes [callback] or [callback, args].
func (b *LazyBuilder) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("render: lazy builder must be a [callback, args] sequence: %w", err)
	}
	if parts == nil {
		*b = LazyBuilder{Args: []any{}}
		return nil
	}
	if len(parts) == 0 || len(parts) > 2 {
		return fmt.Errorf("render: lazy builder expects 1 or 2 elements, got %d", len(parts))
	}

	var callback string
	if err := json.Unmarshal(parts[0], &callback); err != nil {
		return fmt.Errorf("render: lazy builder callback: %w", err)
	}
	var args []any
	if len(parts) == 2 {
		dec := json.NewDecoder(bytes.NewReader(parts[1]))
		dec.UseNumber()
		if err := dec.Decode(&args); err != nil {
			return fmt.Errorf("render: lazy builder args: %w", err)
		}
	}
	*b = NewLazyBuilder(CallbackID(callback), args...)
	return nil
}

// MarshalYAML encodes the directive as a [callback, args] sequence.
func (b LazyBuilder) MarshalYAML() (any, error) {
	return b.tuple(), nil
}

// UnmarshalYAML decodes [callback] or [callback, args].
func (b *LazyBuilder) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("render: lazy builder must be a [callback, args] sequence (line %d)", value.Line)
	}
	if len(value.Content) == 0 || len(value.Content) > 2 {
		return fmt.Errorf("render: lazy builder expects 1 or 2 elements, got %d (line %d)", len(value.Content), value.Line)
	}

	var callback string
	if err := value.Content[0].Decode(&callback); err != nil {
		return fmt.Errorf("render: lazy builder callback: %w", err)
	}
	var args []any
	if len(value.Content) == 2 {
		if err := value.Content[1].Decode(&args); err != nil {
			return fmt.Errorf("render: lazy builder args: %w", err)
		}
	}
	*b = NewLazyBuilder(CallbackID(callback), args...)
	return nil
}

func (b LazyBuilder) tuple() []any {
	args := b.Args
	if args == nil {
		args = []any{}
	}
	return []any{string(b.Callback), args}
}

func normaliseArgs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = normaliseValue(arg)
	}
	return out
}

// normaliseValue copies value, turning every number into int64 when it is
// whole and fits, float64 otherwise.
func normaliseValue(value any) any {
	switch v := value.(type) {
	case []any:
		return normaliseArgs(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normaliseValue(item)
		}
		return out
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return normaliseFloat(f)
		}
		return v.String()
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return normaliseUint(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return normaliseUint(v)
	case float32:
		return normaliseFloat(float64(v))
	case float64:
		return normaliseFloat(v)
	default:
		return v
	}
}

func normaliseUint(v uint64) any {
	if v > math.MaxInt64 {
		return float64(v)
	}
	return int64(v)
}

func normaliseFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
