package render

import (
	"fmt"
	"strings"
	"unicode"
)

// CallbackSeparator splits the module and method halves of a CallbackID.
const CallbackSeparator = ":"

// CallbackID names an externally registered lazy builder callback using the
// `<module>:<method>` convention, e.g. "icecream:lazyCallback".
type CallbackID string

// ParseCallbackID trims raw and checks it has exactly one separator with a
// non-empty module and method on either side.
func ParseCallbackID(raw string) (CallbackID, error) {
	id := CallbackID(strings.TrimSpace(raw))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate reports whether the identifier is well formed.
func (id CallbackID) Validate() error {
	raw := string(id)
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrInvalidCallback)
	}
	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidCallback, raw)
	}
	if strings.Count(raw, CallbackSeparator) != 1 {
		return fmt.Errorf("%w: %q must have the form <module>:<method>", ErrInvalidCallback, raw)
	}
	module, method, _ := strings.Cut(raw, CallbackSeparator)
	if module == "" || method == "" {
		return fmt.Errorf("%w: %q must have the form <module>:<method>", ErrInvalidCallback, raw)
	}
	return nil
}

// Module returns the part before the separator.
func (id CallbackID) Module() string {
	module, _, _ := strings.Cut(string(id), CallbackSeparator)
	return module
}

// Method returns the part after the separator, or "" when there is none.
func (id CallbackID) Method() string {
	_, method, _ := strings.Cut(string(id), CallbackSeparator)
	return method
}

func (id CallbackID) String() string {
	return string(id)
}
