package render

import "errors"

var (
	// ErrInvalidCallback reports a callback identifier that is not of the form
	// `<module>:<method>`.
	ErrInvalidCallback = errors.New("render: invalid callback identifier")
	// ErrInvalidSpec reports a specification that breaks the placeholder
	// invariant.
	ErrInvalidSpec = errors.New("render: invalid render specification")
	// ErrUnsupportedFormat is returned by Encode/Decode for unknown formats.
	ErrUnsupportedFormat = errors.New("render: unsupported format")
	// ErrBuilderNotFound is returned when a registry lookup misses.
	ErrBuilderNotFound = errors.New("render: builder not found")
)
