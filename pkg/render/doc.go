// Package render defines the render specification produced by block builders:
// a lazy builder directive (callback identifier plus arguments), a flag asking
// the consuming framework to emit a placeholder first, and the fallback markup
// shown until the real content is substituted. The package also owns the wire
// codecs for the specification and a registry of named builders.
//
// Callback identifiers are opaque to this package. Validation only checks
// their `<module>:<method>` shape; resolving and invoking the callback is the
// consumer's job.
package render
