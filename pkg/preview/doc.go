// Package preview renders what a consuming framework shows immediately for a
// render specification: the fallback markup, wrapped in a placeholder element
// that carries the lazy builder directive when a placeholder is requested.
// The lazy callback itself is never invoked here.
package preview
