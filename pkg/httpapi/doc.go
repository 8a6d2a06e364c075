// Package httpapi exposes the block registry over HTTP: block listing, the
// encoded render specification of a block, its placeholder preview and an
// OpenAPI document describing those routes.
package httpapi
