package template

// TemplateRenderer is the engine contract the preview renderer relies on.
type TemplateRenderer interface {
	// RenderTemplate renders the named template with data as its context.
	RenderTemplate(name string, data map[string]any) (string, error)
}
