package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-rendercache/pkg/render"
	"github.com/goliatone/go-rendercache/pkg/render/template"
	"github.com/goliatone/go-rendercache/pkg/render/template/gotemplate"
)

const (
	// DefaultTemplate is the template used for every preview.
	DefaultTemplate = "placeholder"
	// ContentType is the media type of rendered previews.
	ContentType = "text/html; charset=utf-8"

	placeholderClass = "lazy-placeholder"
)

var tokenNamePattern = regexp.MustCompile(`[^a-z0-9-]+`)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplatesDir loads templates from dir before falling back to the
// built-in ones.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		r.templatesDir = strings.TrimSpace(dir)
	}
}

// WithSanitizer replaces the markup policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.sanitizer = policy
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTheme applies a default theme selection to every render.
func WithTheme(selection *theme.Selection) Option {
	return func(r *Renderer) {
		r.theme = selection
	}
}

// Options carry per-render overrides.
type Options struct {
	// Theme overrides the renderer's default theme selection.
	Theme *theme.Selection
}

// Renderer produces HTML previews of render specifications.
type Renderer struct {
	engine       template.TemplateRenderer
	templatesDir string
	sanitizer    *bluemonday.Policy
	logger       *zap.Logger
	theme        *theme.Selection
}

// New constructs a Renderer backed by the pongo2 engine unless another engine
// is supplied.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		sanitizer: DefaultSanitizer(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.engine == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
		if r.templatesDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(r.templatesDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("preview: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// ContentType reports the media type of Render output.
func (r *Renderer) ContentType() string { return ContentType }

// Render validates spec and renders its preview.
func (r *Renderer) Render(ctx context.Context, spec render.Spec, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	data, err := r.viewData(spec, opts)
	if err != nil {
		return nil, err
	}

	out, err := r.engine.RenderTemplate(DefaultTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("preview: render: %w", err)
	}

	r.logger.Debug("rendered preview",
		zap.String("callback", spec.LazyBuilder.Callback.String()),
		zap.Bool("placeholder", spec.CreatePlaceholder),
		zap.Int("bytes", len(out)),
	)
	return []byte(out), nil
}

func (r *Renderer) viewData(spec render.Spec, opts Options) (map[string]any, error) {
	args := spec.LazyBuilder.Args
	if args == nil {
		args = []any{}
	}
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("preview: encode lazy builder args: %w", err)
	}

	selection := r.theme
	if opts.Theme != nil {
		selection = opts.Theme
	}

	return map[string]any{
		"placeholder": spec.CreatePlaceholder,
		"callback":    spec.LazyBuilder.Callback.String(),
		"args":        string(encodedArgs),
		"markup":      r.sanitizer.Sanitize(spec.Markup),
		"classes":     strings.Join(themeClasses(selection), " "),
		"style":       themeStyle(selection),
	}, nil
}

func themeClasses(selection *theme.Selection) []string {
	classes := []string{placeholderClass}
	if selection == nil || selection.Theme == "" {
		return classes
	}
	name := tokenName(selection.Theme)
	classes = append(classes, placeholderClass+"--"+name)
	if selection.Variant != "" {
		classes = append(classes, placeholderClass+"--"+name+"-"+tokenName(selection.Variant))
	}
	return classes
}

// themeStyle exposes manifest tokens as CSS custom properties, sorted by name.
func themeStyle(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return ""
	}
	names := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		name := tokenName(key)
		value = strings.TrimSpace(value)
		if name == "" || value == "" || strings.ContainsAny(value, ";{}") {
			continue
		}
		names[name] = value
	}

	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, name := range keys {
		parts = append(parts, fmt.Sprintf("--%s: %s", name, names[name]))
	}
	return strings.Join(parts, "; ")
}

func tokenName(raw string) string {
	return strings.Trim(tokenNamePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "-"), "-")
}
