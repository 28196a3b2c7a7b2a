package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// unexpandedTokenPattern detects leftover template actions in rendered
// output. Only {{.X}} is checked: generated JavaScript legitimately
// contains ${x} interpolations and $VAR references.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the filesystem and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// RendererOption configures a Renderer.
type RendererOption func(*renderer)

// WithSecretSource replaces the generator behind the "secret" template
// function. Tests use it for reproducible output.
func WithSecretSource(fn func() string) RendererOption {
	return func(r *renderer) {
		r.secret = fn
	}
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys   fs.FS
	secret func() string
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS, opts ...RendererOption) Renderer {
	r := &renderer{fsys: fsys, secret: randomSecret}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// randomSecret returns 64 hex characters built from two random UUIDs.
func randomSecret() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func (r *renderer) funcs() template.FuncMap {
	return template.FuncMap{
		// jsString escapes a string for a single-quoted JS literal.
		"jsString": jsString,
		"envQuote": envQuote,
		"secret":   r.secret,
		"upper":    strings.ToUpper,
		"join":     strings.Join,
	}
}

func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return strings.ReplaceAll(string(b[1:len(b)-1]), "'", `\'`)
}

// envQuote quotes a value for a .env file so dotenv reads it back
// unchanged. Single quotes are literal; a value holding one, or ending in a
// backslash, falls back to double quotes (only while it has no backslash or
// double quote) and then to backticks.
func envQuote(s string) string {
	switch {
	case !strings.Contains(s, "'") && !strings.HasSuffix(s, `\`):
		return "'" + s + "'"
	case !strings.ContainsAny(s, `"\`):
		return `"` + s + `"`
	default:
		return "`" + s + "`"
	}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(r.funcs()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
