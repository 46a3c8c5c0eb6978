package prompt

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Template wraps a parsed text/template that is either read from disk or
// given inline. It is immutable once built and safe for concurrent use.
type Template struct {
	name string
	path string // empty for inline templates
	tmpl *template.Template
	hash string
}

// NewTemplate parses the template at path using the provided template functions.
func NewTemplate(path string, funcs template.FuncMap) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prompt template path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt template %q: %w", path, err)
	}
	t := &Template{name: filepath.Base(path), path: path}
	if err := t.parse(data, funcs); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse builds a template from inline text.
func Parse(name, text string, funcs template.FuncMap) (*Template, error) {
	t := &Template{name: name}
	if err := t.parse([]byte(text), funcs); err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the template with the provided data and returns the rendered string.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute prompt template %q: %w", t.name, err)
	}
	return buf.String(), nil
}

// RenderTemplate executes the associated template called name, as declared
// with a define action.
func (t *Template) RenderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute prompt template %q/%s: %w", t.name, name, err)
	}
	return buf.String(), nil
}

// Defines reports whether the template declares a block called name.
func (t *Template) Defines(name string) bool {
	return t.tmpl.Lookup(name) != nil
}

// Source reports the file path, or "inline:<name>" for inline templates.
func (t *Template) Source() string {
	if t.path == "" {
		return "inline:" + t.name
	}
	return t.path
}

func (t *Template) parse(data []byte, funcs template.FuncMap) error {
	tmpl := template.New(t.name).Option("missingkey=error")
	if len(funcs) > 0 {
		tmpl = tmpl.Funcs(funcs)
	}
	if _, err := tmpl.Parse(string(data)); err != nil {
		return fmt.Errorf("parse prompt template %q: %w", t.name, err)
	}
	t.tmpl = tmpl
	t.hash = DigestBytes(data)
	return nil
}

// Digest returns the sha256 hash of the template source.
func (t *Template) Digest() string {
	return t.hash
}

// DigestString returns the sha256 digest for the provided string.
func DigestString(s string) string {
	return DigestBytes([]byte(s))
}

// DigestBytes returns the hex sha256 digest of data.
func DigestBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
