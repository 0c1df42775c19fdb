package note

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// BuiltinTemplateName is the name of the embedded monthly note template.
const BuiltinTemplateName = "monthly_tweets"

//go:embed templates/*.md
var builtinFS embed.FS

// Renderer turns a monthly note input into a document.
type Renderer interface {
	Render(w io.Writer, in *Input) error
}

// Template is a text/template backed Renderer.
type Template struct {
	Name   string
	Source string // "built-in" or the file path

	text string
	tmpl *template.Template
}

// frontMatter is the YAML header written at the top of every note.
type frontMatter struct {
	ID      string   `yaml:"id"`
	Created string   `yaml:"created"`
	Year    string   `yaml:"year"`
	Month   string   `yaml:"month"`
	Tags    []string `yaml:"tags"`
}

// LoadTemplate loads the template at path, or the built-in one when path is empty.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return loadBuiltin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseTemplate(name, path, string(data))
}

// loadBuiltin loads the embedded monthly note template.
func loadBuiltin() (*Template, error) {
	path := "templates/" + BuiltinTemplateName + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return ParseTemplate(BuiltinTemplateName, "built-in", string(data))
}

// ParseTemplate compiles template text. Missing keys are errors so that a
// typo in a custom template fails instead of silently rendering "<no value>".
func ParseTemplate(name, source, text string) (*Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"frontmatter": renderFrontMatter,
			"pad2":        func(n int) string { return fmt.Sprintf("%02d", n) },
		}).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}
	return &Template{Name: name, Source: source, text: text, tmpl: tmpl}, nil
}

// Text returns the raw template text.
func (t *Template) Text() string {
	return t.text
}

// Render executes the template for in.
func (t *Template) Render(w io.Writer, in *Input) error {
	if err := t.tmpl.Execute(w, in); err != nil {
		return fmt.Errorf("rendering template %s: %w", t.Name, err)
	}
	return nil
}

// renderFrontMatter encodes the note header as YAML (without delimiters).
// Values such as the numeric ID are quoted so they stay strings.
func renderFrontMatter(in *Input) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(frontMatter{
		ID:      in.ID,
		Created: in.FileCreatedAt,
		Year:    in.Year,
		Month:   in.Month,
		Tags:    []string{"tweets"},
	})
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	return buf.String(), nil
}
