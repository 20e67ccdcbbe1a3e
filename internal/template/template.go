// Package template renders named HTML snippets for overlay content.
package template

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	texttemplate "text/template"
)

// Renderer renders a named template with the given variables.
type Renderer interface {
	Render(name string, vars map[string]any) (string, error)
}

// builtin templates used when no override exists on disk
var builtin = map[string]string{
	// routing snippet appended to info window content; Lat/Lng are the
	// resolved coordinate of the window
	"routing": `<div class="map-routing"><a href="https://maps.google.com/maps?daddr={{.Lat}},{{.Lng}}" target="_blank" rel="noopener">&rsaquo; Route</a></div>`,
}

// DirRenderer loads templates from a directory, falling back to the builtin
// set. Parsed templates are cached for the process lifetime.
type DirRenderer struct {
	dir string

	mu     sync.Mutex
	parsed map[string]*texttemplate.Template
}

// NewDirRenderer creates a renderer reading <name>.tmpl files from dir.
// An empty dir serves only the builtin templates.
func NewDirRenderer(dir string) *DirRenderer {
	return &DirRenderer{
		dir:    dir,
		parsed: make(map[string]*texttemplate.Template),
	}
}

// Render renders the named template with vars
func (r *DirRenderer) Render(name string, vars map[string]any) (string, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("error rendering template %q: %w", name, err)
	}
	return b.String(), nil
}

func (r *DirRenderer) lookup(name string) (*texttemplate.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.parsed[name]; ok {
		return t, nil
	}

	if r.dir != "" {
		path := filepath.Join(r.dir, name+".tmpl")
		if t, err := texttemplate.ParseFiles(path); err == nil {
			r.parsed[name] = t.Templates()[0]
			return r.parsed[name], nil
		}
	}

	src, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	t, err := texttemplate.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("error parsing builtin template %q: %w", name, err)
	}
	r.parsed[name] = t
	return t, nil
}
