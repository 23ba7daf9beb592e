// Package gallery loads the sample buttons shown by the preview server.
package gallery

import (
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/ghiac/htmlbutton/htmlhelper"
)

// Entry kinds
const (
	KindButton = "button"
	KindLink   = "link"
)

// ErrInvalidGallery is returned when a gallery entry fails validation
var ErrInvalidGallery = errors.New("invalid gallery")

// Gallery is a titled list of sample entries
type Gallery struct {
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Entry describes one button or link button
type Entry struct {
	Kind       string         `yaml:"kind"`
	Name       string         `yaml:"name"`
	ID         string         `yaml:"id,omitempty"`
	Text       string         `yaml:"text,omitempty"`
	OnClick    string         `yaml:"onclick,omitempty"`
	URI        string         `yaml:"uri,omitempty"`
	Disabled   *bool          `yaml:"disabled,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
	Icon       map[string]any `yaml:"icon,omitempty"`
}

// Load reads and validates a gallery file
func Load(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML gallery
func Parse(data []byte) (*Gallery, error) {
	var g Gallery
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse gallery: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks every entry has a known kind and a name
func (g *Gallery) Validate() error {
	for i, e := range g.Entries {
		switch e.Kind {
		case KindButton, KindLink:
		default:
			return fmt.Errorf("%w: entry %d has unknown kind %q", ErrInvalidGallery, i, e.Kind)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidGallery, i)
		}
	}
	return nil
}

// Render renders the entry with h
func (e Entry) Render(h *htmlhelper.Helper) (template.HTML, error) {
	if e.Kind == KindLink {
		return h.LinkButton(e.Name, e.LinkButtonOptions())
	}
	return h.Button(e.Name, e.ButtonOptions())
}

// ButtonOptions converts the entry for Helper.Button
func (e Entry) ButtonOptions() htmlhelper.ButtonOptions {
	return htmlhelper.ButtonOptions{
		ID:             e.ID,
		Text:           e.Text,
		OnClickURI:     e.OnClick,
		Disabled:       e.Disabled,
		Attributes:     templ.Attributes(e.Attributes),
		IconAttributes: templ.Attributes(e.Icon),
	}
}

// LinkButtonOptions converts the entry for Helper.LinkButton
func (e Entry) LinkButtonOptions() htmlhelper.LinkButtonOptions {
	return htmlhelper.LinkButtonOptions{
		ID:             e.ID,
		Text:           e.Text,
		URI:            e.URI,
		Disabled:       e.Disabled,
		Attributes:     templ.Attributes(e.Attributes),
		IconAttributes: templ.Attributes(e.Icon),
	}
}
