// Package htmlhelper renders Bootstrap style button and link-button markup
// for server side view templates.
package htmlhelper

import (
	"html/template"
	"strings"

	"github.com/a-h/templ"
)

const (
	locationAssignment = "location.href"

	inertHref     = "javascript:function() { return false; }"
	disabledStyle = "pointer-events:none; cursor:default; opacity: 0.6;"
)

// ButtonOptions are the optional parameters of Button
type ButtonOptions struct {
	// ID overrides the id derived from the field name
	ID   string
	Text string
	// OnClickURI is navigated to on click. A value that already contains
	// location.href is used as the handler verbatim.
	OnClickURI string
	// Disabled is tri-state; nil and false both leave the button enabled
	Disabled       *bool
	Attributes     templ.Attributes
	IconAttributes templ.Attributes
}

// LinkButtonOptions are the parameters of LinkButton besides the field name
type LinkButtonOptions struct {
	ID   string
	Text string
	// URI is required
	URI            string
	Disabled       *bool
	Attributes     templ.Attributes
	IconAttributes templ.Attributes
}

// Helper renders buttons for one view context
type Helper struct {
	Resolver FieldNameResolver
	// IDReplacement replaces runes not allowed in generated ids, "_" when empty
	IDReplacement string
}

// NewHelper creates a Helper resolving names with r
func NewHelper(r FieldNameResolver) *Helper {
	return &Helper{Resolver: r, IDReplacement: DefaultIDReplacement}
}

// Bool returns a pointer to v, for the tri-state Disabled fields
func Bool(v bool) *bool {
	return &v
}

// Button renders a <button> with an icon and optional text using the
// default id replacement.
func Button(r FieldNameResolver, name string, opts ButtonOptions) (template.HTML, error) {
	return NewHelper(r).Button(name, opts)
}

// LinkButton renders an <a> styled as a button using the default id
// replacement.
func LinkButton(r FieldNameResolver, name string, opts LinkButtonOptions) (template.HTML, error) {
	return NewHelper(r).LinkButton(name, opts)
}

// Button renders a <button> element named after the resolved field name
func (h *Helper) Button(name string, opts ButtonOptions) (template.HTML, error) {
	fullName, err := h.fullName(name)
	if err != nil {
		return "", err
	}

	button := NewTagBuilder("button")
	h.identify(button, fullName, opts.ID)

	if opts.OnClickURI != "" {
		button.MergeAttribute("onclick", onClickHandler(opts.OnClickURI), false)
	}
	if isSet(opts.Disabled) {
		button.MergeAttribute("disabled", "disabled", false)
	}
	button.MergeAttributes(opts.Attributes, false)

	appendContent(button, opts.IconAttributes, opts.Text)
	return button.HTML()
}

// LinkButton renders an <a> element carrying the btn classes. A disabled
// link gets an inert href and a style that blocks pointer events instead of
// a disabled attribute.
func (h *Helper) LinkButton(name string, opts LinkButtonOptions) (template.HTML, error) {
	fullName, err := h.fullName(name)
	if err != nil {
		return "", err
	}
	if opts.URI == "" {
		return "", emptyArgument("uri")
	}

	link := NewTagBuilder("a")
	h.identify(link, fullName, opts.ID)

	if isSet(opts.Disabled) {
		link.MergeAttribute("href", inertHref, false)
		link.MergeAttribute("style", disabledStyle, false)
	} else {
		link.MergeAttribute("href", opts.URI, false)
	}
	link.MergeAttributes(opts.Attributes, false)

	if !link.HasClass("btn") {
		link.AddCSSClass("btn")
	}
	if !link.HasClassPrefix("btn-") {
		link.AddCSSClass("btn-default")
	}

	appendContent(link, opts.IconAttributes, opts.Text)
	return link.HTML()
}

func (h *Helper) fullName(name string) (string, error) {
	resolver := h.Resolver
	if resolver == nil {
		resolver = DefaultResolver
	}
	fullName := resolver.FullFieldName(name)
	if fullName == "" {
		return "", emptyArgument("name")
	}
	return fullName, nil
}

func (h *Helper) identify(b *TagBuilder, fullName, id string) {
	b.MergeAttribute("name", fullName, true)

	replacement := h.IDReplacement
	if replacement == "" {
		replacement = DefaultIDReplacement
	}
	if id != "" {
		b.GenerateID(id, replacement)
		return
	}
	b.GenerateID(fullName, replacement)
}

func onClickHandler(uri string) string {
	if strings.Contains(uri, locationAssignment) {
		return uri
	}
	return locationAssignment + "='" + uri + "'"
}

// appendContent adds the <i> icon followed by " text"
func appendContent(b *TagBuilder, iconAttributes templ.Attributes, text string) {
	icon := NewTagBuilder("i")
	icon.MergeAttributes(iconAttributes, false)
	b.AppendChild(icon)

	if text != "" {
		b.AppendText(" " + text)
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}
