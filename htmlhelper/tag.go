package htmlhelper

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultIDReplacement replaces runes that are not valid in a generated id
const DefaultIDReplacement = "_"

// TagBuilder is an in-memory HTML element. Attribute keys are unique and
// compared case-insensitively; the element's children are already-parsed
// markup, so rendering never double-escapes them.
type TagBuilder struct {
	node *html.Node
}

// NewTagBuilder creates an empty element with the given tag name
func NewTagBuilder(tag string) *TagBuilder {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return &TagBuilder{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Tag returns the element name
func (b *TagBuilder) Tag() string {
	return b.node.Data
}

// Attribute returns the value of key and whether it is set
func (b *TagBuilder) Attribute(key string) (string, bool) {
	if i := b.index(normalizeKey(key)); i >= 0 {
		return b.node.Attr[i].Val, true
	}
	return "", false
}

// Attributes returns a copy of the element attributes
func (b *TagBuilder) Attributes() map[string]string {
	out := make(map[string]string, len(b.node.Attr))
	for _, a := range b.node.Attr {
		out[a.Key] = a.Val
	}
	return out
}

// MergeAttribute sets key to value. An existing value is kept unless replace
// is true, except for class where the new tokens are appended. Keys that are
// not valid attribute names are ignored.
func (b *TagBuilder) MergeAttribute(key, value string, replace bool) {
	key = normalizeKey(key)
	if !ValidAttributeKey(key) {
		return
	}
	i := b.index(key)
	switch {
	case i < 0:
		b.node.Attr = append(b.node.Attr, html.Attribute{Key: key, Val: value})
	case replace:
		b.node.Attr[i].Val = value
	case key == "class":
		b.node.Attr[i].Val = appendClasses(b.node.Attr[i].Val, value)
	}
}

// MergeAttributes merges every key of attrs in sorted key order. Values are
// converted with attributeValue; false and nil values are skipped.
func (b *TagBuilder) MergeAttributes(attrs templ.Attributes, replace bool) {
	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		value, ok := attributeValue(key, attrs[key])
		if !ok {
			continue
		}
		b.MergeAttribute(key, value, replace)
	}
}

// AddCSSClass appends the whitespace separated tokens of class that are not
// already present.
func (b *TagBuilder) AddCSSClass(class string) {
	if strings.TrimSpace(class) == "" {
		return
	}
	b.MergeAttribute("class", class, false)
}

// HasClass reports whether any class token equals class, ignoring case
func (b *TagBuilder) HasClass(class string) bool {
	return b.anyClass(func(token string) bool {
		return strings.EqualFold(token, class)
	})
}

// HasClassPrefix reports whether any class token starts with prefix, ignoring case
func (b *TagBuilder) HasClassPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	return b.anyClass(func(token string) bool {
		return strings.HasPrefix(strings.ToLower(token), prefix)
	})
}

func (b *TagBuilder) anyClass(match func(string) bool) bool {
	class, ok := b.Attribute("class")
	if !ok {
		return false
	}
	return slices.ContainsFunc(strings.Fields(class), match)
}

// GenerateID sets the id attribute from name when no id is set yet.
// Invalid runes are replaced with replacement.
func (b *TagBuilder) GenerateID(name, replacement string) {
	if _, ok := b.Attribute("id"); ok {
		return
	}
	if id := SanitizeID(name, replacement); id != "" {
		b.MergeAttribute("id", id, false)
	}
}

// AppendChild appends another element; the child is copied so the
// builder it came from stays usable.
func (b *TagBuilder) AppendChild(child *TagBuilder) {
	b.node.AppendChild(cloneNode(child.node))
}

// AppendText appends escaped text
func (b *TagBuilder) AppendText(text string) {
	b.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// AppendInnerHTML parses markup in the context of this element and appends
// the resulting nodes.
func (b *TagBuilder) AppendInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     b.node.Data,
		DataAtom: b.node.DataAtom,
	})
	if err != nil {
		return fmt.Errorf("failed to parse inner html: %w", err)
	}
	for _, n := range nodes {
		b.node.AppendChild(n)
	}
	return nil
}

// SetInnerHTML replaces the children with the parsed markup
func (b *TagBuilder) SetInnerHTML(markup string) error {
	for c := b.node.FirstChild; c != nil; c = b.node.FirstChild {
		b.node.RemoveChild(c)
	}
	return b.AppendInnerHTML(markup)
}

// Render writes the element to w. It fails for void elements such as input
// that were given children.
func (b *TagBuilder) Render(w io.Writer) error {
	if err := html.Render(w, b.node); err != nil {
		return fmt.Errorf("failed to render <%s>: %w", b.node.Data, err)
	}
	return nil
}

// HTML renders the element as trusted template markup
func (b *TagBuilder) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// String renders the element, or returns "" when HTML would fail
func (b *TagBuilder) String() string {
	out, err := b.HTML()
	if err != nil {
		return ""
	}
	return string(out)
}

func (b *TagBuilder) index(key string) int {
	return slices.IndexFunc(b.node.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// SanitizeID turns name into a valid id: every rune other than an ASCII
// letter, ASCII digit, '-', '_' or ':' is replaced with replacement.
func SanitizeID(name, replacement string) string {
	if name == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range name {
		if isASCIILetter(r) || ('0' <= r && r <= '9') || r == '-' || r == '_' || r == ':' {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(replacement)
	}
	return sb.String()
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// ValidAttributeKey reports whether key can be written as an attribute name
// without escaping: non-empty, no whitespace or control runes and none of
// " ' > / = <.
func ValidAttributeKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsFunc(key, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'>/=<`, r)
	})
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func appendClasses(existing, add string) string {
	tokens := strings.Fields(existing)
	for _, token := range strings.Fields(add) {
		if !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
