package htmlhelper

import "strings"

// FieldNameResolver maps a short field name to its fully qualified form in
// the current view context.
type FieldNameResolver interface {
	FullFieldName(name string) string
}

// ResolverFunc adapts a function to FieldNameResolver
type ResolverFunc func(name string) string

// FullFieldName calls f(name)
func (f ResolverFunc) FullFieldName(name string) string {
	return f(name)
}

// TemplateInfo qualifies field names with the prefix of the template being
// rendered, e.g. "Order" + "Save" gives "Order.Save".
type TemplateInfo struct {
	HTMLFieldPrefix string
}

// FullFieldName returns the prefixed field name
func (t TemplateInfo) FullFieldName(name string) string {
	switch {
	case t.HTMLFieldPrefix == "":
		return name
	case name == "":
		return t.HTMLFieldPrefix
	case strings.HasPrefix(name, "["):
		return t.HTMLFieldPrefix + name
	default:
		return t.HTMLFieldPrefix + "." + name
	}
}

// DefaultResolver uses field names as given
var DefaultResolver FieldNameResolver = TemplateInfo{}
