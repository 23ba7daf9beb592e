package htmlhelper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-viper/mapstructure/v2"
)

// ToAttributes converts a convenience value into an attribute map.
//
// Supported inputs are nil, templ.Attributes, map[string]any,
// map[string]string and structs (or pointers to structs). Map keys are only
// lower-cased. Struct fields use their `attr` tag as key, or the lower-cased
// field name; underscores become hyphens so Data_Toggle maps to data-toggle.
// A tag of "-" skips the field.
func ToAttributes(v any) (templ.Attributes, error) {
	switch t := v.(type) {
	case nil:
		return templ.Attributes{}, nil
	case templ.Attributes:
		return copyAttributes(t), nil
	case map[string]any:
		return copyAttributes(t), nil
	case map[string]string:
		out := make(templ.Attributes, len(t))
		for k, val := range t {
			out[normalizeKey(k)] = val
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return templ.Attributes{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, &ArgumentError{
			Param:  "htmlAttributes",
			Reason: fmt.Sprintf("unsupported attribute source %T.", v),
		}
	}

	var fields map[string]any
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "attr",
		Result:  &fields,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create attribute decoder: %w", err)
	}
	if err := decoder.Decode(rv.Interface()); err != nil {
		return nil, &ArgumentError{Param: "htmlAttributes", Reason: err.Error()}
	}

	out := make(templ.Attributes, len(fields))
	for key, val := range fields {
		out[attributeKey(key)] = val
	}
	return out, nil
}

// MustAttributes is ToAttributes for literals known to be valid
func MustAttributes(v any) templ.Attributes {
	attrs, err := ToAttributes(v)
	if err != nil {
		panic(err)
	}
	return attrs
}

func copyAttributes(in map[string]any) templ.Attributes {
	out := make(templ.Attributes, len(in))
	for k, v := range in {
		out[normalizeKey(k)] = v
	}
	return out
}

func attributeKey(key string) string {
	return strings.ReplaceAll(normalizeKey(key), "_", "-")
}

// attributeValue renders an attribute value. A true bool renders as the key
// itself (disabled="disabled"); false and nil values are dropped.
func attributeValue(key string, v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		if !t {
			return "", false
		}
		return normalizeKey(key), true
	case *bool:
		if t == nil || !*t {
			return "", false
		}
		return normalizeKey(key), true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(t), true
	}
}
