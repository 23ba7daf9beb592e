package htmlhelper

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ghiac/htmlbutton/log"
)

// FuncMap exposes the helper to html/template:
//
//	{{ button "Save" (buttonOpts "text" "Save" "icon" (attrs "class" "bi bi-save")) }}
//	{{ linkButton "Back" (linkOpts "uri" "/orders" "text" "Back") }}
//
// Helper errors abort template execution.
func (h *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		"button":     h.buttonFunc,
		"linkButton": h.linkButtonFunc,
		"buttonOpts": ButtonOptionsFromPairs,
		"linkOpts":   LinkButtonOptionsFromPairs,
		"attrs":      AttributesFromPairs,
	}
}

func (h *Helper) buttonFunc(name string, opts ...ButtonOptions) (template.HTML, error) {
	var o ButtonOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	out, err := h.Button(name, o)
	if err != nil {
		log.Log.Debugf("button %q rejected: %v", name, err)
	}
	return out, err
}

func (h *Helper) linkButtonFunc(name string, opts ...LinkButtonOptions) (template.HTML, error) {
	var o LinkButtonOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	out, err := h.LinkButton(name, o)
	if err != nil {
		log.Log.Debugf("link button %q rejected: %v", name, err)
	}
	return out, err
}

// AttributesFromPairs builds attributes from alternating keys and values
func AttributesFromPairs(pairs ...any) (templ.Attributes, error) {
	attrs := make(templ.Attributes, len(pairs)/2)
	err := eachPair(pairs, func(key string, value any) error {
		attrs[normalizeKey(key)] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// ButtonOptionsFromPairs builds ButtonOptions from alternating keys and
// values. Keys: id, text, onclick, disabled, attrs, icon.
func ButtonOptionsFromPairs(pairs ...any) (ButtonOptions, error) {
	var opts ButtonOptions
	err := eachPair(pairs, func(key string, value any) error {
		var err error
		switch key {
		case "id":
			opts.ID = fmt.Sprint(value)
		case "text":
			opts.Text = fmt.Sprint(value)
		case "onclick":
			opts.OnClickURI = fmt.Sprint(value)
		case "disabled":
			opts.Disabled, err = toBool(value)
		case "attrs":
			opts.Attributes, err = ToAttributes(value)
		case "icon":
			opts.IconAttributes, err = ToAttributes(value)
		default:
			err = &ArgumentError{Param: key, Reason: "unknown button option."}
		}
		return err
	})
	return opts, err
}

// LinkButtonOptionsFromPairs builds LinkButtonOptions from alternating keys
// and values. Keys: id, text, uri, disabled, attrs, icon.
func LinkButtonOptionsFromPairs(pairs ...any) (LinkButtonOptions, error) {
	var opts LinkButtonOptions
	err := eachPair(pairs, func(key string, value any) error {
		var err error
		switch key {
		case "id":
			opts.ID = fmt.Sprint(value)
		case "text":
			opts.Text = fmt.Sprint(value)
		case "uri":
			opts.URI = fmt.Sprint(value)
		case "disabled":
			opts.Disabled, err = toBool(value)
		case "attrs":
			opts.Attributes, err = ToAttributes(value)
		case "icon":
			opts.IconAttributes, err = ToAttributes(value)
		default:
			err = &ArgumentError{Param: key, Reason: "unknown link button option."}
		}
		return err
	})
	return opts, err
}

func eachPair(pairs []any, fn func(key string, value any) error) error {
	if len(pairs)%2 != 0 {
		return &ArgumentError{Param: "pairs", Reason: "odd number of key/value arguments."}
	}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return &ArgumentError{Param: "pairs", Reason: fmt.Sprintf("key %v is not a string.", pairs[i])}
		}
		if err := fn(key, pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func toBool(v any) (*bool, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return Bool(t), nil
	case *bool:
		return t, nil
	case string:
		if t == "" {
			return nil, nil
		}
		b, err := strconv.ParseBool(t)
		if err != nil {
			return nil, &ArgumentError{Param: "disabled", Reason: fmt.Sprintf("%q is not a boolean.", t)}
		}
		return Bool(b), nil
	default:
		return nil, &ArgumentError{Param: "disabled", Reason: fmt.Sprintf("%T is not a boolean.", v)}
	}
}
