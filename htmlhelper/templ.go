package htmlhelper

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonComponent renders Button as a templ component. Argument errors are
// returned from Render before anything is written.
func (h *Helper) ButtonComponent(name string, opts ButtonOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := h.Button(name, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(out))
		return err
	})
}

// LinkButtonComponent renders LinkButton as a templ component
func (h *Helper) LinkButtonComponent(name string, opts LinkButtonOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := h.LinkButton(name, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(out))
		return err
	})
}
