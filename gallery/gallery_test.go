package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/htmlbutton/htmlhelper"
)

func TestDefaultGalleryRenders(t *testing.T) {
	g := Default()
	require.NotEmpty(t, g.Entries)
	assert.Equal(t, "Buttons", g.Title)

	h := htmlhelper.NewHelper(htmlhelper.DefaultResolver)
	for _, e := range g.Entries {
		out, err := e.Render(h)
		require.NoError(t, err, "entry %s", e.Name)

		switch e.Kind {
		case KindButton:
			assert.True(t, strings.HasPrefix(string(out), "<button "), "entry %s: %s", e.Name, out)
		case KindLink:
			assert.True(t, strings.HasPrefix(string(out), "<a "), "entry %s: %s", e.Name, out)
		}
	}
}

func TestParse(t *testing.T) {
	g, err := Parse([]byte(`
title: Orders
entries:
  - kind: link
    name: Archive
    text: Archive
    uri: /orders/archive
    disabled: true
    attributes:
      class: btn btn-warning
      data-confirm: "yes"
    icon:
      class: bi bi-archive
`))
	require.NoError(t, err)
	require.Len(t, g.Entries, 1)

	e := g.Entries[0]
	assert.Equal(t, "Orders", g.Title)
	require.NotNil(t, e.Disabled)
	assert.True(t, *e.Disabled)

	opts := e.LinkButtonOptions()
	assert.Equal(t, "/orders/archive", opts.URI)
	assert.Equal(t, "btn btn-warning", opts.Attributes["class"])
	assert.Equal(t, "bi bi-archive", opts.IconAttributes["class"])

	out, err := e.Render(htmlhelper.NewHelper(htmlhelper.DefaultResolver))
	require.NoError(t, err)
	assert.Equal(t,
		`<a name="Archive" id="Archive" href="javascript:function() { return false; }" style="pointer-events:none; cursor:default; opacity: 0.6;" class="btn btn-warning" data-confirm="yes"><i class="bi bi-archive"></i> Archive</a>`,
		string(out))
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "entries:\n  - kind: toggle\n    name: x\n"},
		{"missing kind", "entries:\n  - name: x\n"},
		{"missing name", "entries:\n  - kind: button\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidGallery)
		})
	}

	_, err := Parse([]byte("entries: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: File\nentries:\n  - kind: button\n    name: Go\n    onclick: /go\n"), 0o600))

	g, err := Load(path)
	require.NoError(t, err)
	require.Len(t, g.Entries, 1)
	assert.Equal(t, "/go", g.Entries[0].ButtonOptions().OnClickURI)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderEntryWithoutURIFails(t *testing.T) {
	e := Entry{Kind: KindLink, Name: "Back"}
	_, err := e.Render(htmlhelper.NewHelper(htmlhelper.DefaultResolver))
	assert.ErrorIs(t, err, htmlhelper.ErrInvalidArgument)
}
