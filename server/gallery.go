package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/ghiac/htmlbutton/gallery"
	"github.com/ghiac/htmlbutton/ui"
)

const galleryTemplate = `{{ .Header }}
<div class="d-flex justify-content-between align-items-center mb-4">
    <h2 class="mb-0">{{ .Title }}</h2>
    {{ linkButton "Health" (linkOpts "uri" "/health" "text" "Health" "attrs" (attrs "class" "btn btn-sm btn-outline-secondary") "icon" (attrs "class" "bi bi-heart-pulse")) }}
</div>
<div class="row g-4">
{{ range .Entries }}
    <div class="col-md-6 col-lg-4">
        <div class="card h-100">
            <div class="card-body">
                <div class="mb-3">
                {{ if .Error }}<div class="alert alert-danger mb-0">{{ .Error }}</div>{{ else }}{{ .Markup }}{{ end }}
                </div>
                <pre class="gallery-source bg-light p-2 mb-2">{{ .Source }}</pre>
                <pre class="gallery-source bg-light p-2 mb-0">{{ printf "%s" .Markup }}</pre>
            </div>
        </div>
    </div>
{{ end }}
</div>
{{ .Footer }}`

type galleryEntryView struct {
	Markup template.HTML
	Source string
	Error  string
}

type galleryPageView struct {
	Title   string
	Header  template.HTML
	Footer  template.HTML
	Entries []galleryEntryView
}

func (s *Server) handleGallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery", s.galleryView())
}

// galleryView renders every entry up front so a broken entry shows its
// error instead of failing the whole page.
func (s *Server) galleryView() galleryPageView {
	view := galleryPageView{
		Title:  s.gallery.Title,
		Header: ui.Header(s.gallery.Title) + ui.ContainerStart(),
		Footer: ui.ContainerEnd() + ui.Footer(),
	}
	for _, entry := range s.gallery.Entries {
		view.Entries = append(view.Entries, s.renderEntry(entry))
	}
	return view
}

func (s *Server) renderEntry(entry gallery.Entry) galleryEntryView {
	var v galleryEntryView
	if source, err := yaml.Marshal(entry); err == nil {
		v.Source = string(source)
	}
	markup, err := entry.Render(s.helper)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	v.Markup = markup
	return v
}
