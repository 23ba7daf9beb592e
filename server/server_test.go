package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/htmlbutton/config"
	"github.com/ghiac/htmlbutton/gallery"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP:     config.HTTPConfig{Enabled: true, Host: "127.0.0.1", Port: 8080},
		Features: config.FeatureFlags{TemplRoutesEnabled: true},
		Helper:   config.HelperConfig{FieldPrefix: "Order", IDReplacement: "_"},
		LogLevel: "error",
	}
}

func newTestServer(t *testing.T, cfg *config.Config, g *gallery.Gallery) http.Handler {
	t.Helper()
	if g == nil {
		g = gallery.Default()
	}
	srv, err := NewServer(cfg, g)
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, testConfig(), nil), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRenderButton(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	rec := get(t, h, "/render/button?name=Save&text=Save&disabled=true&class=btn+btn-primary&icon=bi+bi-save")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`<button name="Order.Save" id="Order_Save" disabled="disabled" class="btn btn-primary"><i class="bi bi-save"></i> Save</button>`,
		rec.Body.String())
}

func TestRenderLink(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	rec := get(t, h, "/render/link?name=Back&uri=%2Forders&text=Back")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`<a name="Order.Back" id="Order_Back" href="/orders" class="btn btn-default"><i></i> Back</a>`,
		rec.Body.String())
}

func TestRenderRejectsInvalidArguments(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	tests := []struct {
		name   string
		target string
		param  string
	}{
		{"link without uri", "/render/link?name=Back", "uri"},
		{"bad disabled flag", "/render/button?name=Save&disabled=maybe", "disabled"},
		{"templ link without uri", "/templ/link?name=Back", "uri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], "'"+tt.param+"'")
		})
	}
}

func TestRenderWithoutPrefixRequiresName(t *testing.T) {
	cfg := testConfig()
	cfg.Helper.FieldPrefix = ""

	rec := get(t, newTestServer(t, cfg, nil), "/render/button")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplRoutes(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	rec := get(t, h, "/templ/button?name=Save&onclick=%2Forders")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`<button name="Order.Save" id="Order_Save" onclick="location.href=&#39;/orders&#39;"><i></i></button>`,
		rec.Body.String())

	rec = get(t, h, "/templ/link?name=Back&uri=%2F&disabled=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="javascript:function() { return false; }"`)
}

func TestTemplRoutesDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Features.TemplRoutesEnabled = false

	rec := get(t, newTestServer(t, cfg, nil), "/templ/button?name=Save")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGalleryPage(t *testing.T) {
	g := &gallery.Gallery{
		Title: "Test <Gallery>",
		Entries: []gallery.Entry{
			{Kind: gallery.KindButton, Name: "Save", Text: "Save"},
			{Kind: gallery.KindLink, Name: "Broken", Text: "Broken"},
		},
	}

	rec := get(t, newTestServer(t, testConfig(), g), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	page := string(body)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "Test &lt;Gallery&gt;")
	assert.Contains(t, page, `<button name="Order.Save" id="Order_Save"><i></i> Save</button>`)
	assert.Contains(t, page, `&lt;button name=&#34;Order.Save&#34;`)
	assert.Contains(t, page, "Value cannot be null or empty. (parameter &#39;uri&#39;)")
	assert.Contains(t, page, `<a name="Order.Health" id="Order_Health" href="/health" class="btn btn-sm btn-outline-secondary">`)
}
