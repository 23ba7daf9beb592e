package server

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/ghiac/htmlbutton/config"
	"github.com/ghiac/htmlbutton/gallery"
	"github.com/ghiac/htmlbutton/htmlhelper"
	"github.com/ghiac/htmlbutton/log"
)

// Server is the preview HTTP server for the button helpers
type Server struct {
	config  *config.Config
	helper  *htmlhelper.Helper
	gallery *gallery.Gallery
	router  *gin.Engine
}

// NewServer creates a server rendering g with helpers configured from cfg
func NewServer(cfg *config.Config, g *gallery.Gallery) (*Server, error) {
	helper := &htmlhelper.Helper{
		Resolver:      htmlhelper.TemplateInfo{HTMLFieldPrefix: cfg.Helper.FieldPrefix},
		IDReplacement: cfg.Helper.IDReplacement,
	}

	tmpl, err := template.New("gallery").Funcs(helper.FuncMap()).Parse(galleryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gallery template: %w", err)
	}

	s := &Server{
		config:  cfg,
		helper:  helper,
		gallery: g,
		router:  gin.New(),
	}
	s.router.Use(requestLogger(), gin.Recovery())
	s.router.SetHTMLTemplate(tmpl)
	s.registerRoutes()
	return s, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if !s.config.HTTP.Enabled {
		log.Log.Infof("HTTP server is disabled")
		return nil
	}

	address := s.config.GetAddress()
	log.Log.Infof("Starting HTTP server on %s", address)
	log.Log.Infof("  GET /              - Button gallery")
	log.Log.Infof("  GET /render/button - Render a button")
	log.Log.Infof("  GET /render/link   - Render a link button")
	if s.config.Features.TemplRoutesEnabled {
		log.Log.Infof("  GET /templ/button  - Render a button through templ")
		log.Log.Infof("  GET /templ/link    - Render a link button through templ")
	}
	log.Log.Infof("  GET /health        - Health check")

	srv := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleGallery)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/render/button", s.handleRenderButton)
	s.router.GET("/render/link", s.handleRenderLink)
	if s.config.Features.TemplRoutesEnabled {
		s.router.GET("/templ/button", s.handleTemplButton)
		s.router.GET("/templ/link", s.handleTemplLink)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRenderButton(c *gin.Context) {
	opts, err := buttonOptionsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := s.helper.Button(c.Query("name"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func (s *Server) handleRenderLink(c *gin.Context) {
	opts, err := linkOptionsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := s.helper.LinkButton(c.Query("name"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func (s *Server) handleTemplButton(c *gin.Context) {
	opts, err := buttonOptionsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	renderComponent(c, s.helper.ButtonComponent(c.Query("name"), opts))
}

func (s *Server) handleTemplLink(c *gin.Context) {
	opts, err := linkOptionsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	renderComponent(c, s.helper.LinkButtonComponent(c.Query("name"), opts))
}

// renderComponent buffers the component so a failed render can still
// produce an error response.
func renderComponent(c *gin.Context, component templ.Component) {
	out, err := templ.ToGoHTML(c.Request.Context(), component)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func buttonOptionsFromQuery(c *gin.Context) (htmlhelper.ButtonOptions, error) {
	disabled, err := queryBool(c, "disabled")
	if err != nil {
		return htmlhelper.ButtonOptions{}, err
	}
	return htmlhelper.ButtonOptions{
		ID:             c.Query("id"),
		Text:           c.Query("text"),
		OnClickURI:     c.Query("onclick"),
		Disabled:       disabled,
		Attributes:     classAttributes(c.Query("class")),
		IconAttributes: classAttributes(c.Query("icon")),
	}, nil
}

func linkOptionsFromQuery(c *gin.Context) (htmlhelper.LinkButtonOptions, error) {
	disabled, err := queryBool(c, "disabled")
	if err != nil {
		return htmlhelper.LinkButtonOptions{}, err
	}
	return htmlhelper.LinkButtonOptions{
		ID:             c.Query("id"),
		Text:           c.Query("text"),
		URI:            c.Query("uri"),
		Disabled:       disabled,
		Attributes:     classAttributes(c.Query("class")),
		IconAttributes: classAttributes(c.Query("icon")),
	}, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, &htmlhelper.ArgumentError{Param: key, Reason: fmt.Sprintf("%q is not a boolean.", value)}
	}
	return &b, nil
}

func classAttributes(class string) templ.Attributes {
	if class == "" {
		return nil
	}
	return templ.Attributes{"class": class}
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, htmlhelper.ErrInvalidArgument) {
		status = http.StatusBadRequest
	} else {
		log.Log.Errorf("render failed for %s: %v", c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Log.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
