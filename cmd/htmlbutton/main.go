package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/ghiac/htmlbutton/config"
	"github.com/ghiac/htmlbutton/gallery"
	"github.com/ghiac/htmlbutton/log"
	"github.com/ghiac/htmlbutton/server"
)

func main() {
	galleryPath := pflag.String("gallery", "", "Path to a gallery YAML file (default: built-in gallery or HTMLBUTTON_GALLERY_PATH)")
	port := pflag.Int("port", 0, "HTTP port (default: 8080 or HTMLBUTTON_HTTP_PORT)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	log.Log.SetLevel(log.ParseLevel(cfg.LogLevel))

	if *galleryPath != "" {
		cfg.GalleryPath = *galleryPath
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
		if err := cfg.Validate(); err != nil {
			log.Log.Errorf("Invalid flags: %v", err)
			os.Exit(2)
		}
	}

	log.Log.Infof("=== htmlbutton preview ===")
	log.Log.Infof("Gallery: %s", galleryName(cfg.GalleryPath))
	log.Log.Infof("Field prefix: %q", cfg.Helper.FieldPrefix)
	log.Log.Infof("Templ routes enabled: %v", cfg.Features.TemplRoutesEnabled)

	g := gallery.Default()
	if cfg.GalleryPath != "" {
		g, err = gallery.Load(cfg.GalleryPath)
		if err != nil {
			log.Log.Errorf("Failed to load gallery: %v", err)
			os.Exit(1)
		}
	}
	log.Log.Infof("Loaded %d gallery entries", len(g.Entries))

	srv, err := server.NewServer(cfg, g)
	if err != nil {
		log.Log.Errorf("Failed to create server: %v", err)
		os.Exit(1)
	}
	if err := srv.Start(); err != nil {
		log.Log.Errorf("HTTP server stopped: %v", err)
		os.Exit(1)
	}
}

func galleryName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
