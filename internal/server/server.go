// Package server wires the gin engine: CORS, API routes and the embedded
// upload page.
package server

import (
	"embed"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/api"
	"github.com/Debelvoir/HYAB-6.2/internal/commentary"
	"github.com/Debelvoir/HYAB-6.2/internal/config"
)

//go:embed index.html
var staticFiles embed.FS

// Server is the HTTP front of the tool.
type Server struct {
	router *gin.Engine
	api    *api.Handler
}

// NewServer builds the server. The commentary generator is active only when
// an API key is present in the environment.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("create data directory: %v", err)
	}

	var gen commentary.Generator = commentary.NopGenerator{}
	if key := config.APIKey(); key != "" {
		gen = commentary.NewClaude(key, cfg.Commentary.Model, cfg.Commentary.MaxTokens,
			time.Duration(cfg.Commentary.TimeoutSeconds)*time.Second)
	}

	s := &Server{
		router: gin.Default(),
		api:    api.NewHandler(cfg, dataDir, gen),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/", func(c *gin.Context) {
		data, err := staticFiles.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
