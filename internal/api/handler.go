// Package api exposes the HTTP interface: upload endpoints for the three
// processing modes, a status probe and one-time download links for generated
// files.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/commentary"
	"github.com/Debelvoir/HYAB-6.2/internal/config"
)

// Handler carries the shared state of the API endpoints.
type Handler struct {
	cfg       *config.AppConfig
	dataDir   string
	generator commentary.Generator
	downloads *downloadStore
}

func NewHandler(cfg *config.AppConfig, dataDir string, gen commentary.Generator) *Handler {
	if gen == nil {
		gen = commentary.NopGenerator{}
	}
	return &Handler{
		cfg:       cfg,
		dataDir:   dataDir,
		generator: gen,
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes wires the API endpoints onto a router group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/intelligence", h.Intelligence)
	router.POST("/orderbook", h.OrderBook)
	router.POST("/sales", h.Sales)

	router.GET("/download/:token", h.Download)
	router.GET("/view/:token", h.View)
}
