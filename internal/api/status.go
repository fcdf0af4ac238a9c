package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/commentary"
)

// Version is stamped into the status payload and workbook metadata.
const Version = "6.2.0"

// StatusResponse describes the running instance.
type StatusResponse struct {
	App               string             `json:"app"`
	Version           string             `json:"version"`
	CommentaryEnabled bool               `json:"commentaryEnabled"`
	CommentaryModel   string             `json:"commentaryModel,omitempty"`
	FXDefaults        map[string]float64 `json:"fxDefaults"`
	DataDir           string             `json:"dataDir"`
}

// GetStatus reports instance readiness and whether AI commentary is active.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	_, nop := h.generator.(commentary.NopGenerator)
	resp := StatusResponse{
		App:               "hyab-intelligence",
		Version:           Version,
		CommentaryEnabled: !nop,
		FXDefaults:        h.cfg.FX.Rates(),
		DataDir:           h.dataDir,
	}
	if !nop {
		resp.CommentaryModel = h.cfg.Commentary.Model
	}
	c.JSON(http.StatusOK, resp)
}
