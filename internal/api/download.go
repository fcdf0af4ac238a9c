package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Download serves a generated file once and invalidates the token.
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}

	if _, err := os.Stat(d.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusGone, gin.H{"error": "file no longer available"})
		return
	}

	c.FileAttachment(d.filePath, d.name)
	h.downloads.delete(token)
}

// View serves a generated file inline without invalidating the token, so a
// dashboard can be viewed in the browser and downloaded afterwards.
// GET /api/view/:token
func (h *Handler) View(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}

	if _, err := os.Stat(d.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusGone, gin.H{"error": "file no longer available"})
		return
	}

	c.Header("Content-Type", d.contentType)
	c.File(d.filePath)
}
