package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// openUpload saves the uploaded workbook to a temp file and opens it.
// The caller must invoke cleanup when done.
func openUpload(c *gin.Context, field string) (f *excelize.File, cleanup func(), err error) {
	var fileHeader *multipart.FileHeader
	fileHeader, err = c.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("no uploaded file in field %q", field)
	}

	tempPath := filepath.Join(os.TempDir(), "hyab_upload_"+uuid.NewString()+".xlsx")
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		return nil, nil, fmt.Errorf("save upload: %w", err)
	}

	f, err = excelize.OpenFile(tempPath)
	if err != nil {
		_ = os.Remove(tempPath)
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}

	cleanup = func() {
		_ = f.Close()
		_ = os.Remove(tempPath)
	}
	return f, cleanup, nil
}

// exportPath returns a fresh file path in the exports directory.
func (h *Handler) exportPath(ext string) string {
	return filepath.Join(h.dataDir, "exports", uuid.NewString()+ext)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// unprocessable reports a workbook that opened fine but lacks the required
// structure (missing sheet, no usable periods).
func unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// formFloat reads an optional numeric form field, keeping def when absent or
// malformed.
func formFloat(c *gin.Context, field string, def float64) float64 {
	v := c.PostForm(field)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func formInt(c *gin.Context, field string, def int) int {
	v := c.PostForm(field)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
