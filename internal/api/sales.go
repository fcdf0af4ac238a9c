package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/service/sales"
)

// SalesResponse summarizes a processed monthly sales export.
type SalesResponse struct {
	TotalSales   float64 `json:"totalSales"`
	Articles     int     `json:"articles"`
	Customers    int     `json:"customers"`
	Top20ArtPct  float64 `json:"top20ArticlePct"`
	Top20CustPct float64 `json:"top20CustomerPct"`
	DownloadURL  string  `json:"downloadUrl"`
}

// Sales cleans an uploaded monthly sales export.
// POST /api/sales (multipart, field "file")
func (h *Handler) Sales(c *gin.Context) {
	f, cleanup, err := openUpload(c, "file")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer cleanup()

	res, err := sales.Process(f)
	if err != nil {
		unprocessable(c, err)
		return
	}

	wb, err := sales.Export(res)
	if err != nil {
		serverError(c, err)
		return
	}
	defer wb.Close()

	outPath := h.exportPath(".xlsx")
	if err := wb.SaveAs(outPath); err != nil {
		serverError(c, err)
		return
	}

	name := "HYAB_Sales_" + time.Now().Format("200601") + ".xlsx"
	token := h.downloads.put(outPath, name, xlsxContentType, downloadTTL)

	c.JSON(http.StatusOK, SalesResponse{
		TotalSales:   res.TotalArticles,
		Articles:     len(res.Articles),
		Customers:    len(res.Customers),
		Top20ArtPct:  res.Top20ArtPct,
		Top20CustPct: res.Top20CustPct,
		DownloadURL:  "/api/download/" + token,
	})
}
