package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/service/orderbook"
)

// OrderBookResponse summarizes a processed order book.
type OrderBookResponse struct {
	Orders            int     `json:"orders"`
	TotalSEK          float64 `json:"totalSek"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	PartiallyInvoiced int     `json:"partiallyInvoiced"`
	PartialSEK        float64 `json:"partialSek"`
	ZeroOrders        int     `json:"zeroOrders"`
	AgedOrders        int     `json:"agedOrders"`
	AgedSEK           float64 `json:"agedSek"`
	TrackingLine      string  `json:"trackingLine"` // paste-ready "date<TAB>total"
	DownloadURL       string  `json:"downloadUrl"`
}

// OrderBook cleans an uploaded weekly order-book export.
// POST /api/orderbook (multipart, field "file"; optional eur/usd/gbp fields)
func (h *Handler) OrderBook(c *gin.Context) {
	f, cleanup, err := openUpload(c, "file")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer cleanup()

	fx := h.cfg.FX.Rates()
	fx["EUR"] = formFloat(c, "eur", fx["EUR"])
	fx["USD"] = formFloat(c, "usd", fx["USD"])
	fx["GBP"] = formFloat(c, "gbp", fx["GBP"])

	res, err := orderbook.Process(f, fx)
	if err != nil {
		unprocessable(c, err)
		return
	}

	wb, err := orderbook.Export(res)
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

	now := time.Now()
	name := "HYAB_OrderBook_" + now.Format("20060102") + ".xlsx"
	token := h.downloads.put(outPath, name, xlsxContentType, downloadTTL)

	c.JSON(http.StatusOK, OrderBookResponse{
		Orders:            len(res.Orders),
		TotalSEK:          res.TotalSEK,
		UniqueCustomers:   res.UniqueCustomers,
		PartiallyInvoiced: res.PartialOrders,
		PartialSEK:        res.PartialSEK,
		ZeroOrders:        res.ZeroOrders,
		AgedOrders:        res.AgedOrders,
		AgedSEK:           res.AgedSEK,
		TrackingLine:      fmt.Sprintf("%s\t%.0f", now.Format("2006-01-02"), res.TotalSEK),
		DownloadURL:       "/api/download/" + token,
	})
}
