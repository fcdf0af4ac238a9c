package api

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Debelvoir/HYAB-6.2/internal/commentary"
	"github.com/Debelvoir/HYAB-6.2/internal/parser"
	"github.com/Debelvoir/HYAB-6.2/internal/report"
)

// IntelligenceResponse is the upload result: headline figures plus links to
// the generated dashboard.
type IntelligenceResponse struct {
	CurrentPeriod   string  `json:"currentPeriod"`
	PreviousPeriod  string  `json:"previousPeriod"`
	TotalLTM        float64 `json:"totalLtm"`
	YoYPct          float64 `json:"yoyPct"`
	ActiveCustomers int     `json:"activeCustomers"`
	Churned         int     `json:"churned"`
	Declining       int     `json:"declining"`
	Growing         int     `json:"growing"`
	New             int     `json:"new"`
	Commentary      bool    `json:"commentary"`
	ViewURL         string  `json:"viewUrl"`
	DownloadURL     string  `json:"downloadUrl"`
}

// Intelligence runs the full analysis over an uploaded master work file and
// returns links to the rendered dashboard.
// POST /api/intelligence (multipart, field "file")
func (h *Handler) Intelligence(c *gin.Context) {
	f, cleanup, err := openUpload(c, "file")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer cleanup()

	ds, err := parser.ParseMaster(f)
	if err != nil {
		unprocessable(c, err)
		return
	}
	if len(ds.LTMKeys) == 0 {
		unprocessable(c, errors.New("master file carries no LTM columns"))
		return
	}

	opts := report.Options{
		TrajectoryWindow:     formInt(c, "trajectoryWindow", h.cfg.Analysis.TrajectoryWindow),
		MaterialityFloor:     formFloat(c, "materialityFloor", h.cfg.Analysis.MaterialityFloor),
		DecompositionPeriods: formInt(c, "decompositionPeriods", h.cfg.Analysis.DecompositionPeriods),
		ComparisonOffset:     formInt(c, "comparisonOffset", h.cfg.Analysis.ComparisonOffset),
	}
	rep := report.Assemble(ds, opts)

	// A key supplied with the request overrides the server-level generator,
	// matching the per-run key field of the original UI.
	gen := h.generator
	if key := c.PostForm("apiKey"); key != "" {
		gen = commentary.NewClaude(key, h.cfg.Commentary.Model, h.cfg.Commentary.MaxTokens,
			time.Duration(h.cfg.Commentary.TimeoutSeconds)*time.Second)
	}

	// Commentary is strictly optional: any failure degrades to a dashboard
	// without narrative text.
	sections, err := gen.Generate(c.Request.Context(), report.BuildMetrics(rep))
	if err != nil {
		log.Printf("commentary generation failed, continuing without: %v", err)
	} else {
		rep.Commentary = sections
	}

	outPath := h.exportPath(".html")
	out, err := os.Create(outPath)
	if err != nil {
		serverError(c, err)
		return
	}
	if err := report.Render(out, rep); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		serverError(c, err)
		return
	}
	if err := out.Close(); err != nil {
		serverError(c, err)
		return
	}

	name := "HYAB_Intelligence_" + time.Now().Format("20060102") + ".html"
	token := h.downloads.put(outPath, name, "text/html; charset=utf-8", downloadTTL)

	c.JSON(http.StatusOK, IntelligenceResponse{
		CurrentPeriod:   rep.CurrentLabel,
		PreviousPeriod:  rep.PrevLabel,
		TotalLTM:        rep.TotalLTM,
		YoYPct:          rep.YoYPct,
		ActiveCustomers: rep.ActiveCustomers,
		Churned:         len(rep.Cohorts.Churned),
		Declining:       len(rep.Cohorts.Declining),
		Growing:         len(rep.Cohorts.Growing),
		New:             len(rep.Cohorts.New),
		Commentary:      len(rep.Commentary) > 0,
		ViewURL:         "/api/view/" + token,
		DownloadURL:     "/api/download/" + token,
	})
}
