package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/service"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/pkg/response"
)

// ScanHandler handles HTTP requests for campus scans
type ScanHandler struct {
	service     *service.ScanService
	defaultHour int
}

// NewScanHandler creates a new scan handler
func NewScanHandler(service *service.ScanService, defaultHour int) *ScanHandler {
	return &ScanHandler{service: service, defaultHour: defaultHour}
}

// RunScan handles POST /api/v1/scan
func (h *ScanHandler) RunScan(c *gin.Context) {
	hour := h.defaultHour
	if raw := c.Query("hour"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < -1 || parsed > 23 {
			response.BadRequest(c, "hour must be -1 or 0-23", err)
			return
		}
		hour = parsed
	}

	report, err := h.service.RunScan(c.Request.Context(), hour)
	if err != nil {
		response.InternalError(c, "Scan failed", err)
		return
	}
	response.Success(c, report)
}

// LatestReport handles GET /api/v1/scan/latest
func (h *ScanHandler) LatestReport(c *gin.Context) {
	report := h.service.LastReport()
	if report == nil {
		response.NotFound(c, "No scan has run yet")
		return
	}
	response.Success(c, report)
}

// Heatmap handles GET /api/v1/scan/temporal
func (h *ScanHandler) Heatmap(c *gin.Context) {
	hm, err := h.service.Heatmap(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to build temporal heatmap", err)
		return
	}
	response.Success(c, hm)
}

// Benchmarks handles GET /api/v1/scan/benchmarks
func (h *ScanHandler) Benchmarks(c *gin.Context) {
	b, err := h.service.Benchmarks(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to compute benchmarks", err)
		return
	}
	response.Success(c, b)
}

// Health handles GET /health
func (h *ScanHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Campus scan API is running",
	})
}
