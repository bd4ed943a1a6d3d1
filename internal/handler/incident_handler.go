package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/service"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/pkg/response"
)

// IncidentHandler handles HTTP requests for incident data
type IncidentHandler struct {
	service *service.IncidentService
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(service *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{service: service}
}

// Import handles POST /api/v1/incidents/import with a multipart "file" field.
func (h *IncidentHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing csv file upload", err)
		return
	}
	defer file.Close()

	result, err := h.service.ImportCSV(c.Request.Context(), file)
	if err != nil {
		response.BadRequest(c, "Failed to import csv", err)
		return
	}
	response.Success(c, result)
}

// List handles GET /api/v1/incidents
func (h *IncidentHandler) List(c *gin.Context) {
	filter := repository.IncidentFilter{
		Category: c.Query("category"),
		Source:   c.Query("source"),
	}
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "since must be YYYY-MM-DD", err)
			return
		}
		filter.Since = t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "until must be YYYY-MM-DD", err)
			return
		}
		filter.Until = t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "limit must be a non-negative integer", err)
			return
		}
		filter.Limit = n
	}

	incidents, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to list incidents", err)
		return
	}
	response.Success(c, gin.H{
		"data":  incidents,
		"count": len(incidents),
	})
}

// Categories handles GET /api/v1/incidents/categories
func (h *IncidentHandler) Categories(c *gin.Context) {
	counts, err := h.service.CategoryCounts(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to count categories", err)
		return
	}
	response.Success(c, counts)
}
