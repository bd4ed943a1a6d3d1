package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/service"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/pkg/response"
)

// LocationHandler handles HTTP requests for candidate locations
type LocationHandler struct {
	service *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to list locations", err)
		return
	}
	response.Success(c, gin.H{
		"data":  locs,
		"count": len(locs),
	})
}

// Get handles GET /api/v1/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	loc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get location", err)
		return
	}
	if loc == nil {
		response.NotFound(c, "Location not found")
		return
	}
	response.Success(c, loc)
}

// Upsert handles POST /api/v1/locations
func (h *LocationHandler) Upsert(c *gin.Context) {
	var loc models.CandidateLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		response.BadRequest(c, "Invalid location payload", err)
		return
	}
	if loc.ID == "" || (loc.Lat == 0 && loc.Lon == 0) {
		response.BadRequest(c, "Location needs an id and coordinates", nil)
		return
	}
	if err := h.service.Upsert(c.Request.Context(), loc); err != nil {
		response.InternalError(c, "Failed to store location", err)
		return
	}
	response.Success(c, loc)
}
