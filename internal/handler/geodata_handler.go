package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/service"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/pkg/response"
)

// GeoDataHandler handles imports of the geospatial reference tables.
type GeoDataHandler struct {
	service *service.GeoDataService
}

// NewGeoDataHandler creates a new geodata handler
func NewGeoDataHandler(service *service.GeoDataService) *GeoDataHandler {
	return &GeoDataHandler{service: service}
}

// ImportInfrastructure handles POST /api/v1/geodata/infrastructure
func (h *GeoDataHandler) ImportInfrastructure(c *gin.Context) {
	var req struct {
		Points []service.InfrastructurePoint `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid infrastructure payload", err)
		return
	}
	if len(req.Points) == 0 {
		response.BadRequest(c, "No infrastructure points in payload", nil)
		return
	}

	imported, err := h.service.ImportInfrastructure(c.Request.Context(), req.Points)
	if err != nil {
		response.BadRequest(c, "Failed to import infrastructure points", err)
		return
	}
	response.Success(c, gin.H{"imported": imported})
}

// ImportRoads handles POST /api/v1/geodata/roads
func (h *GeoDataHandler) ImportRoads(c *gin.Context) {
	var req struct {
		Points []geodata.RoadPoint `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid road payload", err)
		return
	}
	if len(req.Points) == 0 {
		response.BadRequest(c, "No road points in payload", nil)
		return
	}

	imported, err := h.service.ImportRoads(c.Request.Context(), req.Points)
	if err != nil {
		response.BadRequest(c, "Failed to import road points", err)
		return
	}
	response.Success(c, gin.H{"imported": imported})
}

// ImportLuminance handles POST /api/v1/geodata/luminance
func (h *GeoDataHandler) ImportLuminance(c *gin.Context) {
	var req struct {
		Cells []geodata.LuminanceCell `json:"cells"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid luminance payload", err)
		return
	}
	if len(req.Cells) == 0 {
		response.BadRequest(c, "No luminance cells in payload", nil)
		return
	}

	imported, err := h.service.ImportLuminance(c.Request.Context(), req.Cells)
	if err != nil {
		response.BadRequest(c, "Failed to import luminance cells", err)
		return
	}
	response.Success(c, gin.H{"imported": imported})
}
