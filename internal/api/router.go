package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/handler"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Scan     *handler.ScanHandler
	Incident *handler.IncidentHandler
	Location *handler.LocationHandler
	GeoData  *handler.GeoDataHandler
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	if cfg.Server.RateLimit > 0 {
		window := time.Duration(cfg.Server.RateWindowSeconds) * time.Second
		r.Use(middleware.RateLimit(cfg.Server.RateLimit, window))
	}

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", h.Scan.Health)

	api := r.Group("/api/v1")
	{
		scans := api.Group("/scan")
		{
			scans.POST("", h.Scan.RunScan)
			scans.GET("/latest", h.Scan.LatestReport)
			scans.GET("/temporal", h.Scan.Heatmap)
			scans.GET("/benchmarks", h.Scan.Benchmarks)
		}

		incidents := api.Group("/incidents")
		{
			incidents.GET("", h.Incident.List)
			incidents.POST("/import", h.Incident.Import)
			incidents.GET("/categories", h.Incident.Categories)
		}

		locations := api.Group("/locations")
		{
			locations.GET("", h.Location.List)
			locations.GET("/:id", h.Location.Get)
			locations.POST("", h.Location.Upsert)
		}

		geo := api.Group("/geodata")
		{
			geo.POST("/infrastructure", h.GeoData.ImportInfrastructure)
			geo.POST("/roads", h.GeoData.ImportRoads)
			geo.POST("/luminance", h.GeoData.ImportLuminance)
		}
	}

	return r
}
