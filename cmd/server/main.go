package main

import (
	"log"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/api"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/database"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/handler"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/policy"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/scan"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Server] failed to load configuration: %v", err)
	}

	if err := database.Init(database.Config{Path: cfg.Database.Path}); err != nil {
		log.Fatalf("[Server] failed to initialize database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	incidentRepo := repository.NewIncidentRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	geoRepo := repository.NewGeoRepository(db)

	geoCtx := geodata.NewContext(geoRepo)
	defer geoCtx.Close()
	scanner := scan.NewScanner(cfg, geoCtx, policy.StaticConsultant{})

	scanService := service.NewScanService(cfg, scanner, incidentRepo, locationRepo)
	incidentService := service.NewIncidentService(incidentRepo)
	locationService := service.NewLocationService(locationRepo)
	geoDataService := service.NewGeoDataService(geoRepo, geoCtx)

	router := api.SetupRouter(cfg, api.Handlers{
		Scan:     handler.NewScanHandler(scanService, cfg.Scan.Hour),
		Incident: handler.NewIncidentHandler(incidentService),
		Location: handler.NewLocationHandler(locationService),
		GeoData:  handler.NewGeoDataHandler(geoDataService),
	})

	log.Printf("[Server] starting on port %s", cfg.Server.Port)
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("[Server] failed to start: %v", err)
	}
}
