package service

import (
	"context"
	"fmt"
	"log"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// InfrastructurePoint is one pole, call box, or corridor to import.
type InfrastructurePoint struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// GeoDataService imports the geospatial reference tables the scan reads and
// invalidates the in-memory geodata cache so the next scan picks them up.
type GeoDataService struct {
	repo *repository.GeoRepository
	geo  *geodata.Context
}

// NewGeoDataService creates a new geodata import service
func NewGeoDataService(repo *repository.GeoRepository, geo *geodata.Context) *GeoDataService {
	return &GeoDataService{repo: repo, geo: geo}
}

func validKind(kind string) bool {
	switch kind {
	case geodata.KindLightPole, geodata.KindCallBox, geodata.KindCorridor:
		return true
	}
	return false
}

// ImportInfrastructure stores poles, call boxes, and corridors. Every point
// is validated before anything is written.
func (s *GeoDataService) ImportInfrastructure(ctx context.Context, points []InfrastructurePoint) (int, error) {
	for _, p := range points {
		if !validKind(p.Kind) {
			return 0, fmt.Errorf("invalid infrastructure kind %q", p.Kind)
		}
		if p.Name == "" {
			return 0, fmt.Errorf("infrastructure point at (%.4f, %.4f) has no name", p.Lat, p.Lon)
		}
		if p.Lat == 0 && p.Lon == 0 {
			return 0, fmt.Errorf("infrastructure point %q has no coordinates", p.Name)
		}
	}
	for _, p := range points {
		if err := s.repo.InsertInfrastructure(ctx, p.Kind, spatial.Point{Name: p.Name, Lat: p.Lat, Lon: p.Lon}); err != nil {
			return 0, err
		}
	}
	s.geo.Invalidate()
	log.Printf("[GeoData] imported %d infrastructure points", len(points))
	return len(points), nil
}

// ImportRoads stores road segment sample points.
func (s *GeoDataService) ImportRoads(ctx context.Context, points []geodata.RoadPoint) (int, error) {
	for _, p := range points {
		if p.ClassCode == "" {
			return 0, fmt.Errorf("road segment %q has no class code", p.Name)
		}
		if p.Lat == 0 && p.Lon == 0 {
			return 0, fmt.Errorf("road segment %q has no coordinates", p.Name)
		}
	}
	if err := s.repo.InsertRoadPoints(ctx, points); err != nil {
		return 0, err
	}
	s.geo.Invalidate()
	log.Printf("[GeoData] imported %d road points", len(points))
	return len(points), nil
}

// ImportLuminance stores measured radiance grid cells.
func (s *GeoDataService) ImportLuminance(ctx context.Context, cells []geodata.LuminanceCell) (int, error) {
	for _, c := range cells {
		if c.Lat == 0 && c.Lon == 0 {
			return 0, fmt.Errorf("luminance cell has no coordinates")
		}
		if c.Value < 0 {
			return 0, fmt.Errorf("luminance cell at (%.4f, %.4f) has a negative value", c.Lat, c.Lon)
		}
	}
	if err := s.repo.InsertLuminanceCells(ctx, cells); err != nil {
		return 0, err
	}
	s.geo.Invalidate()
	log.Printf("[GeoData] imported %d luminance cells", len(cells))
	return len(cells), nil
}
