package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/scan"
)

// ScanService runs scans against the stored incident and location data and
// keeps the most recent report for retrieval.
type ScanService struct {
	cfg       *config.Config
	scanner   *scan.Scanner
	incidents *repository.IncidentRepository
	locations *repository.LocationRepository

	mu   sync.RWMutex
	last *models.CampusReport
}

// NewScanService creates a new scan service
func NewScanService(cfg *config.Config, scanner *scan.Scanner, incidents *repository.IncidentRepository, locations *repository.LocationRepository) *ScanService {
	return &ScanService{
		cfg:       cfg,
		scanner:   scanner,
		incidents: incidents,
		locations: locations,
	}
}

// RunScan loads stored data and executes one full scan. hour is -1 for no
// simulated hour.
func (s *ScanService) RunScan(ctx context.Context, hour int) (*models.CampusReport, error) {
	incidents, err := s.incidents.List(ctx, repository.IncidentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load incidents: %w", err)
	}
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	report, err := s.scanner.Run(ctx, scan.Input{
		Locations: locations,
		Incidents: incidents,
		Hour:      hour,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()
	return report, nil
}

// LastReport returns the most recent scan report, nil when none has run.
func (s *ScanService) LastReport() *models.CampusReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Heatmap builds the campus-wide temporal histogram from all stored incidents.
func (s *ScanService) Heatmap(ctx context.Context) (models.TemporalHeatmap, error) {
	incidents, err := s.incidents.List(ctx, repository.IncidentFilter{})
	if err != nil {
		return models.TemporalHeatmap{}, fmt.Errorf("failed to load incidents: %w", err)
	}
	return scan.BuildHeatmap(incidents), nil
}

// Benchmarks positions the campus against peer institutions. When a scan has
// run, the projection includes its recommended interventions.
func (s *ScanService) Benchmarks(ctx context.Context) (models.Benchmarks, error) {
	total, err := s.incidents.Count(ctx)
	if err != nil {
		return models.Benchmarks{}, fmt.Errorf("failed to count incidents: %w", err)
	}

	prevented := 0.0
	if last := s.LastReport(); last != nil {
		prevented = last.ROISummary.IncidentsPrevented
	}
	return scan.ComputeBenchmarks(total, prevented, s.cfg.Benchmarks), nil
}
