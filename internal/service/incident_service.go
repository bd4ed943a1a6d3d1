package service

import (
	"context"
	"fmt"
	"io"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/ingest"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
)

// IncidentService handles business logic for incident reports
type IncidentService struct {
	repo *repository.IncidentRepository
}

// NewIncidentService creates a new incident service
func NewIncidentService(repo *repository.IncidentRepository) *IncidentService {
	return &IncidentService{repo: repo}
}

// ImportResult summarizes one CSV import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportCSV parses and stores an incident CSV feed.
func (s *IncidentService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	parsed, err := ingest.ReadIncidents(r, ingest.DefaultColumnMap())
	if err != nil {
		return ImportResult{}, err
	}
	if err := s.repo.InsertBatch(ctx, parsed.Incidents); err != nil {
		return ImportResult{}, fmt.Errorf("failed to store incidents: %w", err)
	}
	return ImportResult{Imported: len(parsed.Incidents), Skipped: parsed.Skipped}, nil
}

// List retrieves incidents with filtering
func (s *IncidentService) List(ctx context.Context, filter repository.IncidentFilter) ([]models.Incident, error) {
	return s.repo.List(ctx, filter)
}

// CategoryCounts returns incident totals per category.
func (s *IncidentService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	return s.repo.CategoryCounts(ctx)
}
