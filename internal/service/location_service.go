package service

import (
	"context"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/repository"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/scan"
)

// LocationService handles business logic for candidate locations
type LocationService struct {
	repo *repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(repo *repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// List returns the stored candidate locations, or the built-in campus set
// when none have been loaded.
func (s *LocationService) List(ctx context.Context) ([]models.CandidateLocation, error) {
	locs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		return scan.DefaultCampusLocations(), nil
	}
	return locs, nil
}

// Get retrieves a single candidate location, nil when absent.
func (s *LocationService) Get(ctx context.Context, id string) (*models.CandidateLocation, error) {
	return s.repo.GetByID(ctx, id)
}

// Upsert stores one candidate location.
func (s *LocationService) Upsert(ctx context.Context, loc models.CandidateLocation) error {
	return s.repo.Upsert(ctx, loc)
}
