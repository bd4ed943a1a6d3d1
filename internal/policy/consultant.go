package policy

import (
	"context"
	"fmt"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// Consultant produces an advisory note for a finished hotspot. The note is
// opaque text attached to the report; it never changes scores, tiers, or ROI
// numbers. A scan runs identically with or without one.
type Consultant interface {
	Annotate(ctx context.Context, hotspot models.Hotspot) (string, error)
}

// StaticConsultant renders a fixed-template note from the hotspot's own
// numbers. It stands in where no external advisory service is wired.
type StaticConsultant struct{}

func (StaticConsultant) Annotate(_ context.Context, h models.Hotspot) (string, error) {
	if h.Priority == models.TierNone {
		return "", nil
	}
	note := fmt.Sprintf("%s priority: %s near %s (risk %.1f, %d incidents)",
		h.Priority, h.Risk.DominantCrime, h.Location.Name, h.Risk.Score, h.Risk.IncidentCount)
	if len(h.Deficiencies) > 0 {
		note += fmt.Sprintf("; %d environmental deficiencies identified", len(h.Deficiencies))
	}
	return note, nil
}
