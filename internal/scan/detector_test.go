package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

func score(id string, value float64, incidents int) models.RiskScore {
	return models.RiskScore{LocationID: id, Score: value, IncidentCount: incidents}
}

func TestDetectOrdersAndLimits(t *testing.T) {
	d := Detector{TopN: 2, MinRisk: 1.0}

	selected := d.Detect([]models.RiskScore{
		score("low", 0.4, 9),
		score("mid", 4.5, 3),
		score("high", 8.2, 6),
		score("mid2", 3.1, 1),
	})

	require.Len(t, selected, 2)
	assert.Equal(t, "high", selected[0].LocationID)
	assert.Equal(t, "mid", selected[1].LocationID)
}

func TestDetectTieBreaks(t *testing.T) {
	d := Detector{TopN: 0, MinRisk: 0}

	selected := d.Detect([]models.RiskScore{
		score("b", 5.0, 2),
		score("a", 5.0, 2),
		score("c", 5.0, 7),
	})

	require.Len(t, selected, 3)
	// Same score: incident count descending, then ID ascending.
	assert.Equal(t, "c", selected[0].LocationID)
	assert.Equal(t, "a", selected[1].LocationID)
	assert.Equal(t, "b", selected[2].LocationID)
}

func TestDetectDeterministic(t *testing.T) {
	d := Detector{TopN: 3, MinRisk: 0.5}
	input := []models.RiskScore{
		score("x", 2.0, 1), score("y", 2.0, 1), score("z", 9.0, 4), score("w", 0.1, 8),
	}

	first := d.Detect(input)
	second := d.Detect(input)
	assert.Equal(t, first, second)
}

func TestDetectEmptyAndFloor(t *testing.T) {
	d := Detector{TopN: 5, MinRisk: 3.0}

	assert.Empty(t, d.Detect(nil))

	selected := d.Detect([]models.RiskScore{score("a", 2.9, 1), score("b", 3.0, 1)})
	require.Len(t, selected, 1)
	assert.Equal(t, "b", selected[0].LocationID)
}
