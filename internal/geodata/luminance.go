package geodata

import (
	"errors"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// ErrUnavailable is returned by a sampler that has no reading for a
// coordinate. The fallback sampler substitutes an estimate and tags it.
var ErrUnavailable = errors.New("luminance unavailable at coordinate")

// LuminanceSampler samples nighttime luminance (nW/cm²/sr) at a coordinate.
// Implementations tag every reading with its provenance so reports can state
// whether a value was measured or estimated.
type LuminanceSampler interface {
	Sample(lat, lon float64) (models.LuminanceReading, error)
}

// LuminanceCell is one cell of the measured luminance grid.
type LuminanceCell struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
}

// EstimateZone is one entry of the location-keyed fallback table.
type EstimateZone struct {
	Lat         float64
	Lon         float64
	RadiusMiles float64
	Value       float64
}

// Grid cell capture radius. VIIRS annual composites are ~450 m pixels, so a
// coordinate more than half a diagonal away from every cell center has no
// measured reading.
const gridCellRadiusM = 325.0

// Luminance below this is reported when a coordinate is outside every
// estimate zone: dim campus perimeter.
const perimeterLuminance = 1.5

// GridSampler samples a measured luminance grid by nearest cell.
type GridSampler struct {
	cells []LuminanceCell
}

// NewGridSampler creates a measured sampler over loaded grid cells.
func NewGridSampler(cells []LuminanceCell) *GridSampler {
	return &GridSampler{cells: cells}
}

// Sample returns the measured value of the nearest grid cell, or
// ErrUnavailable when no cell covers the coordinate.
func (g *GridSampler) Sample(lat, lon float64) (models.LuminanceReading, error) {
	if len(g.cells) == 0 {
		return models.LuminanceReading{}, ErrUnavailable
	}

	best := g.cells[0]
	bestDist := spatial.HaversineDistance(lat, lon, best.Lat, best.Lon)
	for _, c := range g.cells[1:] {
		if d := spatial.HaversineDistance(lat, lon, c.Lat, c.Lon); d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > gridCellRadiusM {
		return models.LuminanceReading{}, ErrUnavailable
	}
	return models.LuminanceReading{
		Value:      best.Value,
		Label:      LuminanceLabel(best.Value),
		Provenance: models.ProvenanceMeasured,
	}, nil
}

// EstimateSampler substitutes values from the static estimate table using
// inverse-distance weighting over nearby zones. Always tags estimated.
type EstimateSampler struct {
	zones []EstimateZone
}

// NewEstimateSampler creates the fallback sampler.
func NewEstimateSampler(zones []EstimateZone) *EstimateSampler {
	return &EstimateSampler{zones: zones}
}

// Sample never fails; outside all zones it reports the dim perimeter value.
func (e *EstimateSampler) Sample(lat, lon float64) (models.LuminanceReading, error) {
	var sumW, sumWV float64
	for _, z := range e.zones {
		distMi := spatial.HaversineDistance(lat, lon, z.Lat, z.Lon) / spatial.MetersPerMile
		if distMi > z.RadiusMiles*2 {
			continue
		}
		w := 1.0 / (distMi + 0.001)
		sumW += w
		sumWV += w * z.Value
	}

	value := perimeterLuminance
	if sumW > 0 {
		value = sumWV / sumW
	}
	return models.LuminanceReading{
		Value:      value,
		Label:      LuminanceLabel(value),
		Provenance: models.ProvenanceEstimated,
	}, nil
}

// FallbackSampler tries the measured grid first and substitutes from the
// estimate table when the grid has no reading. Provenance follows whichever
// source answered, never mixed.
type FallbackSampler struct {
	primary  LuminanceSampler
	fallback LuminanceSampler
}

// NewFallbackSampler composes a measured sampler with the estimate fallback.
func NewFallbackSampler(primary, fallback LuminanceSampler) *FallbackSampler {
	return &FallbackSampler{primary: primary, fallback: fallback}
}

func (f *FallbackSampler) Sample(lat, lon float64) (models.LuminanceReading, error) {
	reading, err := f.primary.Sample(lat, lon)
	if err == nil {
		return reading, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return models.LuminanceReading{}, err
	}
	return f.fallback.Sample(lat, lon)
}

// LuminanceLabel buckets a luminance value into the reporting bands.
func LuminanceLabel(v float64) string {
	switch {
	case v < 0.5:
		return "Very Dark"
	case v < 2.0:
		return "Dim"
	case v < 5.0:
		return "Adequate"
	case v < 10.0:
		return "Well-Lit"
	default:
		return "Bright"
	}
}
