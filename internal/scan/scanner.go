package scan

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/classify"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/policy"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/profile"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/risk"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/roi"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/stats"
)

// Input is everything one scan consumes. The scanner never touches storage;
// callers load incidents and locations however they like.
type Input struct {
	Locations []models.CandidateLocation // empty = built-in campus set
	Incidents []models.Incident
	Hour      int // -1 = no simulated hour
}

// Scanner runs the full diagnosis pipeline: score every candidate, select
// hotspots, profile and classify each, cost the interventions, and roll up
// the campus report. A scan reads shared data but mutates none of it, so
// stages fan out across workers freely.
type Scanner struct {
	cfg        *config.Config
	scorer     *risk.Scorer
	profiler   *profile.Profiler
	classifier *classify.Classifier
	calc       *roi.Calculator
	consultant policy.Consultant // nil = no annotations
}

func NewScanner(cfg *config.Config, geo *geodata.Context, consultant policy.Consultant) *Scanner {
	return &Scanner{
		cfg:        cfg,
		scorer:     risk.NewScorer(cfg.Scoring),
		profiler:   profile.NewProfiler(geo, cfg.Thresholds),
		classifier: classify.NewClassifier(cfg.Thresholds),
		calc:       roi.NewCalculator(cfg.ROI.Catalog, cfg.ROI.CostPerIncident),
		consultant: consultant,
	}
}

// Run executes one scan. The same input always produces the same report, scan
// ID and timestamp aside.
func (s *Scanner) Run(ctx context.Context, in Input) (*models.CampusReport, error) {
	started := time.Now()
	locations := in.Locations
	if len(locations) == 0 {
		locations = DefaultCampusLocations()
		log.Printf("[Scanner] no candidate locations given, using %d built-in campus locations", len(locations))
	}

	scores := make([]models.RiskScore, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Scan.Workers)
	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scores[i] = s.scorer.Score(loc, in.Incidents, in.Hour)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	locByID := make(map[string]models.CandidateLocation, len(locations))
	for _, loc := range locations {
		locByID[loc.ID] = loc
	}

	detector := Detector{TopN: s.cfg.Scan.TopN, MinRisk: s.cfg.Scan.MinRisk}
	selected := detector.Detect(scores)

	hotspots := make([]models.Hotspot, len(selected))
	hg, hctx := errgroup.WithContext(ctx)
	hg.SetLimit(s.cfg.Scan.Workers)
	for i, sc := range selected {
		i, sc := i, sc
		hg.Go(func() error {
			loc := locByID[sc.LocationID]
			prof, err := s.profiler.Profile(hctx, loc, sc)
			if err != nil {
				return err
			}
			deficiencies, tier := s.classifier.Classify(prof, sc.Score)
			report := s.calc.FromDeficiencies(sc.LocationID, deficiencies, sc.IncidentCount)
			hotspots[i] = models.Hotspot{
				Location:     loc,
				Risk:         sc,
				Profile:      prof,
				Deficiencies: deficiencies,
				Priority:     tier,
				ROI:          report,
			}
			return nil
		})
	}
	if err := hg.Wait(); err != nil {
		return nil, err
	}

	rankHotspots(hotspots)
	s.annotate(ctx, hotspots)

	roiReports := make([]models.ROIReport, len(hotspots))
	for i, h := range hotspots {
		roiReports[i] = h.ROI
	}
	summary := s.calc.Aggregate(roiReports)

	report := &models.CampusReport{
		ScanID:           uuid.NewString(),
		GeneratedAt:      started,
		ScanHour:         in.Hour,
		LocationsScanned: len(locations),
		CampusRiskIndex:  campusRiskIndex(scores),
		RiskLevels:       countLevels(scores),
		Hotspots:         hotspots,
		AllLocations:     scoredListing(locations, scores),
		ROISummary:       summary,
		Temporal:         BuildHeatmap(in.Incidents),
		Benchmarks:       ComputeBenchmarks(len(in.Incidents), summary.IncidentsPrevented, s.cfg.Benchmarks),
		Diagnostics:      diagnostics(in.Incidents, hotspots),
	}

	log.Printf("[Scanner] scan %s: %d locations, %d hotspots, risk index %.2f in %v",
		report.ScanID, len(locations), len(hotspots), report.CampusRiskIndex, time.Since(started))
	return report, nil
}

// rankHotspots orders by priority tier, then risk score descending, then the
// detector tie-breaks (incident count descending, location ID ascending), and
// assigns 1-based ranks.
func rankHotspots(hotspots []models.Hotspot) {
	sort.Slice(hotspots, func(i, j int) bool {
		ri, rj := models.TierRank(hotspots[i].Priority), models.TierRank(hotspots[j].Priority)
		if ri != rj {
			return ri > rj
		}
		if hotspots[i].Risk.Score != hotspots[j].Risk.Score {
			return hotspots[i].Risk.Score > hotspots[j].Risk.Score
		}
		if hotspots[i].Risk.IncidentCount != hotspots[j].Risk.IncidentCount {
			return hotspots[i].Risk.IncidentCount > hotspots[j].Risk.IncidentCount
		}
		return hotspots[i].Location.ID < hotspots[j].Location.ID
	})
	for i := range hotspots {
		hotspots[i].Rank = i + 1
	}
}

// annotate attaches advisory notes after every number is final. Annotation
// failures degrade to an unannotated report, never a failed scan.
func (s *Scanner) annotate(ctx context.Context, hotspots []models.Hotspot) {
	if s.consultant == nil {
		return
	}
	for i := range hotspots {
		note, err := s.consultant.Annotate(ctx, hotspots[i])
		if err != nil {
			log.Printf("[Scanner] annotation failed for %s: %v", hotspots[i].Location.ID, err)
			continue
		}
		hotspots[i].PolicyAnnotation = note
	}
}

func campusRiskIndex(scores []models.RiskScore) float64 {
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = s.Score
	}
	return stats.Mean(values)
}

func countLevels(scores []models.RiskScore) models.RiskLevelCounts {
	var c models.RiskLevelCounts
	for _, s := range scores {
		switch s.Level {
		case models.RiskLevelHigh:
			c.High++
		case models.RiskLevelMedium:
			c.Medium++
		default:
			c.Low++
		}
	}
	return c
}

func scoredListing(locations []models.CandidateLocation, scores []models.RiskScore) []models.ScoredLocation {
	locByID := make(map[string]models.CandidateLocation, len(locations))
	for _, loc := range locations {
		locByID[loc.ID] = loc
	}
	listing := make([]models.ScoredLocation, len(scores))
	for i, s := range scores {
		listing[i] = models.ScoredLocation{
			Location:      locByID[s.LocationID],
			Score:         s.Score,
			Level:         s.Level,
			IncidentCount: s.IncidentCount,
		}
	}
	sort.Slice(listing, func(i, j int) bool {
		if listing[i].Score != listing[j].Score {
			return listing[i].Score > listing[j].Score
		}
		return listing[i].Location.ID < listing[j].Location.ID
	})
	return listing
}

func diagnostics(incidents []models.Incident, hotspots []models.Hotspot) models.Diagnostics {
	var d models.Diagnostics
	for _, inc := range incidents {
		if !inc.HasCoordinates() {
			d.SkippedIncidentRows++
		}
	}
	for _, h := range hotspots {
		if h.Profile.Luminance.Provenance == models.ProvenanceEstimated {
			d.EstimatedLuminance++
		}
		d.UnaddressedGaps += len(h.ROI.Unaddressed)
	}
	return d
}
