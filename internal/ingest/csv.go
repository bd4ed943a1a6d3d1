package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// ColumnMap names the CSV headers carrying each incident field. Header
// matching is case-insensitive. Only Lat, Lon, and Date are required; the
// rest degrade to defaults.
type ColumnMap struct {
	ID         string
	Date       string
	Hour       string
	Lat        string
	Lon        string
	Category   string
	Severity   string
	DateLayout string
}

// DefaultColumnMap matches the campus crime log export headers.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		ID:         "id",
		Date:       "date",
		Hour:       "hour",
		Lat:        "lat",
		Lon:        "lon",
		Category:   "category",
		Severity:   "severity",
		DateLayout: "2006-01-02",
	}
}

// latAliases and lonAliases cover the header variants seen across police
// department exports.
var (
	latAliases = []string{"lat", "latitude", "y", "lat_dd"}
	lonAliases = []string{"lon", "lng", "longitude", "x", "lon_dd", "long"}
)

// Result reports what one import run produced.
type Result struct {
	Incidents []models.Incident
	Skipped   int // rows with unparseable coordinates or dates
}

// ReadIncidents parses an incident CSV. Rows with missing or malformed
// coordinates or dates are counted in Skipped, never dropped silently.
// A row without an ID gets a generated one so re-imports stay traceable.
func ReadIncidents(r io.Reader, cm ColumnMap) (Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	idx := headerIndex(header)
	latCol, ok := findColumn(idx, cm.Lat, latAliases)
	if !ok {
		return Result{}, fmt.Errorf("csv has no latitude column (looked for %s)", strings.Join(latAliases, ", "))
	}
	lonCol, ok := findColumn(idx, cm.Lon, lonAliases)
	if !ok {
		return Result{}, fmt.Errorf("csv has no longitude column (looked for %s)", strings.Join(lonAliases, ", "))
	}
	dateCol, hasDate := findColumn(idx, cm.Date, nil)
	if !hasDate {
		return Result{}, fmt.Errorf("csv has no %q column", cm.Date)
	}
	idCol, hasID := findColumn(idx, cm.ID, nil)
	hourCol, hasHour := findColumn(idx, cm.Hour, nil)
	catCol, hasCat := findColumn(idx, cm.Category, nil)
	sevCol, hasSev := findColumn(idx, cm.Severity, nil)

	var res Result
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Skipped++
			continue
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(record[lonCol]), 64)
		if latErr != nil || lonErr != nil || (lat == 0 && lon == 0) {
			res.Skipped++
			continue
		}

		date, err := time.Parse(cm.DateLayout, strings.TrimSpace(record[dateCol]))
		if err != nil {
			res.Skipped++
			continue
		}

		inc := models.Incident{
			Date:     date,
			Hour:     -1,
			Lat:      lat,
			Lon:      lon,
			Severity: 2,
		}
		if hasID && strings.TrimSpace(record[idCol]) != "" {
			inc.ID = strings.TrimSpace(record[idCol])
		} else {
			inc.ID = uuid.NewString()
		}
		if hasHour {
			if h, err := strconv.Atoi(strings.TrimSpace(record[hourCol])); err == nil && h >= 0 && h <= 23 {
				inc.Hour = h
			}
		}
		if hasCat {
			inc.Category = strings.ToLower(strings.TrimSpace(record[catCol]))
		}
		if hasSev {
			if s, err := strconv.Atoi(strings.TrimSpace(record[sevCol])); err == nil {
				inc.Severity = s
			}
		}

		res.Incidents = append(res.Incidents, inc)
	}

	log.Printf("[Ingest] parsed %d incidents, skipped %d rows", len(res.Incidents), res.Skipped)
	return res, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// findColumn resolves a configured header name, falling back to aliases.
func findColumn(idx map[string]int, name string, aliases []string) (int, bool) {
	if i, ok := idx[strings.ToLower(name)]; ok && name != "" {
		return i, true
	}
	for _, a := range aliases {
		if i, ok := idx[a]; ok {
			return i, true
		}
	}
	return 0, false
}
