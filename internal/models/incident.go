package models

import "time"

// Incident categories. Free-text source categories are normalized to these
// by the ingest adapter before anything in the core sees them.
const (
	CategoryAssault   = "assault"
	CategoryTheft     = "theft"
	CategoryBurglary  = "burglary"
	CategoryVandalism = "vandalism"
	CategoryVehicle   = "vehicle"
	CategoryOther     = "other"
)

// Incident sources
const (
	SourceFormalReport = "formal-report"
	SourceDispatchCall = "dispatch-call"
)

// Incident represents a single crime incident record. Immutable once ingested.
type Incident struct {
	ID       string    `json:"id" db:"id"`
	Date     time.Time `json:"date" db:"date"`
	Hour     int       `json:"hour" db:"hour"` // 0-23, -1 when not recorded
	Lat      float64   `json:"lat" db:"lat"`
	Lon      float64   `json:"lon" db:"lon"`
	Category string    `json:"category" db:"category"`
	Severity int       `json:"severity" db:"severity"` // 1-5
	Source   string    `json:"source" db:"source"`
}

// HasCoordinates reports whether the record carries usable coordinates.
// Rows without them are skipped by the scorer and counted in diagnostics.
func (i Incident) HasCoordinates() bool {
	return i.Lat != 0 || i.Lon != 0
}

// IsNight reports whether the incident hour falls in the night window
// (22:00-05:59). A record without an hour (-1) is not night.
func (i Incident) IsNight() bool {
	return i.Hour >= 22 || (i.Hour >= 0 && i.Hour < 6)
}

// IsWeekend reports whether the incident date falls on Friday-Sunday.
func (i Incident) IsWeekend() bool {
	switch i.Date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}
