package scan

import (
	"sort"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/stats"
)

// BuildHeatmap aggregates the campus-wide incident set into hour-of-day and
// day-of-week histograms. Incidents without a recorded hour count toward the
// day histogram only.
func BuildHeatmap(incidents []models.Incident) models.TemporalHeatmap {
	hm := models.TemporalHeatmap{
		ByHour: make(map[int]int),
		ByDay:  make(map[string]int),
		Total:  len(incidents),
	}

	night := 0
	withHour := 0
	for _, inc := range incidents {
		hm.ByDay[inc.Date.Weekday().String()]++
		if inc.Hour < 0 {
			continue
		}
		hm.ByHour[inc.Hour]++
		withHour++
		if inc.IsNight() {
			night++
		}
	}

	hm.NightPct = stats.Ratio(night, withHour)
	hm.PeakHours = topHours(hm.ByHour, 3)
	hm.PeakDays = topDays(hm.ByDay, 3)
	return hm
}

func topHours(counts map[int]int, n int) []int {
	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > n {
		hours = hours[:n]
	}
	return hours
}

func topDays(counts map[string]int, n int) []string {
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return days[i] < days[j]
	})
	if len(days) > n {
		days = days[:n]
	}
	return days
}
