// Package matching holds the worker matching engine. It is pure and
// shared between the server handlers and the client's offline fallback
// so both paths produce identical results for the same data.
package matching

import (
	"sort"
	"strings"

	"fixfleet-server/models"
)

// Sort modes. Anything unrecognized falls back to distance.
const (
	SortByDistance   = "distance"
	SortByRating     = "rating"
	SortByExperience = "experience"
)

// UrgencyNow restricts results to workers whose availability text
// mentions "now".
const UrgencyNow = "now"

// Query describes a worker search
type Query struct {
	Skill   models.Skill `form:"skill" json:"skill"`
	Urgency string       `form:"urgency" json:"urgency"`
	SortBy  string       `form:"sortBy" json:"sortBy"`
}

// Match filters and orders a worker snapshot. Filters preserve relative
// order; the sort is stable, so equal-key workers keep their input
// order. An empty result is a valid outcome, not an error.
func Match(workers []models.Worker, q Query) []models.Worker {
	results := make([]models.Worker, 0, len(workers))

	for _, w := range workers {
		if q.Skill != "" && w.Skill != q.Skill {
			continue
		}
		if q.Urgency == UrgencyNow && !strings.Contains(strings.ToLower(w.Availability), UrgencyNow) {
			continue
		}
		results = append(results, w)
	}

	switch q.SortBy {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortByExperience:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ExperienceYears > results[j].ExperienceYears
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}

	return results
}
