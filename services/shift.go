package services

import (
	"sort"
	"time"
)

// ShiftRecord is one row of the uploaded shift plan with its cells coerced
// into typed fields.
type ShiftRecord struct {
	Date        time.Time
	Employee    string
	StartTime   string
	EndTime     string
	Hours       float64
	StaffGroup  string // raw Personalegruppe text
	JobFunction string // raw Jobfunktion text
	Status      string
	Department  string
}

// NormalizedShift is a ShiftRecord plus the derived fields the rate engine
// and classifier work on. It is built once per row and not mutated after,
// except for Location which the classifier fills in per client.
type NormalizedShift struct {
	ShiftRecord

	Category     StaffCategory
	TimeRange    string // "HH:MM-HH:MM"
	StartMinutes int
	RawLocation  string // JobFunction preserved for surcharge matching
	Location     string // per-client display location
}

// ShiftPlan is the cleaned contents of one uploaded file.
type ShiftPlan struct {
	Shifts []NormalizedShift

	// DroppedRows counts rows excluded for a missing/invalid date or
	// non-positive hours.
	DroppedRows int
}

// Dates returns the distinct shift dates in the plan, ascending. The form
// offers these as holiday candidates.
func (p *ShiftPlan) Dates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, s := range p.Shifts {
		d := Midnight(s.Date)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Midnight normalizes a timestamp to its calendar date in UTC, which is how
// holiday membership is decided.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
