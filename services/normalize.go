// Package services provides the shift normalization, client classification,
// rate calculation and invoice building logic.
package services

import (
	"strconv"
	"strings"
)

// StaffCategory is the canonical staff group of a shift. Known values are the
// Category* constants; free text that matches none of them is passed through
// lowercased so it still shows up on the invoice line.
type StaffCategory string

const (
	CategoryUnskilled StaffCategory = "ufaglært"
	CategoryHelper    StaffCategory = "hjælper"
	CategoryAssistant StaffCategory = "assistent"
	CategoryNurse     StaffCategory = "sygeplejerske"
)

// NormalizeStaffCategory maps the raw Personalegruppe text to a canonical
// StaffCategory. Matching is by substring so spreadsheet variants like
// "Assistent 2" or "SSA-assistent" land in the right bucket.
func NormalizeStaffCategory(raw string) StaffCategory {
	s := strings.ReplaceAll(raw, " ", " ")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	if s == "assistent 2" {
		s = "assistent"
	}

	switch {
	case strings.Contains(s, "ufagl"):
		return CategoryUnskilled
	case strings.Contains(s, "hjælp"):
		return CategoryHelper
	case strings.Contains(s, "assist"):
		return CategoryAssistant
	case strings.Contains(s, "sygepl"):
		return CategoryNurse
	}
	return StaffCategory(s)
}

// SafeTimeString reduces a raw start/end time cell to at most "HH:MM".
// Empty input stays empty; longer values (e.g. "08:00:00") are truncated.
func SafeTimeString(raw string) string {
	if raw == "" {
		return ""
	}
	r := []rune(raw)
	if len(r) > 5 {
		r = r[:5]
	}
	return string(r)
}

// BuildTimeRange joins start and end cells into the "HH:MM-HH:MM" display form.
func BuildTimeRange(start, end string) string {
	return SafeTimeString(start) + "-" + SafeTimeString(end)
}

// ParseStartMinutes extracts the start of a "HH:MM-HH:MM" window as minutes
// since midnight. Any malformed input yields 0 (midnight) rather than an
// error; that default changes day/night classification silently, matching
// how unparseable windows have always been billed.
func ParseStartMinutes(timeRange string) int {
	start := strings.TrimSpace(strings.SplitN(timeRange, "-", 2)[0])
	parts := strings.Split(start, ":")
	if len(parts) != 2 {
		return 0
	}
	hh, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	mm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return hh*60 + mm
}

// StartHour returns the leading hour of a "HH:MM-HH:MM" window, 0 on any
// parse failure. Unlike ParseStartMinutes it reads only the first two
// characters, so single-digit hours without a leading zero also fall back
// to 0.
func StartHour(timeRange string) int {
	start := strings.SplitN(timeRange, "-", 2)[0]
	r := []rune(start)
	if len(r) > 2 {
		r = r[:2]
	}
	h, err := strconv.Atoi(string(r))
	if err != nil {
		return 0
	}
	return h
}
