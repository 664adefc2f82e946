package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// RequiredColumns are the spreadsheet headers a shift plan must contain.
var RequiredColumns = []string{
	"Dato",
	"Medarbejder",
	"Starttid",
	"Sluttid",
	"Timer",
	"Personalegruppe",
	"Jobfunktion",
	"Shift status",
	"Afdeling",
}

// ParseShiftPlan reads the first sheet of an uploaded xlsx shift plan and
// returns the cleaned rows. Missing required columns are a fatal error that
// names them; individual rows with an unparseable date or non-positive hours
// are dropped and counted, not reported.
func ParseShiftPlan(r io.Reader) (*ShiftPlan, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	colIndex, missing := mapShiftColumns(rows[0])
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	plan := &ShiftPlan{}
	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx := colIndex[name]
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		hours, ok := parseHours(cell("Timer"))
		if !ok || hours <= 0 {
			plan.DroppedRows++
			continue
		}

		date, ok := parseShiftDate(cell("Dato"))
		if !ok {
			plan.DroppedRows++
			continue
		}

		rec := ShiftRecord{
			Date:        date,
			Employee:    cell("Medarbejder"),
			StartTime:   cell("Starttid"),
			EndTime:     cell("Sluttid"),
			Hours:       hours,
			StaffGroup:  cell("Personalegruppe"),
			JobFunction: cell("Jobfunktion"),
			Status:      cell("Shift status"),
			Department:  cell("Afdeling"),
		}

		timeRange := BuildTimeRange(rec.StartTime, rec.EndTime)
		plan.Shifts = append(plan.Shifts, NormalizedShift{
			ShiftRecord:  rec,
			Category:     NormalizeStaffCategory(rec.StaffGroup),
			TimeRange:    timeRange,
			StartMinutes: ParseStartMinutes(timeRange),
			RawLocation:  rec.JobFunction,
			Location:     rec.JobFunction,
		})
	}

	return plan, nil
}

// mapShiftColumns maps required column names to their index in the header
// row and reports the ones that are absent.
func mapShiftColumns(headers []string) (map[string]int, []string) {
	index := make(map[string]int, len(RequiredColumns))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	colIndex := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		idx, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		colIndex[name] = idx
	}
	return colIndex, missing
}

// parseHours coerces the Timer cell to a float. Danish exports use a comma
// decimal separator.
func parseHours(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// shiftDateLayouts are tried in order, day-first layouts before ISO since
// the planning tool exports Danish-style dates.
var shiftDateLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"02-01-2006 15:04",
	"02-01-2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-06",
}

// parseShiftDate parses a Dato cell. Cells that came through as raw Excel
// serial numbers are converted via the 1900 epoch.
func parseShiftDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range shiftDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		// Excel day 1 is 1900-01-01, with the epoch offset accounting for
		// the fictional 1900 leap day.
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return epoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}
