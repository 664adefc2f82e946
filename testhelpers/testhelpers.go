// Package testhelpers provides utilities for testing the PocketBase-backed
// invoice generator.
package testhelpers

import (
	"bytes"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"

	"fakturagen/collections"
	"fakturagen/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedTestClients inserts the production client registry into a test app.
func SeedTestClients(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test data: %v", err)
	}
}

// CreateTestHoliday creates a holiday record and returns it.
func CreateTestHoliday(t *testing.T, app *pocketbase.PocketBase, date, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("holidays")
	if err != nil {
		t.Fatalf("failed to find holidays collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("date", date+" 00:00:00.000Z")
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test holiday: %v", err)
	}

	return record
}

// ShiftRow is one data row of a generated shift-plan workbook, in the
// required column order.
type ShiftRow struct {
	Date        string
	Employee    string
	StartTime   string
	EndTime     string
	Hours       string
	StaffGroup  string
	JobFunction string
	Status      string
	Department  string
}

// BuildShiftPlanXLSX writes an in-memory shift-plan workbook with the
// required header row followed by the given data rows.
func BuildShiftPlanXLSX(t *testing.T, rows []ShiftRow) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range services.RequiredColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("failed to build header cell name: %v", err)
		}
		f.SetCellValue(sheet, cell, h)
	}

	for r, row := range rows {
		values := []string{
			row.Date, row.Employee, row.StartTime, row.EndTime, row.Hours,
			row.StaffGroup, row.JobFunction, row.Status, row.Department,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write test workbook: %v", err)
	}
	return buf.Bytes()
}

// BuildShiftPlanXLSXWithHeaders writes a workbook with an arbitrary header
// row, for exercising the missing-column error path.
func BuildShiftPlanXLSXWithHeaders(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("failed to build header cell name: %v", err)
		}
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write test workbook: %v", err)
	}
	return buf.Bytes()
}

// DefaultShiftRow returns a valid AjourCare weekday-day shift row that tests
// can tweak per case.
func DefaultShiftRow() ShiftRow {
	return ShiftRow{
		Date:        "08-01-2024",
		Employee:    "Anne Jensen",
		StartTime:   "07:00",
		EndTime:     "15:00",
		Hours:       "8",
		StaffGroup:  "Hjælper",
		JobFunction: "Ajour Care - Herlev",
		Status:      "Godkendt",
		Department:  "Ajour Care",
	}
}
