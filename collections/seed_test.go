package collections_test

import (
	"testing"

	"fakturagen/collections"
	"fakturagen/testhelpers"
)

func TestSeed_CreatesClients(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	tests := []struct {
		slug  string
		title string
		cvr   string
	}{
		{"ajourcare", "Ajour Care ApS", "34478953"},
		{"danskomsorgspleje", "DANSK OMSORGSPLEJE APS", "42092630"},
		{"ditvikarbureau", "Dit Vikarbureau", "(indsæt CVR)"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			record, err := app.FindFirstRecordByFilter(
				"clients", "slug = {:slug}", map[string]any{"slug": tt.slug})
			if err != nil {
				t.Fatalf("client %q not seeded: %v", tt.slug, err)
			}
			if got := record.GetString("title"); got != tt.title {
				t.Errorf("title = %q, want %q", got, tt.title)
			}
			if got := record.GetString("cvr"); got != tt.cvr {
				t.Errorf("cvr = %q, want %q", got, tt.cvr)
			}
		})
	}
}

func TestSeed_CreatesHolidayCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("holidays")
	all, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(all) != 30 {
		t.Errorf("expected 30 holiday entries, got %d", len(all))
	}

	// Spot-check one fixed-date entry.
	records, err := app.FindRecordsByFilter(col,
		"name = {:name}", "date", 0, 0, map[string]any{"name": "Nytårsdag"})
	if err != nil || len(records) != 3 {
		t.Errorf("expected 3 Nytårsdag entries, got %d (err: %v)", len(records), err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	clientsCol, _ := app.FindCollectionByNameOrId("clients")
	all, err := app.FindAllRecords(clientsCol)
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 client records, got %d", len(all))
	}

	holidaysCol, _ := app.FindCollectionByNameOrId("holidays")
	holidays, err := app.FindAllRecords(holidaysCol)
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(holidays) != 30 {
		t.Errorf("expected 30 holiday entries, got %d", len(holidays))
	}
}

func TestSeed_PreservesOperatorEdits(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	record, err := app.FindFirstRecordByFilter(
		"clients", "slug = {:slug}", map[string]any{"slug": "ditvikarbureau"})
	if err != nil {
		t.Fatalf("client not seeded: %v", err)
	}
	record.Set("cvr", "12345678")
	if err := app.Save(record); err != nil {
		t.Fatalf("save error: %v", err)
	}

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	record, err = app.FindFirstRecordByFilter(
		"clients", "slug = {:slug}", map[string]any{"slug": "ditvikarbureau"})
	if err != nil {
		t.Fatalf("client missing after reseed: %v", err)
	}
	if got := record.GetString("cvr"); got != "12345678" {
		t.Errorf("cvr = %q, want the operator edit preserved", got)
	}
}
