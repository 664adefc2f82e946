package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type clientDef struct {
	slug    string
	title   string
	cvr     string
	contact string
	email   string
	address string
}

type holidayDef struct {
	date string // YYYY-MM-DD
	name string
}

var clientDefs = []clientDef{
	{
		slug:    "ajourcare",
		title:   "Ajour Care ApS",
		cvr:     "34478953",
		contact: "Charlotte Bigum Christensen",
		email:   "cbc@ajourcare.dk",
	},
	{
		slug:    "danskomsorgspleje",
		title:   "DANSK OMSORGSPLEJE APS",
		cvr:     "42092630",
		address: "Frederiksborgvej 14, st, 3200 Helsinge",
	},
	{
		// Placeholders until the counterparty details are confirmed.
		slug:    "ditvikarbureau",
		title:   "Dit Vikarbureau",
		cvr:     "(indsæt CVR)",
		address: "(indsæt adresse)",
		email:   "(indsæt email)",
	},
}

// Danish public holidays. Store Bededag was abolished from 2024 and is
// deliberately absent. These are candidates offered to the operator; the
// set applied to a run is always what the caller selects.
var holidayDefs = []holidayDef{
	{"2024-01-01", "Nytårsdag"},
	{"2024-03-28", "Skærtorsdag"},
	{"2024-03-29", "Langfredag"},
	{"2024-03-31", "Påskedag"},
	{"2024-04-01", "2. påskedag"},
	{"2024-05-09", "Kristi himmelfartsdag"},
	{"2024-05-19", "Pinsedag"},
	{"2024-05-20", "2. pinsedag"},
	{"2024-12-25", "1. juledag"},
	{"2024-12-26", "2. juledag"},
	{"2025-01-01", "Nytårsdag"},
	{"2025-04-17", "Skærtorsdag"},
	{"2025-04-18", "Langfredag"},
	{"2025-04-20", "Påskedag"},
	{"2025-04-21", "2. påskedag"},
	{"2025-05-29", "Kristi himmelfartsdag"},
	{"2025-06-08", "Pinsedag"},
	{"2025-06-09", "2. pinsedag"},
	{"2025-12-25", "1. juledag"},
	{"2025-12-26", "2. juledag"},
	{"2026-01-01", "Nytårsdag"},
	{"2026-04-02", "Skærtorsdag"},
	{"2026-04-03", "Langfredag"},
	{"2026-04-05", "Påskedag"},
	{"2026-04-06", "2. påskedag"},
	{"2026-05-14", "Kristi himmelfartsdag"},
	{"2026-05-24", "Pinsedag"},
	{"2026-05-25", "2. pinsedag"},
	{"2026-12-25", "1. juledag"},
	{"2026-12-26", "2. juledag"},
}

// Seed inserts the known billing clients and the holiday catalog if they are
// not present yet. Existing records are left untouched so operator edits in
// the admin UI survive restarts.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedClients(app); err != nil {
		return err
	}
	return seedHolidays(app)
}

func seedClients(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("clients collection not found: %w", err)
	}

	for _, def := range clientDefs {
		existing, err := app.FindFirstRecordByFilter(col,
			"slug = {:slug}", map[string]any{"slug": def.slug})
		if err == nil && existing != nil {
			continue
		}

		record := core.NewRecord(col)
		record.Set("slug", def.slug)
		record.Set("title", def.title)
		record.Set("cvr", def.cvr)
		record.Set("contact", def.contact)
		record.Set("email", def.email)
		record.Set("address", def.address)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed client %s: %w", def.slug, err)
		}
		log.Printf("seed: created client %s", def.slug)
	}
	return nil
}

func seedHolidays(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("holidays")
	if err != nil {
		return fmt.Errorf("holidays collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query holidays: %w", err)
	}
	if len(existing) > 0 {
		// Catalog already populated; never re-add removed entries.
		return nil
	}

	for _, def := range holidayDefs {
		record := core.NewRecord(col)
		record.Set("date", def.date+" 00:00:00.000Z")
		record.Set("name", def.name)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed holiday %s: %w", def.date, err)
		}
	}
	log.Printf("seed: created %d holiday entries", len(holidayDefs))
	return nil
}
