// Package handlers wires the invoice generator's HTTP routes: shift-plan
// preview, per-client invoice export, and the client/holiday reference data.
package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"

	"fakturagen/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// loadRecipient builds the recipient address block from the client registry
// record. The seeded values can be edited in the admin UI, so the block is
// read per request instead of being compiled in.
func loadRecipient(app *pocketbase.PocketBase, slug string) (services.Party, error) {
	record, err := app.FindFirstRecordByFilter(
		"clients", "slug = {:slug}", map[string]any{"slug": slug})
	if err != nil {
		return services.Party{}, fmt.Errorf("client %s not found: %w", slug, err)
	}

	party := services.Party{Title: record.GetString("title")}
	if cvr := record.GetString("cvr"); cvr != "" {
		party.Lines = append(party.Lines, "CVR: "+cvr)
	}
	if addr := record.GetString("address"); addr != "" {
		party.Lines = append(party.Lines, addr)
	}
	if contact := record.GetString("contact"); contact != "" {
		party.Lines = append(party.Lines, "Kontakt: "+contact)
	}
	if email := record.GetString("email"); email != "" {
		party.Lines = append(party.Lines, "Email: "+email)
	}
	return party, nil
}

// parseHolidayDates parses repeated "holidays" form values (YYYY-MM-DD).
func parseHolidayDates(values []string) ([]time.Time, error) {
	var dates []time.Time
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q", v)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
