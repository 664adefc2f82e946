package services

import (
	"regexp"
	"strings"
)

// Client describes one billing counterparty: how its rows are recognized in
// the Afdeling column, how the display location is derived, and which rate
// policy applies.
//
// Patterns are independent filters, not a partition. A row whose department
// text happens to match two clients is billed on both invoices; that is the
// established behavior and is deliberately not guarded against here.
type Client struct {
	Slug       string
	Name       string
	FilePrefix string

	pattern   *regexp.Regexp
	locate    func(rawLocation string) string
	Rate      RateFunc
	Surcharge func(rawLocation string) float64
}

var clients = []Client{
	{
		Slug:       "ajourcare",
		Name:       "Ajour Care",
		FilePrefix: "AjourCare",
		pattern:    regexp.MustCompile(`(?i)ajour|akut\s*-?\s*vikar|akutvikar`),
		locate:     locateAjourCare,
		Rate:       RateAjourCare,
		Surcharge:  kirstenSurcharge,
	},
	{
		Slug:       "danskomsorgspleje",
		Name:       "Dansk Omsorgspleje",
		FilePrefix: "DanskOmsorgspleje",
		pattern:    regexp.MustCompile(`(?i)dansk\s*omsorgspleje`),
		locate:     locateAfterDash,
		Rate:       RateDanskOmsorgspleje,
	},
	{
		// Supports the "buerou" misspelling seen in real exports.
		Slug:       "ditvikarbureau",
		Name:       "Dit Vikarbureau",
		FilePrefix: "DitVikarbureau",
		pattern:    regexp.MustCompile(`(?i)dit\s*vikar|ditvikar|dit\s*vikarbureau|dit\s*vikarbuerou`),
		locate:     locateAfterDash,
		Rate:       RateDitVikarbureau,
	},
}

// Clients returns the registered billing counterparties in display order.
func Clients() []Client {
	return clients
}

// ClientBySlug looks up a client by its URL slug.
func ClientBySlug(slug string) (Client, bool) {
	for _, c := range clients {
		if c.Slug == slug {
			return c, true
		}
	}
	return Client{}, false
}

// Matches reports whether a department cell belongs to this client.
func (c Client) Matches(department string) bool {
	return c.pattern.MatchString(department)
}

// Filter returns the shifts belonging to this client with their display
// location derived by the client's own rule.
func (c Client) Filter(shifts []NormalizedShift) []NormalizedShift {
	var out []NormalizedShift
	for _, s := range shifts {
		if !c.Matches(s.Department) {
			continue
		}
		s.Location = c.locate(s.RawLocation)
		out = append(out, s)
	}
	return out
}

// ajourCareCities are the known site cities for Ajour Care, checked in order.
var ajourCareCities = []string{
	"allerød", "egedal", "frederiksund", "solrød", "herlev", "ringsted", "køge",
}

// locateAjourCare maps raw Jobfunktion text to one of the known cities.
// Shifts for the Kirsten contact are billed under køge regardless of the
// rest of the text; anything unrecognized goes to the generic "andet" bucket.
func locateAjourCare(rawLocation string) string {
	t := strings.ToLower(rawLocation)
	for _, city := range ajourCareCities {
		if strings.Contains(t, city) {
			return city
		}
	}
	if strings.Contains(t, "kirsten") {
		return "køge"
	}
	return "andet"
}

// locateAfterDash takes the segment after the first "-" as the display
// location, e.g. "Dansk Omsorgspleje - Helsinge" → "Helsinge". Text without
// a separator is used as-is.
func locateAfterDash(rawLocation string) string {
	if rawLocation == "" {
		return ""
	}
	parts := strings.SplitN(rawLocation, "-", 2)
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(rawLocation)
}

// KirstenSurcharge is the flat per-shift addition for Ajour Care shifts at
// the Kirsten site, applied to the hourly rate before the line total.
const KirstenSurcharge = 10.0

func kirstenSurcharge(rawLocation string) float64 {
	if strings.Contains(strings.ToLower(rawLocation), "kirsten") {
		return KirstenSurcharge
	}
	return 0
}
