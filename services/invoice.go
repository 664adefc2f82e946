package services

import (
	"sort"
	"time"
)

// VATRate is the Danish moms applied on every invoice subtotal.
const VATRate = 0.25

// InvoiceLine is one billed shift.
type InvoiceLine struct {
	Date         time.Time
	Employee     string
	TimeRange    string
	StartMinutes int
	Hours        float64
	Category     StaffCategory
	Location     string
	Holiday      bool
	Rate         float64
	Total        float64 // Hours * Rate
}

// Invoice is the ordered, totaled set of lines for one client.
type Invoice struct {
	Number   int
	Lines    []InvoiceLine
	Subtotal float64
	VAT      float64
	Total    float64
}

// HolidaySet normalizes caller-selected holiday dates to midnight for
// membership tests.
func HolidaySet(dates []time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[Midnight(d)] = true
	}
	return set
}

// BuildInvoice turns one client's shifts into an invoice: it flags holidays,
// applies the client's rate policy and surcharge, sorts the lines by
// (location, date, start time, employee) so same-site shifts print together
// chronologically, and computes the totals.
//
// The rows are assumed to be pre-filtered by Client.Filter; there are no
// error paths here.
func BuildInvoice(client Client, shifts []NormalizedShift, holidays []time.Time, number int) Invoice {
	holidaySet := HolidaySet(holidays)

	inv := Invoice{Number: number}
	for _, s := range shifts {
		holiday := holidaySet[Midnight(s.Date)]

		rate := client.Rate(s, holiday)
		if client.Surcharge != nil {
			rate += client.Surcharge(s.RawLocation)
		}

		inv.Lines = append(inv.Lines, InvoiceLine{
			Date:         s.Date,
			Employee:     s.Employee,
			TimeRange:    s.TimeRange,
			StartMinutes: s.StartMinutes,
			Hours:        s.Hours,
			Category:     s.Category,
			Location:     s.Location,
			Holiday:      holiday,
			Rate:         rate,
			Total:        s.Hours * rate,
		})
	}

	sort.SliceStable(inv.Lines, func(i, j int) bool {
		a, b := inv.Lines[i], inv.Lines[j]
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartMinutes != b.StartMinutes {
			return a.StartMinutes < b.StartMinutes
		}
		return a.Employee < b.Employee
	})

	for _, line := range inv.Lines {
		inv.Subtotal += line.Total
	}
	inv.VAT = inv.Subtotal * VATRate
	inv.Total = inv.Subtotal + inv.VAT

	return inv
}
