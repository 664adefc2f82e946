package services

import "time"

// Party is one address block on the invoice, either sender or recipient.
type Party struct {
	Title string
	Lines []string
}

// InvoiceExportLine is one display-ready row of the invoice table. Free-text
// fields are truncated to their column widths.
type InvoiceExportLine struct {
	Date      string
	Employee  string
	TimeRange string
	Hours     string
	Category  string
	Location  string
	Holiday   string // "Ja" / "Nej"
	Rate      string
	Total     string
}

// InvoiceExportData holds everything the PDF and Excel renderers need.
type InvoiceExportData struct {
	Sender    Party
	Recipient Party

	InvoiceNumber int
	InvoiceDate   string

	Lines []InvoiceExportLine

	Subtotal float64
	VAT      float64
	Total    float64

	BankLines []string
}

// Display column widths for free-text fields.
const (
	maxEmployeeLen = 26
	maxCategoryLen = 12
	maxLocationLen = 14
)

// BuildInvoiceExportData converts a computed invoice into its display form.
// The invoice date is the generation date, not a value from the shift plan.
func BuildInvoiceExportData(inv Invoice, sender, recipient Party, bankLines []string, now time.Time) InvoiceExportData {
	data := InvoiceExportData{
		Sender:        sender,
		Recipient:     recipient,
		InvoiceNumber: inv.Number,
		InvoiceDate:   now.Format("02.01.2006"),
		Subtotal:      inv.Subtotal,
		VAT:           inv.VAT,
		Total:         inv.Total,
		BankLines:     bankLines,
	}

	for _, line := range inv.Lines {
		holiday := "Nej"
		if line.Holiday {
			holiday = "Ja"
		}
		data.Lines = append(data.Lines, InvoiceExportLine{
			Date:      line.Date.Format("02.01.2006"),
			Employee:  truncate(line.Employee, maxEmployeeLen),
			TimeRange: line.TimeRange,
			Hours:     formatHours(line.Hours),
			Category:  truncate(string(line.Category), maxCategoryLen),
			Location:  truncate(line.Location, maxLocationLen),
			Holiday:   holiday,
			Rate:      formatAmountCell(line.Rate),
			Total:     formatAmountCell(line.Total),
		})
	}

	return data
}

// truncate cuts a string to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
