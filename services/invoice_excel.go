package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel creates an xlsx rendition of the invoice and returns
// the file contents as a byte slice.
func GenerateInvoiceExcel(data InvoiceExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("Faktura %d", data.InvoiceNumber)
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1]

	widths := []float64{12, 28, 14, 8, 14, 18, 10, 10, 12}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header block ────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("FAKTURA %d", data.InvoiceNumber))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	f.SetCellValue(sheetName, "A2", "Fakturadato: "+data.InvoiceDate)
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)

	// Sender block on the left, recipient block on the right.
	f.SetCellValue(sheetName, "A4", "Fra: "+sanitizeExcelCell(data.Sender.Title))
	f.SetCellValue(sheetName, "E4", "Til: "+sanitizeExcelCell(data.Recipient.Title))
	partyRows := len(data.Sender.Lines)
	if len(data.Recipient.Lines) > partyRows {
		partyRows = len(data.Recipient.Lines)
	}
	for i := 0; i < partyRows; i++ {
		rowStr := fmt.Sprintf("%d", 5+i)
		if i < len(data.Sender.Lines) {
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(data.Sender.Lines[i]))
		}
		if i < len(data.Recipient.Lines) {
			f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(data.Recipient.Lines[i]))
		}
	}

	// ── Line-item table ─────────────────────────────────────────────────

	headerRow := 6 + partyRows
	headers := []string{"Dato", "Medarbejder", "Tidsperiode", "Timer", "Personale", "Jobfunktion", "Helligdag", "Takst", "Samlet"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], headerRow)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle)

	rowNum := headerRow + 1
	for _, line := range data.Lines {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, line.Date)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(line.Employee))
		f.SetCellValue(sheetName, "C"+rowStr, line.TimeRange)
		f.SetCellValue(sheetName, "D"+rowStr, line.Hours)
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(line.Category))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(line.Location))
		f.SetCellValue(sheetName, "G"+rowStr, line.Holiday)
		f.SetCellValue(sheetName, "H"+rowStr, line.Rate)
		f.SetCellValue(sheetName, "I"+rowStr, line.Total)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)
		rowNum++
	}

	// ── Totals block ────────────────────────────────────────────────────

	rowNum++
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal:", data.Subtotal},
		{"Moms (25%):", data.VAT},
		{"Total inkl. moms:", data.Total},
	}
	for _, t := range totals {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "H"+rowStr, t.label)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "I"+rowStr, FormatDKK(t.value))
		f.SetCellStyle(sheetName, "I"+rowStr, "I"+rowStr, summaryValueStyle)
		rowNum++
	}

	rowNum++
	for _, line := range data.BankLines {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(line))
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, subtitleStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
