package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateInvoiceExcel(t *testing.T) {
	sender, recipient := testExportParties()
	data := BuildInvoiceExportData(testExportInvoice(), sender, recipient,
		[]string{"Finseta: IBAN GB79TCCL04140404627601"},
		time.Date(2025, time.February, 3, 10, 0, 0, 0, time.UTC))

	result, err := GenerateInvoiceExcel(data)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoiceExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("generated file is not a readable xlsx: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName != "Faktura 142" {
		t.Errorf("sheet name = %q, want %q", sheetName, "Faktura 142")
	}

	title, err := f.GetCellValue(sheetName, "A1")
	if err != nil {
		t.Fatalf("GetCellValue(A1) error = %v", err)
	}
	if title != "FAKTURA 142" {
		t.Errorf("A1 = %q, want %q", title, "FAKTURA 142")
	}

	dateCell, _ := f.GetCellValue(sheetName, "A2")
	if dateCell != "Fakturadato: 03.02.2025" {
		t.Errorf("A2 = %q, want %q", dateCell, "Fakturadato: 03.02.2025")
	}

	from, _ := f.GetCellValue(sheetName, "A4")
	if from != "Fra: MR Rekruttering" {
		t.Errorf("A4 = %q, want %q", from, "Fra: MR Rekruttering")
	}
	to, _ := f.GetCellValue(sheetName, "E4")
	if to != "Til: DANSK OMSORGSPLEJE APS" {
		t.Errorf("E4 = %q, want %q", to, "Til: DANSK OMSORGSPLEJE APS")
	}

	// Both parties carry 2 lines, so the table header lands on row 8.
	header, _ := f.GetCellValue(sheetName, "A8")
	if header != "Dato" {
		t.Errorf("A8 = %q, want %q", header, "Dato")
	}
	lastHeader, _ := f.GetCellValue(sheetName, "I8")
	if lastHeader != "Samlet" {
		t.Errorf("I8 = %q, want %q", lastHeader, "Samlet")
	}

	firstDate, _ := f.GetCellValue(sheetName, "A9")
	if firstDate != "08.01.2024" {
		t.Errorf("A9 = %q, want %q", firstDate, "08.01.2024")
	}
	firstTotal, _ := f.GetCellValue(sheetName, "I9")
	if firstTotal != "2040.00" {
		t.Errorf("I9 = %q, want %q", firstTotal, "2040.00")
	}
	holiday, _ := f.GetCellValue(sheetName, "G10")
	if holiday != "Ja" {
		t.Errorf("G10 = %q, want %q", holiday, "Ja")
	}

	// Totals block starts one blank row after the 2 line rows.
	subtotalLabel, _ := f.GetCellValue(sheetName, "H12")
	if subtotalLabel != "Subtotal:" {
		t.Errorf("H12 = %q, want %q", subtotalLabel, "Subtotal:")
	}
	vatValue, _ := f.GetCellValue(sheetName, "I13")
	if vatValue != "1.166,25 kr" {
		t.Errorf("I13 = %q, want %q", vatValue, "1.166,25 kr")
	}
	totalValue, _ := f.GetCellValue(sheetName, "I14")
	if totalValue != "5.831,25 kr" {
		t.Errorf("I14 = %q, want %q", totalValue, "5.831,25 kr")
	}

	bank, _ := f.GetCellValue(sheetName, "A16")
	if bank != "Finseta: IBAN GB79TCCL04140404627601" {
		t.Errorf("A16 = %q, want %q", bank, "Finseta: IBAN GB79TCCL04140404627601")
	}
}

func TestGenerateInvoiceExcel_NoLines(t *testing.T) {
	sender, recipient := testExportParties()
	data := BuildInvoiceExportData(Invoice{Number: 5}, sender, recipient, nil, time.Now())

	result, err := GenerateInvoiceExcel(data)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoiceExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Anne Jensen", "Anne Jensen"},
		{"formula equals", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"leading plus", "+45 71747290", "'+45 71747290"},
		{"leading minus", "-vagt", "'-vagt"},
		{"leading at", "@import", "'@import"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
