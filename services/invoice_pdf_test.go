package services

import (
	"testing"
	"time"
)

func TestGenerateInvoicePDF(t *testing.T) {
	sender, recipient := testExportParties()
	data := BuildInvoiceExportData(testExportInvoice(), sender, recipient,
		[]string{"Finseta: IBAN GB79TCCL04140404627601", "Betalingsbetingelser: 8 dage netto"},
		time.Date(2025, time.February, 3, 10, 0, 0, 0, time.UTC))

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateInvoicePDF_NoLines(t *testing.T) {
	sender, recipient := testExportParties()
	data := BuildInvoiceExportData(Invoice{Number: 9}, sender, recipient, nil, time.Now())

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
}

func TestGenerateInvoicePDF_ManyLines(t *testing.T) {
	// Enough lines to force a page break.
	inv := Invoice{Number: 77}
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Date:      day.AddDate(0, 0, i%28),
			Employee:  "Anne Jensen",
			TimeRange: "07:00-15:00",
			Hours:     8,
			Category:  CategoryHelper,
			Location:  "herlev",
			Rate:      200,
			Total:     1600,
		})
		inv.Subtotal += 1600
	}
	inv.VAT = inv.Subtotal * VATRate
	inv.Total = inv.Subtotal + inv.VAT

	sender, recipient := testExportParties()
	data := BuildInvoiceExportData(inv, sender, recipient, []string{"IBAN DK00 0000"}, time.Now())

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
}
