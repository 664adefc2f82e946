package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fakturagen/config"
	"fakturagen/services"
)

// HandleInvoiceExportPDF generates and downloads one client's invoice PDF
// from an uploaded shift plan.
// Route: POST /clients/{slug}/invoice/pdf
func HandleInvoiceExportPDF(app *pocketbase.PocketBase, cfg config.Application) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		client, ok := services.ClientBySlug(e.Request.PathValue("slug"))
		if !ok {
			return e.String(http.StatusNotFound, "Unknown client")
		}

		data, status, err := buildInvoiceExport(app, cfg, client, e)
		if err != nil {
			log.Printf("invoice_export: %s: %v", client.Slug, err)
			return e.String(status, err.Error())
		}

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			log.Printf("invoice_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("Faktura_%s_%d.pdf",
			sanitizeFilename(client.FilePrefix), data.InvoiceNumber)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleInvoiceExportExcel generates and downloads one client's invoice as
// an xlsx workbook.
// Route: POST /clients/{slug}/invoice/xlsx
func HandleInvoiceExportExcel(app *pocketbase.PocketBase, cfg config.Application) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		client, ok := services.ClientBySlug(e.Request.PathValue("slug"))
		if !ok {
			return e.String(http.StatusNotFound, "Unknown client")
		}

		data, status, err := buildInvoiceExport(app, cfg, client, e)
		if err != nil {
			log.Printf("invoice_export: %s: %v", client.Slug, err)
			return e.String(status, err.Error())
		}

		xlsxBytes, err := services.GenerateInvoiceExcel(data)
		if err != nil {
			log.Printf("invoice_export: failed to generate Excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Faktura_%s_%d.xlsx",
			sanitizeFilename(client.FilePrefix), data.InvoiceNumber)

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// buildInvoiceExport runs the full pipeline for one client: parse the upload,
// filter the client's rows, check the invoice-number precondition, build the
// invoice and assemble the display data.
func buildInvoiceExport(
	app *pocketbase.PocketBase,
	cfg config.Application,
	client services.Client,
	e *core.RequestEvent,
) (services.InvoiceExportData, int, error) {
	plan, status, err := parseUploadedPlan(e, cfg)
	if err != nil {
		return services.InvoiceExportData{}, status, err
	}

	rows := client.Filter(plan.Shifts)
	if len(rows) == 0 {
		return services.InvoiceExportData{}, http.StatusUnprocessableEntity,
			fmt.Errorf("no %s rows found in the Afdeling column", client.Name)
	}

	// Generation is gated, not failed: a file with matching rows but no
	// invoice number gets an explanatory message.
	invoiceNumber, err := strconv.Atoi(e.Request.FormValue("invoice_number"))
	if err != nil {
		return services.InvoiceExportData{}, http.StatusBadRequest,
			fmt.Errorf("invalid invoice number")
	}
	if invoiceNumber <= 0 {
		return services.InvoiceExportData{}, http.StatusConflict,
			fmt.Errorf("the file has %s rows but no invoice number was entered for %s",
				client.Name, client.Name)
	}

	holidays, err := parseHolidayDates(e.Request.Form["holidays"])
	if err != nil {
		return services.InvoiceExportData{}, http.StatusBadRequest, err
	}

	recipient, err := loadRecipient(app, client.Slug)
	if err != nil {
		return services.InvoiceExportData{}, http.StatusNotFound, err
	}

	invoice := services.BuildInvoice(client, rows, holidays, invoiceNumber)

	senderTitle, senderLines := cfg.SenderParty()
	data := services.BuildInvoiceExportData(
		invoice,
		services.Party{Title: senderTitle, Lines: senderLines},
		recipient,
		cfg.BankLines(),
		time.Now(),
	)
	return data, http.StatusOK, nil
}
