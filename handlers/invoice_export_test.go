package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"fakturagen/testhelpers"
)

func TestHandleInvoiceExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{testhelpers.DefaultShiftRow()})
	req := newUploadRequest(t, "/clients/ajourcare/invoice/pdf", content,
		url.Values{"invoice_number": {"42"}})
	req.SetPathValue("slug", "ajourcare")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content-type: %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Faktura_AjourCare_42.pdf") {
		t.Errorf("unexpected content-disposition: %s", cd)
	}
	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response body is not a PDF")
	}
}

func TestHandleInvoiceExportPDF_UnknownClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	req := httptest.NewRequest(http.MethodPost, "/clients/ukendt/invoice/pdf", nil)
	req.SetPathValue("slug", "ukendt")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleInvoiceExportPDF_NoMatchingRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	// An Ajour Care-only file requested against Dit Vikarbureau.
	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{testhelpers.DefaultShiftRow()})
	req := newUploadRequest(t, "/clients/ditvikarbureau/invoice/pdf", content,
		url.Values{"invoice_number": {"42"}})
	req.SetPathValue("slug", "ditvikarbureau")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dit Vikarbureau") {
		t.Errorf("body = %q, want it to name the client", rec.Body.String())
	}
}

func TestHandleInvoiceExportPDF_MissingInvoiceNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{testhelpers.DefaultShiftRow()})
	req := newUploadRequest(t, "/clients/ajourcare/invoice/pdf", content, nil)
	req.SetPathValue("slug", "ajourcare")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleInvoiceExportPDF_ZeroInvoiceNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{testhelpers.DefaultShiftRow()})
	req := newUploadRequest(t, "/clients/ajourcare/invoice/pdf", content,
		url.Values{"invoice_number": {"0"}})
	req.SetPathValue("slug", "ajourcare")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no invoice number was entered") {
		t.Errorf("body = %q, want the gating message", rec.Body.String())
	}
}

func TestHandleInvoiceExportPDF_InvalidHolidayDate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportPDF(app, cfg)

	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{testhelpers.DefaultShiftRow()})
	req := newUploadRequest(t, "/clients/ajourcare/invoice/pdf", content,
		url.Values{"invoice_number": {"42"}, "holidays": {"25/12/2024"}})
	req.SetPathValue("slug", "ajourcare")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleInvoiceExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestClients(t, app)
	cfg := testConfig(t)

	handler := HandleInvoiceExportExcel(app, cfg)

	row := testhelpers.DefaultShiftRow()
	row.Department = "Dansk Omsorgspleje"
	row.JobFunction = "Dansk Omsorgspleje - Helsinge"

	content := testhelpers.BuildShiftPlanXLSX(t, []testhelpers.ShiftRow{row})
	req := newUploadRequest(t, "/clients/danskomsorgspleje/invoice/xlsx", content,
		url.Values{"invoice_number": {"7"}, "holidays": {"2024-01-08"}})
	req.SetPathValue("slug", "danskomsorgspleje")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content-type: %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Faktura_DanskOmsorgspleje_7.xlsx") {
		t.Errorf("unexpected content-disposition: %s", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response body is not a readable xlsx: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Faktura 7" {
		t.Errorf("sheet name = %q, want %q", sheet, "Faktura 7")
	}

	// The sender block always carries 4 lines, so the table header is on
	// row 10 and the single line row on 11.
	holiday, _ := f.GetCellValue(sheet, "G11")
	if holiday != "Ja" {
		t.Errorf("G11 = %q, want the holiday flag set", holiday)
	}
	rate, _ := f.GetCellValue(sheet, "H11")
	if rate != "350.00" {
		t.Errorf("H11 = %q, want the 350 holiday rate", rate)
	}
}

func TestHandleInvoiceExportExcel_UnknownClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testConfig(t)

	handler := HandleInvoiceExportExcel(app, cfg)

	req := httptest.NewRequest(http.MethodPost, "/clients/ukendt/invoice/xlsx", nil)
	req.SetPathValue("slug", "ukendt")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
