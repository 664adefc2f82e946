package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fakturagen/config"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// testConfig loads the built-in defaults; no config file is present in tests.
func testConfig(t *testing.T) config.Application {
	t.Helper()
	cfg, err := config.Load("testdata/missing.yml")
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}

// newUploadRequest builds a multipart POST with the given xlsx bytes as the
// "file" part plus any extra form fields.
func newUploadRequest(t *testing.T, target string, file []byte, fields url.Values) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", "vagtplan.xlsx")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(file); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}

	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				t.Fatalf("failed to write form field %s: %v", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
