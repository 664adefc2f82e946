package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fakturagen/config"
	"fakturagen/services"
)

// ShiftPlanSummary reports what an uploaded file contains before any invoice
// is generated: how many cleaned rows each client pattern matched and which
// shift dates occur (candidates for the holiday selection).
type ShiftPlanSummary struct {
	TotalRows   int            `json:"total_rows"`
	DroppedRows int            `json:"dropped_rows"`
	ClientRows  map[string]int `json:"client_rows"`
	Dates       []string       `json:"dates"`
}

// HandleShiftPlanPreview receives a shift-plan upload and returns its
// per-client row counts without generating anything.
// Route: POST /shift-plans/preview
func HandleShiftPlanPreview(app *pocketbase.PocketBase, cfg config.Application) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		plan, status, err := parseUploadedPlan(e, cfg)
		if err != nil {
			log.Printf("shift_plan_preview: %v", err)
			return e.String(status, err.Error())
		}

		summary := ShiftPlanSummary{
			TotalRows:   len(plan.Shifts),
			DroppedRows: plan.DroppedRows,
			ClientRows:  make(map[string]int),
		}
		for _, client := range services.Clients() {
			summary.ClientRows[client.Slug] = len(client.Filter(plan.Shifts))
		}
		for _, d := range plan.Dates() {
			summary.Dates = append(summary.Dates, d.Format("2006-01-02"))
		}

		return e.JSON(http.StatusOK, summary)
	}
}

// parseUploadedPlan extracts and parses the "file" part of a multipart
// upload. The returned status is the HTTP status to use when err is non-nil.
func parseUploadedPlan(e *core.RequestEvent, cfg config.Application) (*services.ShiftPlan, int, error) {
	maxBytes := cfg.Upload.MaxFileSizeMB << 20
	if err := e.Request.ParseMultipartForm(maxBytes); err != nil {
		return nil, http.StatusBadRequest, err
	}

	file, _, err := e.Request.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	defer file.Close()

	plan, err := services.ParseShiftPlan(file)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return plan, http.StatusOK, nil
}
