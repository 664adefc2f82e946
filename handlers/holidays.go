package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HolidayResponse is one entry of the holiday catalog.
type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// HandleHolidayList returns the holiday catalog sorted by date.
// Route: GET /holidays
func HandleHolidayList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("holidays", "", "date", 0, 0, nil)
		if err != nil {
			log.Printf("holiday_list: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load holidays")
		}

		out := make([]HolidayResponse, 0, len(records))
		for _, r := range records {
			date := ""
			if dt := r.GetDateTime("date"); !dt.IsZero() {
				date = dt.Time().Format("2006-01-02")
			}
			out = append(out, HolidayResponse{
				ID:   r.Id,
				Date: date,
				Name: r.GetString("name"),
			})
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleHolidayCreate adds one date to the holiday catalog.
// Route: POST /holidays
func HandleHolidayCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload := struct {
			Date string `json:"date" form:"date"`
			Name string `json:"name" form:"name"`
		}{}
		if err := e.BindBody(&payload); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if _, err := time.Parse("2006-01-02", payload.Date); err != nil {
			return e.String(http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		}

		col, err := app.FindCollectionByNameOrId("holidays")
		if err != nil {
			log.Printf("holiday_create: %v", err)
			return e.String(http.StatusInternalServerError, "Holidays collection missing")
		}

		record := core.NewRecord(col)
		record.Set("date", payload.Date+" 00:00:00.000Z")
		record.Set("name", payload.Name)
		if err := app.Save(record); err != nil {
			log.Printf("holiday_create: save: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save holiday")
		}

		return e.JSON(http.StatusOK, HolidayResponse{
			ID:   record.Id,
			Date: payload.Date,
			Name: payload.Name,
		})
	}
}

// HandleHolidayDelete removes one entry from the holiday catalog.
// Route: DELETE /holidays/{id}
func HandleHolidayDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing holiday ID")
		}

		record, err := app.FindRecordById("holidays", id)
		if err != nil {
			return e.String(http.StatusNotFound, "Holiday not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("holiday_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to delete holiday")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
