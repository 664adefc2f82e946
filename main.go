package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"fakturagen/collections"
	"fakturagen/config"
	"fakturagen/handlers"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app := pocketbase.New()

	// Create collections and seed reference data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the upload form and assets from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Shift plan ───────────────────────────────────────────
		se.Router.POST("/shift-plans/preview", handlers.HandleShiftPlanPreview(app, cfg))

		// ── Clients & invoice generation ─────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.POST("/clients/{slug}/invoice/pdf", handlers.HandleInvoiceExportPDF(app, cfg))
		se.Router.POST("/clients/{slug}/invoice/xlsx", handlers.HandleInvoiceExportExcel(app, cfg))

		// ── Holiday catalog ──────────────────────────────────────
		se.Router.GET("/holidays", handlers.HandleHolidayList(app))
		se.Router.POST("/holidays", handlers.HandleHolidayCreate(app))
		se.Router.DELETE("/holidays/{id}", handlers.HandleHolidayDelete(app))

		// Redirect home to the upload form
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
