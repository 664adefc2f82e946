package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fakturagen/services"
)

// ClientResponse is one billing counterparty as exposed to the form.
type ClientResponse struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	CVR     string `json:"cvr"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// HandleClientList returns the registered clients with their billing details.
// The slug order follows the services registry so the form renders the
// clients in a stable order.
// Route: GET /clients
func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		out := make([]ClientResponse, 0, len(services.Clients()))
		for _, client := range services.Clients() {
			resp := ClientResponse{
				Slug: client.Slug,
				Name: client.Name,
			}

			record, err := app.FindFirstRecordByFilter(
				"clients", "slug = {:slug}", map[string]any{"slug": client.Slug})
			if err != nil {
				log.Printf("client_list: no record for %s: %v", client.Slug, err)
			} else {
				resp.Title = record.GetString("title")
				resp.CVR = record.GetString("cvr")
				resp.Contact = record.GetString("contact")
				resp.Email = record.GetString("email")
				resp.Address = record.GetString("address")
			}

			out = append(out, resp)
		}
		return e.JSON(http.StatusOK, out)
	}
}
