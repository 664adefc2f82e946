// Package config loads the application configuration: defaults first, then
// an optional yaml file, then FAKTURA_-prefixed environment variables.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Application struct {
	Sender Sender `koanf:"sender"`
	Bank   Bank   `koanf:"bank"`
	Upload Upload `koanf:"upload"`
}

// Sender is the invoice issuer's identity block.
type Sender struct {
	Name    string `koanf:"name"`
	Address string `koanf:"address"`
	CVR     string `koanf:"cvr"`
	Phone   string `koanf:"phone"`
	Web     string `koanf:"web"`
}

// Bank holds the payment-details footer lines printed on every invoice.
type Bank struct {
	Line1 string `koanf:"line1"`
	Line2 string `koanf:"line2"`
}

type Upload struct {
	// MaxFileSizeMB caps the uploaded shift-plan size.
	MaxFileSizeMB int64 `koanf:"maxfilesizemb"`
}

// Load reads the configuration. A missing file at path is not an error; the
// built-in defaults match the production sender identity.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Sender: Sender{
			Name:    "MR Rekruttering",
			Address: "Valbygårdsvej 1, 4. th, 2500 Valby",
			CVR:     "45090965",
			Phone:   "71747290",
			Web:     "www.akutvikar.com",
		},
		Bank: Bank{
			Line1: "Bank: Finseta | IBAN: GB79TCCL04140404627601 | BIC: TCCLGB3LXXX",
			Line2: "Betalingsbetingelser: Bankoverførsel. Fakturanr. bedes angivet ved betaling.",
		},
		Upload: Upload{
			MaxFileSizeMB: 10,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Printf("config: error loading defaults: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: error loading %s: %v", path, err)
			return Application{}, err
		}
	} else {
		log.Printf("config: loaded configuration from %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "FAKTURA_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "FAKTURA_")), "_", ".")
			return key, value
		},
	}), nil)
	if err != nil {
		log.Printf("config: error loading environment: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// SenderParty returns the sender identity as invoice address-block lines.
func (a Application) SenderParty() (title string, lines []string) {
	return a.Sender.Name, []string{
		a.Sender.Address,
		"CVR.nr. " + a.Sender.CVR,
		"Tlf: " + a.Sender.Phone,
		"Web: " + a.Sender.Web,
	}
}

// BankLines returns the non-empty payment footer lines.
func (a Application) BankLines() []string {
	var lines []string
	for _, l := range []string{a.Bank.Line1, a.Bank.Line2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
