package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF creates the invoice PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateInvoicePDF(data InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Side {current} af {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceParties(m, data)
	addInvoiceTableHeader(m)
	for _, line := range data.Lines {
		addInvoiceTableRow(m, line)
	}
	addInvoiceTotals(m, data)
	addInvoiceBankFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceHeader adds the sender name on the left and the FAKTURA title
// with the invoice number on the right.
func addInvoiceHeader(m core.Maroto, data InvoiceExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Sender.Title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("FAKTURA %d", data.InvoiceNumber), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Fakturadato: %s", data.InvoiceDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addInvoiceParties adds the Fra and Til address blocks side by side.
func addInvoiceParties(m core.Maroto, data InvoiceExportData) {
	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	titleStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	headerBg := &props.Color{Red: 245, Green: 243, Blue: 239}
	headerCell := &props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("FRA", sectionLabel)).WithStyle(headerCell),
			col.New(6).Add(text.New("TIL", sectionLabel)).WithStyle(headerCell),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.Sender.Title, titleStyle)),
			col.New(6).Add(text.New(data.Recipient.Title, titleStyle)),
		),
	)

	// The blocks rarely have the same number of lines; pair them up and pad
	// the shorter side with blanks.
	lines := len(data.Sender.Lines)
	if len(data.Recipient.Lines) > lines {
		lines = len(data.Recipient.Lines)
	}
	for i := 0; i < lines; i++ {
		left := ""
		if i < len(data.Sender.Lines) {
			left = data.Sender.Lines[i]
		}
		right := ""
		if i < len(data.Recipient.Lines) {
			right = data.Recipient.Lines[i]
		}
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(left, valueStyle)),
				col.New(6).Add(text.New(right, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addInvoiceTableHeader adds the column header row for the line-item table.
func addInvoiceTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Dato", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Medarbejder", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Tidsperiode", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Timer", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Personale", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Jobfunktion", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Helligdag", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Takst", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Samlet", headerText)).WithStyle(&headerCell),
		),
	)
}

// addInvoiceTableRow adds a single line of the invoice table.
func addInvoiceTableRow(m core.Maroto, line InvoiceExportLine) {
	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(line.Date, bodyText)),
			col.New(2).Add(text.New(line.Employee, bodyTextLeft)),
			col.New(2).Add(text.New(line.TimeRange, bodyText)),
			col.New(1).Add(text.New(line.Hours, bodyTextRight)),
			col.New(1).Add(text.New(line.Category, bodyText)),
			col.New(2).Add(text.New(line.Location, bodyTextLeft)),
			col.New(1).Add(text.New(line.Holiday, bodyText)),
			col.New(1).Add(text.New(line.Rate, bodyTextRight)),
			col.New(1).Add(text.New(line.Total, bodyTextRight)),
		),
	)
}

// addInvoiceTotals adds the subtotal, moms and grand total rows.
func addInvoiceTotals(m core.Maroto, data InvoiceExportData) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatDKK(data.Subtotal), valueStyle)).WithStyle(summaryCell),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Moms (25%)", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatDKK(data.VAT), valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total inkl. moms", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatDKK(data.Total), grandStyle)).WithStyle(grandCell),
		),
	)
}

// addInvoiceBankFooter adds the payment details lines at the bottom.
func addInvoiceBankFooter(m core.Maroto, data InvoiceExportData) {
	if len(data.BankLines) == 0 {
		return
	}

	m.AddRows(row.New(5))

	footerStyle := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	for _, line := range data.BankLines {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(line, footerStyle)),
			),
		)
	}
}
