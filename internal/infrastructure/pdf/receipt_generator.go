// Package pdf genera el comprobante de entrega de sangre.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Banco de sangre      │  N° Entrega + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: Nombre + email                                    │
//	│  SOLICITUD: Hospital / Motivo / Urgencia                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Grupo | Unidades | Centro de recolección             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id de la entrega + notas                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
)

var (
	colorPrimary = &props.Color{Red: 170, Green: 20, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ReceiptRenderer = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa ports.ReceiptRenderer usando Maroto v2.
type ReceiptGenerator struct {
	bankName string
}

// NewReceiptGenerator construye el generador. bankName aparece en el encabezado.
func NewReceiptGenerator(bankName string) *ReceiptGenerator {
	return &ReceiptGenerator{bankName: nonEmpty(bankName, "Blood Bank")}
}

// SupplyReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) SupplyReceipt(data ports.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Blood Supply Receipt", true).
		WithAuthor(g.bankName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receiverRow(data))
	if data.Request != nil {
		m.AddRows(requestRow(data))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(data ports.ReceiptData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.bankName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Blood Supply Receipt", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SUPPLY N°", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Supply.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+data.Supply.SupplyDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func receiverRow(data ports.ReceiptData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEIVER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.ReceiverName, data.Supply.UserID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+nonEmpty(data.ReceiverMail, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func requestRow(data ports.ReceiptData) core.Row {
	req := data.Request
	return row.New(14).Add(
		col.New(12).Add(
			text.New("REQUEST", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Hospital: %s   |   Reason: %s   |   Urgency: %s",
				nonEmpty(req.HospitalName, "-"),
				nonEmpty(req.Reason, "-"),
				nonEmpty(req.Urgency, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New("Requested: "+req.RequestDate.Format("02/01/2006"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Blood group", 3, align.Center),
		h("Units", 2, align.Center),
		h("Collection center", 7, align.Left),
	)
}

func tableRow(data ports.ReceiptData) core.Row {
	s := data.Supply
	return row.New(8).Add(
		col.New(3).Add(text.New(string(s.BloodGroup), props.Text{Size: 9, Align: align.Center, Top: 2})),
		col.New(2).Add(text.New(strconv.Itoa(s.Quantity), props.Text{Size: 9, Align: align.Center, Top: 2})),
		col.New(7).Add(text.New(s.CollectionCenter, props.Text{Size: 9, Top: 2, Left: 1})),
	)
}

func footerRow(data ports.ReceiptData) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(data.Supply.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Present this receipt at the collection center.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Notes: "+nonEmpty(data.Supply.Notes, "-"), props.Text{
				Size: 8, Top: 12, Left: 3,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
