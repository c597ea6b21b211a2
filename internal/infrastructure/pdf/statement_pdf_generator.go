// Package pdf genera el estado de cuenta de un cliente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + contacto │ ESTADO DE CUENTA    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / alias / teléfono / límite de crédito      │
//	│  RESUMEN: Créditos | Abonos | Saldo | Crédito disponible     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VENTAS A CRÉDITO: Fecha | Descripción | Valor         │
//	│  TABLA ABONOS:           Fecha | Descripción | Valor         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

var _ ports.StatementPDFGenerator = (*StatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebt    = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorFavor   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// StatementGenerator implementa ports.StatementPDFGenerator usando Maroto v2.
type StatementGenerator struct {
	now func() time.Time
}

// NewStatementGenerator construye el generador.
func NewStatementGenerator() *StatementGenerator {
	return &StatementGenerator{now: time.Now}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *StatementGenerator) Generate(_ context.Context, business *entity.Business, st ledger.Statement) ([]byte, error) {
	if business == nil {
		business = &entity.Business{Name: entity.DefaultBusinessName}
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta - "+st.Customer.Name, true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(st.Customer))
	m.AddRows(summaryRow(st.Balance))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("VENTAS A CRÉDITO"))
	m.AddRows(tableHeaderRow())
	sales := make([]core.Row, 0, len(st.CreditSales))
	for _, s := range st.CreditSales {
		sales = append(sales, detailRow(s.Date, s.Description, s.Total))
	}
	m.AddRows(orEmpty(sales, "Sin ventas a crédito")...)

	m.AddRows(row.New(3))
	m.AddRows(sectionTitle("ABONOS"))
	m.AddRows(tableHeaderRow())
	payments := make([]core.Row, 0, len(st.Payments))
	for _, p := range st.Payments {
		payments = append(payments, detailRow(p.Date, p.Description, p.Amount))
	}
	m.AddRows(orEmpty(payments, "Sin abonos registrados")...)

	m.AddRows(row.New(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio y contacto (izq), título y fecha de corte (der).
func headerRow(b *entity.Business, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(b.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("Tel: %s   |   %s",
				nonEmpty(b.Phone, "-"),
				nonEmpty(b.Address, "-"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+now.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(c entity.Customer) core.Row {
	name := c.Name
	if c.Alias != "" {
		name = fmt.Sprintf("%s (%s)", c.Name, c.Alias)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Tel: %s   |   Dirección: %s   |   Límite de crédito: %s",
				nonEmpty(c.Phone, "-"),
				nonEmpty(c.Address, "-"),
				money.Format(c.CreditLimit),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// summaryRow: cuatro cifras del saldo; el saldo se colorea según la situación.
func summaryRow(b ledger.Balance) core.Row {
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: color, Top: 5}),
		)
	}
	balanceColor := colorPrimary
	switch b.Standing() {
	case ledger.StandingOwes:
		balanceColor = colorDebt
	case ledger.StandingInFavor:
		balanceColor = colorFavor
	}
	return row.New(14).Add(
		cell("Total créditos", money.Format(b.CreditTotal), colorPrimary),
		cell("Total abonos", money.Format(b.PaymentsTotal), colorPrimary),
		cell(standingLabel(b.Standing()), money.Format(b.Balance.Abs()), balanceColor),
		cell("Crédito disponible", money.Format(b.AvailableCredit), colorPrimary),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 7, align.Left),
		h("Valor", 3, align.Right),
	)
}

func detailRow(date time.Time, description string, amount decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(date.Format(dateLayout), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(7).Add(text.New(nonEmpty(description, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(money.Format(amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func footerRow(now time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Documento generado el "+now.Format(dateLayout+" 15:04")+". Los valores incluyen únicamente ventas a crédito completadas.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func standingLabel(standing string) string {
	switch standing {
	case ledger.StandingOwes:
		return "Saldo pendiente"
	case ledger.StandingInFavor:
		return "Saldo a favor"
	default:
		return "Al día"
	}
}

func orEmpty(rows []core.Row, msg string) []core.Row {
	if len(rows) > 0 {
		return rows
	}
	return []core.Row{row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
