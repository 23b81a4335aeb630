// Package pdf renders the discount decision report: a printable record of a
// request, its line items and the decision the policy engine or a reviewer
// took on it.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name  │  Request id + Date                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: Name + tax id + contact                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Product | Base Price | Disc% | Final           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Base / Discount / FINAL                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DECISION: status + decided by + reason + AI signals         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 82, Blue: 144}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.DecisionReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements ports.DecisionReportGenerator with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDecisionReport renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateDecisionReport(
	_ context.Context,
	request *entity.DiscountRequest,
	company *entity.Company,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Discount Decision Report", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(request, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(request.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(request))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range decisionRows(request) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name (left), request id and date (right).
func headerRow(request *entity.DiscountRequest, company *entity.Company) core.Row {
	date := request.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tax ID: "+nonEmpty(company.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DISCOUNT DECISION REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(request.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: the requesting customer.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tax ID: %s   |   Email: %s   |   Phone: %s",
				nonEmpty(customer.TaxID, "—"),
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Product", 5, align.Left),
		h("Base Price", 2, align.Right),
		h("Disc%", 1, align.Center),
		h("Final", 3, align.Right),
	)
}

// tableItemRows: one row per line item.
func tableItemRows(items []valueobject.DiscountRequestItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity()),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				item.ProductName(),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				item.UnitBasePrice().String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				item.DiscountPercentage().StringFixed(1)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				item.TotalFinalPrice().String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: base / discount / final block aligned right.
func totalsRow(request *entity.DiscountRequest) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total before discount:"),
			label("Total discount:"),
			grandLabel("FINAL TOTAL:"),
		),
		col.New(4).Add(
			value(request.TotalBase().String()),
			value(request.TotalDiscount().String()),
			grandValue(request.TotalFinal().String()),
		),
		col.New(1),
	)
}

// decisionRows: status, who decided, when, the reason and the AI signals.
func decisionRows(request *entity.DiscountRequest) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DECISION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New(strings.ToUpper(strings.ReplaceAll(request.Status, "_", " ")), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	decided := "pending"
	if request.DecidedAt != nil {
		decided = fmt.Sprintf("by %s on %s", request.DecidedBy, request.DecidedAt.Format("02/01/2006 15:04"))
	}
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New("Decided "+decided, props.Text{Size: 8, Color: colorGray, Top: 1}),
	)))

	if request.DecisionReason != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Reason: "+request.DecisionReason, props.Text{Size: 8, Top: 1}),
		)))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Risk score: %d/100   |   AI confidence: %.0f%%",
			request.RiskScore, request.AIConfidence*100),
			props.Text{Size: 8, Color: colorGray, Top: 1}),
	)))

	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
