package pdf

import (
	"bytes"
	"fmt"
	"time"

	"RentalCopilot/internal/entity"

	"github.com/jung-kurt/gofpdf"
)

type QuoteDocument struct {
	RunID   string
	Quote   entity.Quote
	Days    int
	Summary string
}

type IRenderer interface {
	RenderQuote(doc QuoteDocument) ([]byte, error)
}

type renderer struct {
	companyName string
}

func New(companyName string) IRenderer {
	if companyName == "" {
		companyName = "Rental Copilot"
	}
	return &renderer{companyName: companyName}
}

func (r *renderer) RenderQuote(doc QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", doc.RunID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s", doc.RunID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Rental length: %d days", doc.Days))
	pdf.Ln(10)

	r.renderItemsTable(pdf, doc.Quote)
	r.renderTotals(pdf, doc.Quote)

	if doc.Summary != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, doc.Summary, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *renderer) renderItemsTable(pdf *gofpdf.Fpdf, q entity.Quote) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Days", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Daily Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range q.Items {
		name := line.Name
		if name == "" {
			name = line.SKU
		}
		pdf.CellFormat(70, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Days), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, formatMoney(line.DailyRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatMoney(line.Subtotal), "1", 1, "R", false, 0, "")
	}
}

func (r *renderer) renderTotals(pdf *gofpdf.Fpdf, q entity.Quote) {
	pdf.Ln(4)

	writeRow := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(140, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, formatMoney(amount), "", 1, "R", false, 0, "")
	}

	writeRow("Subtotal", q.Subtotal, false)
	if q.Discount > 0 {
		writeRow("Discount", -q.Discount, false)
	}
	for _, fee := range q.Fees {
		writeRow(fee.Name, fee.Amount, false)
	}
	writeRow("Tax", q.Tax, false)
	writeRow(fmt.Sprintf("Total (%s)", q.Currency), q.Total, true)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
