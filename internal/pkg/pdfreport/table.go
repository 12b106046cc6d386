// Package pdfreport рисует отчёты (таблица с шапкой и подвалом) и печатную
// форму Loading Order.
package pdfreport

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	lineHeight   = 6.0
	headerHeight = 7.0
)

type Column struct {
	Title string
	// Width доля ширины страницы, сумма по колонкам должна быть 1.
	Width float64
	Align string
}

type Table struct {
	Title       string
	Subtitle    []string
	Columns     []Column
	Rows        [][]string
	Footer      []string
	GeneratedAt time.Time
}

// RenderTable альбомный A4; шапка таблицы повторяется на каждой странице.
func RenderTable(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(true, 15)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range t.Columns {
			pdf.CellFormat(c.Width*usable, headerHeight, tr(c.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", t.GeneratedAt.Format("2006-01-02 15:04")), "", 0, "L", false, 0, "")
		pdf.SetX(left)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range t.Subtitle {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	drawHeader()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range t.Rows {
		if pdf.GetY()+lineHeight > pageHeight-bottom {
			pdf.AddPage()
			drawHeader()
		}
		for i, c := range t.Columns {
			var value string
			if i < len(row) {
				value = row[i]
			}
			align := c.Align
			if align == "" {
				align = "L"
			}
			pdf.CellFormat(c.Width*usable, lineHeight, tr(value), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(t.Footer) > 0 {
		pdf.SetFont("Helvetica", "B", 8)
		for i, c := range t.Columns {
			var value string
			if i < len(t.Footer) {
				value = t.Footer[i]
			}
			pdf.CellFormat(c.Width*usable, lineHeight, tr(value), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render %q: %w", t.Title, err)
	}
	return nil
}
