package pdfreport

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// linesPerPage столько строк товара на одной странице печатной LTI.
const linesPerPage = 5

type LTI struct {
	Number          string
	Date            time.Time
	FRNCF           string
	OriginLocation  string
	OriginSLDesc    string
	Destination     string
	Consignee       string
	TPONumber       string
	TransporterName string
	Remarks         string
	Lines           []LTILine
}

type LTILine struct {
	LineNumber  string
	Commodity   string
	BatchNumber string
	Net         float64
	Gross       float64
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RenderLTI печатная форма LTI/STO: реквизиты на первой странице, строки по
// пять на страницу с промежуточным итогом, подписи и замечания на последней.
func RenderLTI(w io.Writer, lti LTI) error {
	lines := slices.Clone(lti.Lines)
	slices.SortStableFunc(lines, func(a, b LTILine) int {
		an, _ := strconv.Atoi(a.LineNumber)
		bn, _ := strconv.Atoi(b.LineNumber)
		return an - bn
	})

	pages := slices.Collect(slices.Chunk(lines, linesPerPage))
	if len(pages) == 0 {
		pages = [][]LTILine{nil}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, group := range pages {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, "Loading Transport Instruction", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		header := "LTI No. " + lti.Number
		if i > 0 {
			header += fmt.Sprintf(" (page %d of %d)", i+1, len(pages))
		}
		pdf.CellFormat(0, 6, tr(header), "", 1, "C", false, 0, "")
		pdf.Ln(4)

		if i == 0 {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, "I TRANSACTION DETAILS", "B", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			details := [][2]string{
				{"FRN / CF", dashIfEmpty(lti.FRNCF)},
				{"LTI Date", lti.Date.Format("2006-01-02")},
				{"Origin Location", lti.OriginLocation},
				{"Origin SL", lti.OriginSLDesc},
				{"Destination", lti.Destination},
				{"Consignee", dashIfEmpty(lti.Consignee)},
				{"TPO Number", dashIfEmpty(lti.TPONumber)},
				{"Transporter", lti.TransporterName},
			}
			for _, d := range details {
				pdf.CellFormat(45, 6, d[0]+":", "", 0, "L", false, 0, "")
				pdf.CellFormat(0, 6, tr(d[1]), "", 1, "L", false, 0, "")
			}
			pdf.Ln(4)
		}

		title := "II COMMODITY DETAILS"
		if i > 0 {
			title += " (Continued)"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		widths := []float64{20, 70, 40, 30, 30}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for j, t := range []string{"Line", "Commodity", "Batch", "Net (MT)", "Gross (MT)"} {
			pdf.CellFormat(widths[j], 7, t, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		var net, gross float64
		for _, line := range group {
			net += line.Net
			gross += line.Gross
			pdf.CellFormat(widths[0], 6, tr(line.LineNumber), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[1], 6, tr(line.Commodity), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 6, tr(line.BatchNumber), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.3f", line.Net), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.3f", line.Gross), "1", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 6, "Subtotal", "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.3f", net), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.3f", gross), "1", 1, "R", false, 0, "")

		if i == len(pages)-1 {
			renderLTIClosing(pdf, tr, lti.Remarks)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render lti %s: %w", lti.Number, err)
	}
	return nil
}

func renderLTIClosing(pdf *fpdf.Fpdf, tr func(string) string, remarks string) {
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "III APPROVING CERTIFICATION", "B", 1, "L", false, 0, "")
	pdf.Ln(10)

	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()
	pdf.SetFont("Helvetica", "", 9)
	for i, role := range []string{"Issued by", "Approved by"} {
		x := left + float64(i)*95
		pdf.Line(x, y, x+80, y)
		pdf.SetXY(x, y+1)
		pdf.CellFormat(80, 5, role, "", 0, "C", false, 0, "")
	}
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Observations", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(remarks), "1", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 7)
	pdf.MultiCell(0, 4, "1. Origin Type: Please indicate whether vessel, Warehouse or Vehicle", "", "L", false)
	pdf.MultiCell(0, 4, "2. Point of Reference: Please record in this area either the Bill of Lading No, "+
		"the Warehouse name (silo code)/or waybill no, depending on the item indicated under \"Type\"", "", "L", false)
}
