package pdfreport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

type LoadingOrder struct {
	Number          string
	Date            time.Time
	StorageLocation string
	DriverName      string
	Vehicle         string
	Transporter     string
	Destination     string
	Lines           []LoadingOrderLine
	Notes           string
}

type LoadingOrderLine struct {
	LineNumber  string
	GateNumber  string
	Commodity   string
	BatchNumber string
	Quantity    float64
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func LoadingOrderFilename(number, storageLocation string) string {
	location := strings.Trim(unsafeFilenameChars.ReplaceAllString(storageLocation, "_"), "_")
	if location == "" {
		location = "unknown"
	}
	return fmt.Sprintf("loading_order_%s_%s.pdf", number, location)
}

// RenderLoadingOrder печатная форма LO для одного склада (storage location).
func RenderLoadingOrder(w io.Writer, lo LoadingOrder) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Loading Order", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	field := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	field("LO Number:", lo.Number)
	field("Date:", lo.Date.Format("2006-01-02"))
	field("Storage Location:", lo.StorageLocation)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Driver", "B", 1, "L", false, 0, "")
	field("Name:", lo.DriverName)
	field("Vehicle:", lo.Vehicle)
	field("Transporter:", lo.Transporter)
	field("Destination:", lo.Destination)
	pdf.Ln(4)

	widths := []float64{20, 20, 70, 40, 30}
	titles := []string{"Line No.", "Gate No.", "Commodity", "Batch No.", "Quantity (MT)"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range titles {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var total float64
	for _, line := range lo.Lines {
		total += line.Quantity
		pdf.CellFormat(widths[0], 6, tr(line.LineNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(line.GateNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(line.Commodity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(line.BatchNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.3f", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 6, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.3f", total), "1", 1, "R", false, 0, "")
	pdf.Ln(12)

	signatures := []string{"Driver", "Warehouse", "Security", "Quality"}
	sigWidth := 180.0 / float64(len(signatures))
	y := pdf.GetY()
	left, _, _, _ := pdf.GetMargins()
	pdf.SetFont("Helvetica", "", 9)
	for i, role := range signatures {
		x := left + float64(i)*sigWidth
		pdf.Line(x+3, y+10, x+sigWidth-3, y+10)
		pdf.SetXY(x, y+11)
		pdf.CellFormat(sigWidth, 5, role+" Signature", "", 0, "C", false, 0, "")
	}
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(lo.Notes), "1", "L", false)
	if lo.Notes == "" {
		pdf.Rect(left, pdf.GetY(), 180, 20, "D")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render loading order %s: %w", lo.Number, err)
	}
	return nil
}
