package main

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 6   // Row height in mm
	pdfFontSize   = 10
)

// Column widths in mm: screen, container, approximate line.
var pdfColumns = [3]float64{110, 50, 30}

// generatePDF writes the report as a one-table PDF. Nothing is written when a
// record is invalid.
func generatePDF(records Records, outputPath string) error {
	names := make([]string, len(records))
	for i, screen := range records {
		name, err := basename(screen.Path)
		if err != nil {
			return &InvalidRecordError{Index: i, Path: screen.Path, Reason: err.Error()}
		}
		names[i] = name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(fmt.Sprintf("Need to update %d screens", len(records)), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, fmt.Sprintf("Need to update %d screens", len(records)), "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	if len(records) > 0 {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(230, 230, 230)
		for i, header := range []string{"Screen", "Container", "Line (approx.)"} {
			pdf.CellFormat(pdfColumns[i], pdfLineHeight, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Courier", "", pdfFontSize)
		for i, screen := range records {
			line := ""
			if screen.LineApprox > 0 {
				line = "~" + strconv.Itoa(screen.LineApprox)
			}
			pdf.CellFormat(pdfColumns[0], pdfLineHeight, names[i], "1", 0, "L", false, 0, "")
			pdf.CellFormat(pdfColumns[1], pdfLineHeight, screen.Container, "1", 0, "L", false, 0, "")
			pdf.CellFormat(pdfColumns[2], pdfLineHeight, line, "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}

	verbosef("Successfully saved PDF to %s\n", outputPath)
	return nil
}
