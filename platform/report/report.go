// Package report renders a snapshot summary as a printable PDF, mirroring
// the teacher's spreadsheet reporter but trading its ODS sheets for a
// single-document PDF built with fpdf. Like platform/mapimage, it is an
// optional collaborator: the core pipeline never calls it, and nothing in
// snapshot depends on it.
package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"codeberg.org/go-pdf/fpdf"
)

// ShinyKind labels a raid entry's shiny status for display.
type ShinyKind string

const (
	ShinyNone   ShinyKind = ""
	ShinyStar   ShinyKind = "star"
	ShinySquare ShinyKind = "square"
)

// RaidEntry is one raid, reduced to what a summary report shows. Callers
// build these from a snapshot's resolved raids; this package has no
// dependency on the snapshot package itself.
type RaidEntry struct {
	Region   string
	Stars    uint8
	Species  uint16
	Form     uint8
	TeraType uint8
	Shiny    ShinyKind
}

// Summary is everything GenerateToFile needs to build one report.
type Summary struct {
	Title    string
	Subtitle string
	Gen9     []RaidEntry
	Gen8     []RaidEntry
}

// Options controls report layout.
type Options struct {
	PageSize string // fpdf page size name, e.g. "A4", "Letter"
}

// DefaultOptions returns the report's default page layout.
func DefaultOptions() *Options {
	return &Options{PageSize: "A4"}
}

// Generate builds the PDF and returns its bytes.
func Generate(summary Summary, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	title := summary.Title
	if title == "" {
		title = "Raid Summary"
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	if summary.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, summary.Subtitle)
		pdf.Ln(12)
	}

	writeSection(pdf, "Gen9 Tera Raids", summary.Gen9)
	writeSection(pdf, "Gen8 Dynamax Raids", summary.Gen8)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateToFile builds the PDF and writes it to filename.
func GenerateToFile(filename string, summary Summary, opts *Options) error {
	data, err := Generate(summary, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func writeSection(pdf *fpdf.Fpdf, heading string, entries []RaidEntry) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, heading)
	pdf.Ln(9)

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No raids found.")
		pdf.Ln(10)
		return
	}

	sorted := make([]RaidEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Stars != sorted[j].Stars {
			return sorted[i].Stars > sorted[j].Stars
		}
		return sorted[i].Region < sorted[j].Region
	})

	pdf.SetFont("Helvetica", "B", 9)
	cols := []struct {
		label string
		width float64
	}{
		{"Region", 45}, {"Stars", 18}, {"Species", 25}, {"Form", 18}, {"Tera", 18}, {"Shiny", 22},
	}
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.label, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 9)
	shinyCount := 0
	for _, e := range sorted {
		shinyLabel := "-"
		switch e.Shiny {
		case ShinyStar:
			shinyLabel = "*"
			shinyCount++
		case ShinySquare:
			shinyLabel = "sq"
			shinyCount++
		}
		pdf.CellFormat(45, 6, e.Region, "", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", e.Stars), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("#%d", e.Species), "", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", e.Form), "", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", e.TeraType), "", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, shinyLabel, "", 0, "L", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("%d raids, %d shiny", len(sorted), shinyCount))
	pdf.Ln(10)
}
