package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

const (
	pdfMargin    = 15.0
	pdfLineH     = 6.0
	pdfBodyWidth = 180.0
)

// pdfRenderer draws reports onto an A4 document
type pdfRenderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// PDF writes every report into one document, each starting on a new page
func PDF(w io.Writer, reports ...*model.Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Resilience Assessment", true)

	r := &pdfRenderer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
	for _, report := range reports {
		pdf.AddPage()
		r.render(report)
	}
	if len(reports) == 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return goerr.Wrap(err, "failed to generate PDF")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to write PDF")
	}
	return nil
}

func (r *pdfRenderer) heading(text string) {
	r.pdf.Ln(3)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.CellFormat(0, 8, r.tr(text), "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "", 10)
}

func (r *pdfRenderer) paragraph(text string) {
	r.pdf.MultiCell(0, pdfLineH-1, r.tr(text), "", "L", false)
}

func (r *pdfRenderer) table(widths []float64, header []string, rows [][]string) {
	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], pdfLineH, r.tr(h), "1", 0, "L", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetFillColor(255, 255, 255)
	for _, row := range rows {
		for i, cell := range row {
			r.pdf.CellFormat(widths[i], pdfLineH, r.tr(cell), "1", 0, "L", false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.SetFont("Arial", "", 10)
}

func bandRGB(b types.ScoreBand) (int, int, int) {
	switch b {
	case types.ScoreBandVulnerable:
		return 192, 57, 43
	case types.ScoreBandModerate:
		return 211, 136, 0
	default:
		return 39, 174, 96
	}
}

func (r *pdfRenderer) render(report *model.Report) {
	title := "Resilience Assessment"
	if report.Name != "" {
		title += ": " + report.Name
	}
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.MultiCell(0, 9, r.tr(title), "", "L", false)
	r.pdf.Ln(4)

	red, green, blue := bandRGB(report.Band)
	r.pdf.SetTextColor(red, green, blue)
	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.CellFormat(0, 14, fmt.Sprintf("%.1f / 100", report.ResilienceScore), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Arial", "", 10)
	r.paragraph(report.Band.Description())

	r.heading("Top risks")
	rows := make([][]string, 0, len(report.TopRisks))
	for _, risk := range report.TopRisks {
		rows = append(rows, []string{
			risk.AssetName,
			risk.Category.DisplayName(),
			fmt.Sprintf("%.2f", risk.RiskScore),
			risk.Level.String(),
			risk.Reason,
		})
	}
	r.table([]float64{38, 40, 14, 16, 72}, []string{"Asset", "Category", "Risk", "Level", "Reason"}, rows)

	r.heading("Categories")
	rows = rows[:0]
	for _, m := range report.CategoryMetrics {
		rows = append(rows, []string{
			m.Category.DisplayName(),
			fmt.Sprintf("%d", m.AssetCount),
			fmt.Sprintf("%.2f", m.AvgRiskScore),
			fmt.Sprintf("%.2f", m.AvgContingencyScore),
			fmt.Sprintf("%.1f", m.ResilienceScore),
		})
	}
	r.table([]float64{60, 20, 30, 35, 35}, []string{"Category", "Assets", "Avg risk", "Avg contingency", "Resilience"}, rows)

	r.heading("Diversification")
	r.paragraph(fmt.Sprintf("%.1f / 10 (%s)", report.Diversification.Score, report.Diversification.Level))
	for _, advice := range report.Diversification.Recommendations {
		r.paragraph("- " + advice)
	}

	if len(report.Heatmap) > 0 {
		r.heading("Dependency heatmap")
		rows = rows[:0]
		for _, p := range report.Heatmap {
			rows = append(rows, []string{
				p.AssetName,
				p.Category.DisplayName(),
				fmt.Sprintf("%d", p.Importance),
				fmt.Sprintf("%d", p.Replaceability),
				fmt.Sprintf("%.2f", p.RiskScore),
			})
		}
		r.table([]float64{50, 50, 25, 30, 25}, []string{"Asset", "Category", "Importance", "Replaceability", "Risk"}, rows)
	}

	r.heading("Recommendations")
	for _, h := range types.AllHorizons() {
		bucket := report.Recommendations.Bucket(h)
		if bucket == nil || len(*bucket) == 0 {
			continue
		}
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.CellFormat(0, pdfLineH+1, r.tr(h.Label()), "", 1, "L", false, 0, "")
		for _, rec := range *bucket {
			r.pdf.SetFont("Arial", "B", 10)
			r.pdf.MultiCell(pdfBodyWidth, pdfLineH-1, r.tr(rec.Title), "", "L", false)
			r.pdf.SetFont("Arial", "", 10)
			r.paragraph(rec.Description)
			r.pdf.Ln(1)
		}
	}
}
