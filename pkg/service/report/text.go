package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

var (
	headingColor = color.New(color.Bold, color.Underline)
	labelColor   = color.New(color.Bold)
	mutedColor   = color.New(color.Faint)
)

func bandColor(b types.ScoreBand) *color.Color {
	switch b {
	case types.ScoreBandVulnerable:
		return color.New(color.FgRed, color.Bold)
	case types.ScoreBandModerate:
		return color.New(color.FgYellow, color.Bold)
	case types.ScoreBandStrong:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

func riskColor(l types.RiskLevel) *color.Color {
	switch l {
	case types.RiskLevelHigh:
		return color.New(color.FgRed)
	case types.RiskLevelMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// textWriter keeps the first write error so rendering code stays linear
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(c *color.Color, format string, args ...any) {
	if t.err != nil {
		return
	}
	if c == nil {
		_, t.err = fmt.Fprintf(t.w, format, args...)
		return
	}
	_, t.err = c.Fprintf(t.w, format, args...)
}

// Text writes a human readable report. Colors follow color.NoColor.
func Text(w io.Writer, reports ...*model.Report) error {
	tw := &textWriter{w: w}
	for i, r := range reports {
		if i > 0 {
			tw.printf(nil, "\n%s\n\n", strings.Repeat("=", 60))
		}
		writeText(tw, r)
	}
	if tw.err != nil {
		return goerr.Wrap(tw.err, "failed to write text report")
	}
	return nil
}

func writeText(tw *textWriter, r *model.Report) {
	title := "Resilience Assessment"
	if r.Name != "" {
		title += ": " + r.Name
	}
	tw.printf(headingColor, "%s\n\n", title)

	tw.printf(labelColor, "Resilience score: ")
	tw.printf(bandColor(r.Band), "%.1f / 100 (%s)\n", r.ResilienceScore, r.Band)
	tw.printf(nil, "%s\n\n", r.Band.Description())

	tw.printf(headingColor, "Top risks\n")
	if len(r.TopRisks) == 0 {
		tw.printf(mutedColor, "  no rated dependencies\n")
	}
	for i, risk := range r.TopRisks {
		tw.printf(nil, "  %d. %s (%s) ", i+1, risk.AssetName, risk.Category.DisplayName())
		tw.printf(riskColor(risk.Level), "%.2f %s", risk.RiskScore, risk.Level)
		tw.printf(nil, "\n     %s\n", risk.Reason)
	}
	tw.printf(nil, "\n")

	tw.printf(headingColor, "Categories\n")
	for _, m := range r.CategoryMetrics {
		tw.printf(nil, "  %-30s assets %-3d risk %5.2f  contingency %5.2f  resilience %5.1f\n",
			m.Category.DisplayName(), m.AssetCount, m.AvgRiskScore, m.AvgContingencyScore, m.ResilienceScore)
	}
	tw.printf(nil, "\n")

	tw.printf(headingColor, "Diversification\n")
	tw.printf(nil, "  %.1f / 10 (%s)\n", r.Diversification.Score, r.Diversification.Level)
	for _, advice := range r.Diversification.Recommendations {
		tw.printf(nil, "  - %s\n", advice)
	}
	tw.printf(nil, "\n")

	if len(r.Heatmap) > 0 {
		tw.printf(headingColor, "Dependency heatmap\n")
		tw.printf(mutedColor, "  %-30s %-10s %-14s %s\n", "Asset", "Importance", "Replaceability", "Risk")
		for _, p := range r.Heatmap {
			tw.printf(nil, "  %-30s %-10d %-14d %.2f\n", p.AssetName, p.Importance, p.Replaceability, p.RiskScore)
		}
		tw.printf(nil, "\n")
	}

	tw.printf(headingColor, "Recommendations\n")
	for _, h := range types.AllHorizons() {
		bucket := r.Recommendations.Bucket(h)
		if bucket == nil || len(*bucket) == 0 {
			continue
		}
		tw.printf(labelColor, "  %s\n", h.Label())
		for _, rec := range *bucket {
			tw.printf(nil, "  * %s\n", rec.Title)
			tw.printf(mutedColor, "    %s\n", rec.Description)
		}
	}
}
