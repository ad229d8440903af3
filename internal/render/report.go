package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/model"
	"github.com/mero2-web/credit-system-ai/internal/source"
)

const barWidth = 24

// Overview renders the portfolio KPI box followed by the decision, gender,
// and financing distributions.
func Overview(rep *analytics.Report) string {
	if rep == nil {
		return ErrorStyle.Render("No report available")
	}

	var sections []string
	sections = append(sections, kpiBox(rep.KPIs))
	sections = append(sections, DecisionDistribution(rep.Decisions))
	sections = append(sections, CategoryDistribution("Gender", rep.Genders))
	sections = append(sections, CategoryDistribution("Financing Type", rep.FinancingTypes))

	generated := SubtleStyle.Render("Generated: " + rep.GeneratedAt.Format(time.RFC3339))
	sections = append(sections, generated)

	return strings.Join(sections, "\n\n")
}

// DecisionDistribution renders the decision breakdown with bucket colors.
func DecisionDistribution(entries []analytics.DistributionEntry) string {
	return distribution("Decisions", entries, decisionEntryStyle)
}

// CategoryDistribution renders a distribution with neutral label colors.
func CategoryDistribution(title string, entries []analytics.DistributionEntry) string {
	return distribution(title, entries, func(string) lipgloss.Style { return InfoStyle })
}

// Matrix renders the risk band by decision grid.
func Matrix(rows []analytics.MatrixRow) string {
	title := SubtitleStyle.Render("Risk × Decision:")

	binWidth := 12
	colWidth := 10

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		binWidth, "Risk band",
		colWidth, "Accepted",
		colWidth, "Review",
		colWidth, "Rejected")
	headerLine := SubtleStyle.Bold(true).Render(header)
	separator := SubtleStyle.Render(strings.Repeat("─", len(header)))

	lines := []string{headerLine, separator}
	for _, row := range rows {
		line := fmt.Sprintf("%-*s ", binWidth, string(row.Bin)) +
			AcceptedStyle.Render(fmt.Sprintf("%-*d ", colWidth, row.Accepted)) +
			ReviewStyle.Render(fmt.Sprintf("%-*d ", colWidth, row.Review)) +
			RejectedStyle.Render(fmt.Sprintf("%-*d", colWidth, row.Rejected))
		lines = append(lines, line)
	}

	return title + "\n" + strings.Join(lines, "\n")
}

// Trend renders the per-day decision counts, oldest first.
func Trend(points []analytics.TrendPoint) string {
	title := SubtitleStyle.Render("Decision Trend (14 most recent days):")
	if len(points) == 0 {
		return title + "\n" + SubtleStyle.Render("No dated applications")
	}

	dayWidth := 12
	colWidth := 10

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		dayWidth, "Day",
		colWidth, "Accepted",
		colWidth, "Review",
		colWidth, "Rejected")
	headerLine := SubtleStyle.Bold(true).Render(header)
	separator := SubtleStyle.Render(strings.Repeat("─", len(header)))

	lines := []string{headerLine, separator}
	for _, point := range points {
		line := fmt.Sprintf("%-*s ", dayWidth, point.Day) +
			AcceptedStyle.Render(fmt.Sprintf("%-*d ", colWidth, point.Accepted)) +
			ReviewStyle.Render(fmt.Sprintf("%-*d ", colWidth, point.Review)) +
			RejectedStyle.Render(fmt.Sprintf("%-*d", colWidth, point.Rejected))
		lines = append(lines, line)
	}

	return title + "\n" + strings.Join(lines, "\n")
}

// Scatter renders per-bucket sample counts with age and risk spans.
func Scatter(set analytics.ScatterSet) string {
	title := SubtitleStyle.Render("Risk vs Age Sample:")

	groups := []struct {
		name   string
		style  lipgloss.Style
		points []analytics.ScatterPoint
	}{
		{"Accepted", AcceptedStyle, set.Accepted},
		{"Review", ReviewStyle, set.Review},
		{"Rejected", RejectedStyle, set.Rejected},
	}

	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		name := group.style.Render(fmt.Sprintf("%-10s", group.name))
		if len(group.points) == 0 {
			lines = append(lines, name+SubtleStyle.Render("no points"))
			continue
		}

		ageLo, ageHi := pointSpan(group.points, func(p analytics.ScatterPoint) float64 { return p.Age })
		riskLo, riskHi := pointSpan(group.points, func(p analytics.ScatterPoint) float64 { return p.RiskPercent })

		line := fmt.Sprintf("%s%4d points   age %.0f-%.0f   risk %.1f%%-%.1f%%",
			name, len(group.points), ageLo, ageHi, riskLo, riskHi)
		lines = append(lines, line)
	}

	footer := SubtleStyle.Render(fmt.Sprintf("%d points sampled", set.Len()))

	return title + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

// Contributions renders the feature influence ranking for one application.
func Contributions(customerID string, ranking analytics.ContributionRanking) string {
	title := TitleStyle.Render("Feature Influence: " + customerID)

	if len(ranking.TopAbsolute) == 0 {
		return title + "\n\n" + SubtleStyle.Render("No model contributions recorded")
	}

	var sections []string
	sections = append(sections, title)
	sections = append(sections, contributionList("Top positive:", ranking.TopPositive))
	sections = append(sections, contributionList("Top negative:", ranking.TopNegative))
	sections = append(sections, contributionList("Strongest influence:", ranking.TopAbsolute))

	total := SubtleStyle.Render(fmt.Sprintf("Total influence: %.4f", ranking.SumAbs))
	sections = append(sections, total)

	return strings.Join(sections, "\n\n")
}

// Statistics renders the processing status panel.
func Statistics(stats *model.Statistics) string {
	if stats == nil {
		return ErrorStyle.Render("No statistics available")
	}

	var sections []string

	title := TitleStyle.Render("Processing Status")
	sections = append(sections, title)

	counts := fmt.Sprintf("Customers: %s total, %s processed",
		BoldStyle.Render(fmt.Sprintf("%d", stats.TotalCustomers)),
		BoldStyle.Render(fmt.Sprintf("%d", stats.ProcessedCustomers)))
	sections = append(sections, counts)

	decisionLines := []string{SubtitleStyle.Render("Decisions:")}
	for _, entry := range stats.DecisionSummary.Counts {
		pct := stats.DecisionSummary.Percentages[entry.Label]
		label := decisionEntryStyle(entry.Label).Render(fmt.Sprintf("%-10s", entry.Label))
		decisionLines = append(decisionLines, fmt.Sprintf("%s %6d  %s",
			label, entry.Count, SubtleStyle.Render(fmt.Sprintf("%.1f%%", pct))))
	}
	sections = append(sections, strings.Join(decisionLines, "\n"))

	riskLines := []string{
		SubtitleStyle.Render("Risk:"),
		"Average DSR:  " + InfoStyle.Render(fmt.Sprintf("%.4f", stats.RiskAnalysis.AverageDSR)),
		"High risk:    " + RejectedStyle.Render(fmt.Sprintf("%d (%.1f%%)",
			stats.RiskAnalysis.HighRiskCustomers, stats.RiskAnalysis.HighRiskPercentage)),
	}
	sections = append(sections, strings.Join(riskLines, "\n"))

	return strings.Join(sections, "\n\n")
}

// Applications renders one page of the review listing.
func Applications(page *source.Page) string {
	if page == nil || len(page.Records) == 0 {
		return SubtleStyle.Render("No applications found")
	}

	idWidth := 6
	customerWidth := 14
	nameWidth := 20
	ageWidth := 4
	dsrWidth := 7

	header := fmt.Sprintf("%-*s %-*s %-*s %*s %*s  %s",
		idWidth, "ID",
		customerWidth, "Customer",
		nameWidth, "Name",
		ageWidth, "Age",
		dsrWidth, "DSR",
		"Decision")
	headerLine := SubtleStyle.Bold(true).Render(header)
	separator := SubtleStyle.Render(strings.Repeat("─", len(header)))

	lines := []string{headerLine, separator}
	for i := range page.Records {
		rec := &page.Records[i]

		age := "-"
		if rec.Age != nil {
			age = fmt.Sprintf("%d", *rec.Age)
		}
		dsr := "-"
		if rec.DSR != nil {
			dsr = fmt.Sprintf("%.1f%%", *rec.DSR*100)
		}

		decision := rec.DecisionLabel()
		styled := "-"
		if decision != "" {
			styled = BucketStyle(analytics.ClassifyDecision(decision)).Render(decision)
		}

		line := fmt.Sprintf("%-*d %-*s %-*s %*s %*s  %s",
			idWidth, rec.ID,
			customerWidth, truncate(rec.CustomerID, customerWidth),
			nameWidth, truncate(rec.Name, nameWidth),
			ageWidth, age,
			dsrWidth, dsr,
			styled)
		lines = append(lines, line)
	}

	footer := SubtleStyle.Render(fmt.Sprintf("Page %d of %d (%d applications)",
		page.Page, page.TotalPages, page.Total))
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

// kpiBox renders the headline numbers in a bordered box.
func kpiBox(kpis analytics.KPISet) string {
	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Customers", fmt.Sprintf("%d", kpis.TotalCustomers), BoldStyle},
		{"Acceptance rate", kpis.AcceptanceRate, AcceptedStyle},
		{"Average DSR", kpis.AverageDSR, InfoStyle},
		{"High-risk share", kpis.HighRiskShare, RejectedStyle},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := SubtleStyle.Render(fmt.Sprintf("%-17s", row.label))
		lines = append(lines, label+row.style.Render(row.value))
	}

	return RenderBox("Portfolio Overview", strings.Join(lines, "\n"))
}

// distribution renders one normalized distribution as a labeled bar table.
// Entries arrive sorted by count, so the first row sets the bar scale.
func distribution(title string, entries []analytics.DistributionEntry, styleFor func(string) lipgloss.Style) string {
	heading := SubtitleStyle.Render(title + ":")
	if len(entries) == 0 {
		return heading + "\n" + SubtleStyle.Render("No data")
	}

	labelWidth := 12
	for _, entry := range entries {
		if len(entry.Label)+2 > labelWidth {
			labelWidth = len(entry.Label) + 2
		}
	}

	peak := entries[0].Count
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		label := styleFor(entry.Label).Render(fmt.Sprintf("%-*s", labelWidth, entry.Label))
		lines = append(lines, fmt.Sprintf("%s %6d  %s", label, entry.Count, countBar(entry.Count, peak)))
	}

	return heading + "\n" + strings.Join(lines, "\n")
}

// countBar draws a bar proportional to the largest count in the table.
func countBar(count, peak int) string {
	if peak <= 0 || count <= 0 {
		return SubtleStyle.Render(strings.Repeat("░", barWidth))
	}

	filled := count * barWidth / peak
	if filled < 1 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return ProgressStyle.Render(bar)
}

// decisionEntryStyle colors a decision label by its bucket.
func decisionEntryStyle(label string) lipgloss.Style {
	return BucketStyle(analytics.ClassifyDecision(label))
}

// pointSpan returns the low and high of one scatter dimension.
func pointSpan(points []analytics.ScatterPoint, value func(analytics.ScatterPoint) float64) (lo, hi float64) {
	lo, hi = value(points[0]), value(points[0])
	for _, p := range points[1:] {
		v := value(p)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// contributionList renders ranked contributions with signed weights.
func contributionList(title string, entries []analytics.RankedContribution) string {
	heading := SubtitleStyle.Render(title)
	if len(entries) == 0 {
		return heading + "\n" + SubtleStyle.Render("None")
	}

	featureWidth := 12
	for _, entry := range entries {
		if len(entry.Feature)+2 > featureWidth {
			featureWidth = len(entry.Feature) + 2
		}
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		weight := weightStyle(entry.Weight).Render(fmt.Sprintf("%+.4f", entry.Weight))
		percent := SubtleStyle.Render(fmt.Sprintf("%5.1f%%", entry.PercentOfInfluence))
		lines = append(lines, fmt.Sprintf("%-*s %s  %s", featureWidth, entry.Feature, weight, percent))
	}

	return heading + "\n" + strings.Join(lines, "\n")
}

// weightStyle colors a contribution by its direction.
func weightStyle(weight float64) lipgloss.Style {
	if weight < 0 {
		return ErrorStyle
	}
	return SuccessStyle
}

// truncate shortens s to width with a trailing ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
