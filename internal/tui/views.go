package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/render"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(render.PrimaryColor)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(render.SubtleColor)
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(render.PrimaryColor)
	footerStyle      = lipgloss.NewStyle().Foreground(render.SubtleColor)
	loadErrorStyle   = lipgloss.NewStyle().Foreground(render.ErrorColor)
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.searching {
		return m.renderSearch()
	}

	if m.loading {
		return m.renderLoading()
	}

	sections := []string{
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	}

	return strings.Join(sections, "\n\n")
}

// renderLoading renders the spinner screen shown while a snapshot loads.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		headerStyle.Render("Credit Lens"),
		"",
		m.spinner.View()+" Loading applications...",
	)

	if m.width == 0 || m.height == 0 {
		return content
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderSearch renders the search prompt.
func (m Model) renderSearch() string {
	box := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("Search Applications"),
		m.searchInput.View(),
		footerStyle.Render("Press Enter to search, Esc to cancel"),
	)

	if m.width == 0 || m.height == 0 {
		return box
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHeader renders the title row and tab bar.
func (m Model) renderHeader() string {
	title := headerStyle.Render(render.ChartIcon + " Credit Lens")

	tabs := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		style := inactiveTabStyle
		if View(i) == m.view {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}

	return title + "\n" + strings.Join(tabs, inactiveTabStyle.Render(" │ "))
}

// renderContent renders the active tab.
func (m Model) renderContent() string {
	if m.lastError != nil {
		return loadErrorStyle.Render("Load failed: " + m.lastError.Error())
	}
	if m.report == nil {
		return footerStyle.Render("No data loaded")
	}

	switch m.view {
	case ViewOverview:
		return render.Overview(m.report)
	case ViewMatrix, ViewTrend, ViewScatter:
		return m.table.View()
	default:
		return ""
	}
}

// renderFooter renders filter state and key hints.
func (m Model) renderFooter() string {
	filter := "all"
	if bucket := m.filter(); bucket != "" {
		filter = string(bucket)
	}

	status := fmt.Sprintf("Filter: %s  |  %d applications", filter, m.visible)
	if m.search != "" {
		status += fmt.Sprintf("  |  Search: %q", m.search)
	}

	hints := "[tab] views  [f] filter  [/] search  [r] reload  [q] quit"
	note := "KPIs and distributions reflect the full portfolio"

	return footerStyle.Render(status + "\n" + hints + "\n" + note)
}

// refreshTable rebuilds the table for the active tab.
func (m *Model) refreshTable() {
	if m.report == nil {
		return
	}

	switch m.view {
	case ViewMatrix:
		m.table.SetColumns(matrixColumns())
		m.table.SetRows(matrixRows(m.report.Matrix))
	case ViewTrend:
		m.table.SetColumns(trendColumns())
		m.table.SetRows(trendRows(m.report.Trend))
	case ViewScatter:
		m.table.SetColumns(scatterColumns())
		m.table.SetRows(scatterRows(m.report.Scatter))
	case ViewOverview:
		// Rendered straight from the report, no table.
	}

	m.table.SetCursor(0)
}

// newDashboardTable creates the shared tab table.
func newDashboardTable() table.Model {
	t := table.New(
		table.WithColumns(matrixColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(render.SubtleColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(render.PrimaryColor).
		Bold(true)
	t.SetStyles(s)

	return t
}

func matrixColumns() []table.Column {
	return []table.Column{
		{Title: "Risk band", Width: 12},
		{Title: "Accepted", Width: 10},
		{Title: "Review", Width: 10},
		{Title: "Rejected", Width: 10},
	}
}

func matrixRows(rows []analytics.MatrixRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			string(row.Bin),
			fmt.Sprintf("%d", row.Accepted),
			fmt.Sprintf("%d", row.Review),
			fmt.Sprintf("%d", row.Rejected),
		})
	}
	return out
}

func trendColumns() []table.Column {
	return []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Accepted", Width: 10},
		{Title: "Review", Width: 10},
		{Title: "Rejected", Width: 10},
	}
}

func trendRows(points []analytics.TrendPoint) []table.Row {
	out := make([]table.Row, 0, len(points))
	for _, point := range points {
		out = append(out, table.Row{
			point.Day,
			fmt.Sprintf("%d", point.Accepted),
			fmt.Sprintf("%d", point.Review),
			fmt.Sprintf("%d", point.Rejected),
		})
	}
	return out
}

func scatterColumns() []table.Column {
	return []table.Column{
		{Title: "Bucket", Width: 10},
		{Title: "Points", Width: 8},
		{Title: "Age span", Width: 12},
		{Title: "Risk span", Width: 16},
	}
}

func scatterRows(set analytics.ScatterSet) []table.Row {
	groups := []struct {
		name   string
		points []analytics.ScatterPoint
	}{
		{"Accepted", set.Accepted},
		{"Review", set.Review},
		{"Rejected", set.Rejected},
	}

	out := make([]table.Row, 0, len(groups))
	for _, group := range groups {
		if len(group.points) == 0 {
			out = append(out, table.Row{group.name, "0", "-", "-"})
			continue
		}

		ageLo, ageHi := span(group.points, func(p analytics.ScatterPoint) float64 { return p.Age })
		riskLo, riskHi := span(group.points, func(p analytics.ScatterPoint) float64 { return p.RiskPercent })

		out = append(out, table.Row{
			group.name,
			fmt.Sprintf("%d", len(group.points)),
			fmt.Sprintf("%.0f-%.0f", ageLo, ageHi),
			fmt.Sprintf("%.1f%%-%.1f%%", riskLo, riskHi),
		})
	}
	return out
}

// span returns the low and high of one scatter dimension.
func span(points []analytics.ScatterPoint, value func(analytics.ScatterPoint) float64) (lo, hi float64) {
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
