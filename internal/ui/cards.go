package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 24

// Card renders a metric card: a muted label over a highlighted value, with
// an optional detail line.
func Card(label, value, detail string) string {
	lines := []string{CardLabel.Render(label), CardValue.Render(value)}
	if detail != "" {
		lines = append(lines, MutedStyle.Render(detail))
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// SkeletonCard renders a placeholder card for a metric that is still loading.
func SkeletonCard(label string) string {
	return Card(label, MutedStyle.Render(strings.Repeat("░", 8)), "")
}

// CardGrid lays cards out in rows that fit width.
func CardGrid(width int, cards ...string) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := width / (cardWidth + 4)
	if perRow < 1 {
		perRow = 1
	}

	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Badge renders a short status label colored by its meaning.
func Badge(status string) string {
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch strings.ToLower(status) {
	case "operational", "active", "online":
		style = style.Foreground(Success)
	case "maintenance", "curtailed", "degraded":
		style = style.Foreground(Warning)
	case "offline", "decommissioned", "fault":
		style = style.Foreground(Error)
	default:
		style = style.Foreground(Muted)
	}
	return style.Render(status)
}

// Table renders rows under a header, padding every column to its widest cell.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = TableHeader.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = TableCell.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.String()
}
