package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/pistactl/internal/application"
	"github.com/charmbracelet/lipgloss"
)

var columns = []string{"POSITION", "NAME", "RUNNING?", "LOG_LINES"}

const (
	columnRunning = 2
	columnLogs    = 3
	cellPadding   = 2
)

type RenderOptions struct {
	// Plain prints the bare space separated table, one slot per line.
	Plain bool
}

func renderView(report application.StatusReport, _ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("pistactl"),
		s.header.Render(fmt.Sprintf("socket: %s  session: %s", report.Socket, report.Session)),
		s.header.Render(fmt.Sprintf("slots: %s", report.SlotsDir)),
		"",
	}

	if len(report.Slots) == 0 {
		lines = append(lines, s.empty.Render("No windows in session."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := rowsOf(report)
	widths := columnWidths(rows)
	lines = append(lines, renderRow(columns, widths, func(int, string) lipgloss.Style { return s.column }))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, func(col int, value string) lipgloss.Style {
			switch {
			case col == columnRunning && value == "YES":
				return s.running
			case col == columnRunning:
				return s.stopped
			case col == columnLogs && value != "0":
				return s.logs
			default:
				return s.cell
			}
		}))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(cells []string, widths []int, styleOf func(col int, value string) lipgloss.Style) string {
	rendered := make([]string, 0, len(cells))
	for col, value := range cells {
		rendered = append(rendered, styleOf(col, value).Width(widths[col]+cellPadding).Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(columns))
	for col, title := range columns {
		widths[col] = lipgloss.Width(title)
	}
	for _, row := range rows {
		for col, value := range row {
			widths[col] = max(widths[col], lipgloss.Width(value))
		}
	}
	return widths
}

func renderPlain(report application.StatusReport) string {
	lines := []string{strings.Join(columns, " ")}
	for _, row := range rowsOf(report) {
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

func rowsOf(report application.StatusReport) [][]string {
	rows := make([][]string, 0, len(report.Slots))
	for _, slot := range report.Slots {
		rows = append(rows, []string{
			strconv.Itoa(slot.Position),
			slot.Name,
			runningLabel(slot.Running),
			strconv.Itoa(slot.LogLines),
		})
	}
	return rows
}

func runningLabel(running bool) string {
	if running {
		return "YES"
	}
	return "NO"
}
