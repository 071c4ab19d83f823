package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

// historyModel shows all entries newest-first in a scrollable table.
type historyModel struct {
	table   table.Model
	records []record.Record
}

func newHistoryModel() historyModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Flights", Width: 9},
		{Title: "Height (ft)", Width: 12},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color("51")).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("51")).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(styles)

	return historyModel{table: t}
}

// setRecords rebuilds the rows newest-first and keeps the cursor in range.
func (h *historyModel) setRecords(records []record.Record, feetPerFlight float64) {
	sorted := record.SortByDate(records)

	rows := make([]table.Row, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		rows = append(rows, table.Row{
			record.FormatDate(r.Date),
			strconv.Itoa(r.Flights),
			strconv.FormatFloat(float64(r.Flights)*feetPerFlight, 'f', 0, 64),
		})
	}

	h.records = make([]record.Record, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		h.records = append(h.records, sorted[i])
	}

	h.table.SetRows(rows)
	if cursor := h.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		h.table.SetCursor(len(rows) - 1)
	}
}

// selected returns the record under the cursor.
func (h historyModel) selected() (record.Record, bool) {
	cursor := h.table.Cursor()
	if cursor < 0 || cursor >= len(h.records) {
		return record.Record{}, false
	}
	return h.records[cursor], true
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (m Model) renderHistory() string {
	var content string
	content += sectionStyle.Render("┃ History") + "\n\n"

	if len(m.records) == 0 {
		content += dimStyle.Render("No climbs logged yet. Switch to Data Entry to add one.") + "\n"
		return content
	}

	content += m.history.table.View() + "\n\n"
	content += dimStyle.Render("Total: ") +
		valueStyle.Render(FormatFlights(record.TotalFlights(m.records))) +
		dimStyle.Render(" across "+strconv.Itoa(len(m.records))+" days") + "\n"
	return content
}
