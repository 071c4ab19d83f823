package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

const (
	fieldDate = iota
	fieldFlights
	fieldCount
)

// entryModel is the add/edit form: a date input and a flights input.
// While editing an existing row the date field is locked.
type entryModel struct {
	date    textinput.Model
	flights textinput.Model
	focus   int
	editing bool
}

func newEntryModel() entryModel {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 14
	date.Prompt = "> "

	flights := textinput.New()
	flights.Placeholder = "0"
	flights.CharLimit = 5
	flights.Width = 8
	flights.Prompt = "> "

	return entryModel{date: date, flights: flights}
}

// reset clears the form back to add mode with the date prefilled.
func (e *entryModel) reset(today time.Time) {
	e.date.SetValue(record.FormatDate(today))
	e.flights.SetValue("")
	e.editing = false
	e.focus = fieldDate
	e.applyFocus()
}

// startEditing loads an existing record into the form. The date is fixed;
// only the flight count can change.
func (e *entryModel) startEditing(r record.Record) {
	e.date.SetValue(record.FormatDate(r.Date))
	e.flights.SetValue(strconv.Itoa(r.Flights))
	e.editing = true
	e.focus = fieldFlights
	e.applyFocus()
}

func (e *entryModel) cycleFocus(delta int) {
	if e.editing {
		// Only the flights field is editable.
		return
	}
	e.focus = (e.focus + delta + fieldCount) % fieldCount
	e.applyFocus()
}

func (e *entryModel) applyFocus() {
	e.date.Blur()
	e.flights.Blur()
	if e.focus == fieldDate && !e.editing {
		e.date.Focus()
	} else {
		e.flights.Focus()
	}
}

func (e entryModel) updateInputs(msg tea.Msg) (entryModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if !e.editing {
		e.date, cmd = e.date.Update(msg)
		cmds = append(cmds, cmd)
	}
	e.flights, cmd = e.flights.Update(msg)
	cmds = append(cmds, cmd)
	return e, tea.Batch(cmds...)
}

// values parses and validates the form. Errors here are presentation
// feedback; the store enforces its own invariants again on save.
func (e entryModel) values() (time.Time, int, error) {
	date, err := record.ParseDate(strings.TrimSpace(e.date.Value()))
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid date: use YYYY-MM-DD")
	}

	raw := strings.TrimSpace(e.flights.Value())
	if raw == "" {
		return time.Time{}, 0, fmt.Errorf("enter a flight count")
	}
	flights, err := strconv.Atoi(raw)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("flights must be a whole number")
	}
	if flights < 0 {
		return time.Time{}, 0, fmt.Errorf("flights cannot be negative")
	}
	return date, flights, nil
}

func (m Model) renderEntry() string {
	var content string

	if m.entry.editing {
		content += sectionStyle.Render("┃ Edit Entry") + "\n\n"
		content += dimStyle.Render("The date is fixed; change the flight count.") + "\n\n"
	} else {
		content += sectionStyle.Render("┃ Log a Climb") + "\n\n"
	}

	content += labelStyle.Render("Date") + "\n"
	content += m.entry.date.View() + "\n\n"
	content += labelStyle.Render("Flights climbed") + "\n"
	content += m.entry.flights.View() + "\n"

	return content
}
