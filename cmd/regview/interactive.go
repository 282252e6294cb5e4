package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/regbits/regbits/bitfield"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err        error
	layoutName string
	entry      layoutEntry
	input      textinput.Model
	value      uint64
	selected   int
}

func newInteractiveModel(layoutName string, entry layoutEntry) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "0x0"
	ti.Prompt = "value: "
	ti.Width = 24
	ti.Focus()

	return &interactiveModel{
		layoutName: layoutName,
		entry:      entry,
		input:      ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < m.entry.c.FieldCount()-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if s := strings.TrimSpace(m.input.Value()); s == "" {
		m.value = 0
		m.err = nil
	} else if v, err := parseValue(s); err != nil {
		m.err = err
	} else {
		m.value = v
		m.err = nil
	}

	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("regview"))
	b.WriteString(" ")
	b.WriteString(m.layoutName)
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	if m.err != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n\n")

	for i := 0; i < m.entry.c.FieldCount(); i++ {
		line := m.formatField(bitfield.ID(i))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.formatDetail(bitfield.ID(m.selected)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ select field • type to edit value • esc quit"))

	return b.String()
}

func (m *interactiveModel) formatField(id bitfield.ID) string {
	f := m.entry.c.Field(id)
	fv := (m.value & m.entry.c.Mask(id)) >> f.LSB

	span := fmt.Sprintf("[%2d:%2d]", f.MSB, f.LSB)
	if f.LSB == f.MSB {
		span = fmt.Sprintf("[%5d]", f.LSB)
	}

	return fmt.Sprintf("%s %-10s %s",
		rangeStyle.Render(span),
		fieldStyle.Render(m.entry.names[id]),
		valueStyle.Render(fmt.Sprintf("%#x", fv)))
}

func (m *interactiveModel) formatDetail(id bitfield.ID) string {
	f := m.entry.c.Field(id)

	detail := fmt.Sprintf("%s: mask %#x, word %d, %s",
		m.entry.names[id], m.entry.c.Mask(id), f.Word, f.Access)
	if f.Constrained() {
		detail += fmt.Sprintf(", valid %d-%d", f.Min, f.Max)
	}
	if f.Default != 0 {
		detail += fmt.Sprintf(", reset %#x", f.Default)
	}
	return helpStyle.Render(detail)
}

func runInteractive(layoutName string, entry layoutEntry) error {
	p := tea.NewProgram(newInteractiveModel(layoutName, entry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
