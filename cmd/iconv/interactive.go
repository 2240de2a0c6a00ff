package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/iconv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	encStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldFrom = iota
	fieldTo
	fieldText
	fieldCount
)

type interactiveModel struct {
	inputs   [fieldCount]textinput.Model
	focusIdx int
	result   string
	errMsg   string
}

func newInteractiveModel(from, to string) interactiveModel {
	var m interactiveModel

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		m.inputs[i] = ti
	}

	m.inputs[fieldFrom].Placeholder = "source encoding"
	m.inputs[fieldFrom].SetValue(from)
	m.inputs[fieldTo].Placeholder = "target encoding"
	m.inputs[fieldTo].SetValue(to)
	m.inputs[fieldText].Placeholder = "text to convert"
	m.inputs[fieldText].Width = 60

	m.inputs[fieldFrom].Focus()
	return m
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focusIdx--
			} else {
				m.focusIdx++
			}
			m.focusIdx = (m.focusIdx + fieldCount) % fieldCount

			var cmds []tea.Cmd
			for i := range m.inputs {
				if i == m.focusIdx {
					cmds = append(cmds, m.inputs[i].Focus())
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, tea.Batch(cmds...)

		case "enter":
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *interactiveModel) convert() {
	m.result = ""
	m.errMsg = ""

	from := strings.TrimSpace(m.inputs[fieldFrom].Value())
	to := strings.TrimSpace(m.inputs[fieldTo].Value())

	cd, err := iconv.New(from, to)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	defer cd.Close()

	out, err := cd.ConvertString(m.inputs[fieldText].Value())
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.result = fmt.Sprintf("%d bytes: % x", len(out), out)
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("iconv"))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("known encodings: "))
	names := make([]string, len(knownEncodings))
	for i, name := range knownEncodings {
		names[i] = canonical(name)
	}
	b.WriteString(encStyle.Render(strings.Join(names, " ")))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"from", "to  ", "text"}
	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field • enter: convert • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(from, to string) error {
	p := tea.NewProgram(newInteractiveModel(from, to))
	_, err := p.Run()
	return err
}
