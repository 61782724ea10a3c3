package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
)

type appState int

const (
	stateMenu appState = iota
	stateInput
	stateLoading
	stateResult
	stateError
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	resultStyle = lipgloss.NewStyle().Padding(1, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Faint(true).Padding(1, 2)
)

// Loader supplies the current corpus snapshot on demand, so every query
// reflects the on-disk files at the moment it runs.
type Loader func() ([]model.SessionRecord, error)

// Options carries the opening window and slot size the queries use.
type Options struct {
	Window      model.Interval
	SlotMinutes int
}

type queryItem struct {
	title  string
	desc   string
	inputs []string
	run    func(records []model.SessionRecord, answers []string, opts Options) (string, error)
}

func (i queryItem) Title() string       { return i.title }
func (i queryItem) Description() string { return i.desc }
func (i queryItem) FilterValue() string { return i.title }

type resultMsg struct {
	text string
	err  error
}

type appModel struct {
	loader Loader
	opts   Options

	state appState
	err   error

	menu    list.Model
	current queryItem
	input   textinput.Model
	spin    spinner.Model
	step    int
	answers []string
	result  string

	width  int
	height int
}

// New builds the interactive query menu.
func New(loader Loader, opts Options) tea.Model {
	if opts.Window == (model.Interval{}) {
		opts.Window = engine.DefaultWindow
	}
	if opts.SlotMinutes <= 0 {
		opts.SlotMinutes = engine.DefaultSlotMinutes
	}

	items := make([]list.Item, 0, len(queries))
	for _, q := range queries {
		items = append(items, q)
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "edt.cru timetable queries"
	menu.SetShowStatusBar(false)

	input := textinput.New()
	input.CharLimit = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		loader: loader,
		opts:   opts,
		menu:   menu,
		input:  input,
		spin:   sp,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.text
		m.state = stateResult
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateInput:
			return m.updateInput(msg)
		case stateLoading:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case stateResult, stateError:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			default:
				m.state = stateMenu
				return m, nil
			}
		}
	}
	return m, nil
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		item, ok := m.menu.SelectedItem().(queryItem)
		if !ok {
			return m, nil
		}
		m.current = item
		m.answers = nil
		m.step = 0
		if len(item.inputs) == 0 {
			m.state = stateLoading
			return m, tea.Batch(m.spin.Tick, m.runQuery())
		}
		m.state = stateInput
		m.input.SetValue("")
		m.input.Placeholder = item.inputs[0]
		m.input.Focus()
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.answers = append(m.answers, value)
		m.step++
		if m.step < len(m.current.inputs) {
			m.input.SetValue("")
			m.input.Placeholder = m.current.inputs[m.step]
			return m, nil
		}
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.runQuery())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) runQuery() tea.Cmd {
	current, answers, opts := m.current, m.answers, m.opts
	loader := m.loader
	return func() tea.Msg {
		records, err := loader()
		if err != nil {
			return resultMsg{err: err}
		}
		text, err := current.run(records, answers, opts)
		return resultMsg{text: text, err: err}
	}
}

func (m appModel) View() string {
	switch m.state {
	case stateInput:
		prompt := fmt.Sprintf("%s: %s (%d/%d)", m.current.title, m.current.inputs[m.step], m.step+1, len(m.current.inputs))
		return titleStyle.Render(prompt) + "\n\n" + m.input.View() +
			helpStyle.Render("enter to confirm, esc to go back")
	case stateLoading:
		return titleStyle.Render(m.current.title) + "\n\n" + m.spin.View() + "Running query..."
	case stateResult:
		return titleStyle.Render(m.current.title) + "\n" + resultStyle.Render(m.result) +
			helpStyle.Render("any key for menu, q to quit")
	case stateError:
		return errorStyle.Render("Error: "+m.err.Error()) +
			helpStyle.Render("any key for menu, q to quit")
	default:
		return m.menu.View()
	}
}

func parseDateRange(answers []string) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, answers[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.DateOnly, answers[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
