package tui

import (
	"context"
	"strconv"
	"strings"

	peoplerender "github.com/bnema/people-cli/internal/adapters/render/people"
	"github.com/bnema/people-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type field int

const (
	fieldName field = iota
	fieldAge
)

const helpText = "tab: switch field • enter: add person • ctrl+r: refresh • esc: quit"

// eventMsg carries a finished controller command back onto the bubbletea loop.
type eventMsg struct {
	event application.Event
}

type Model struct {
	ctx        context.Context
	controller *application.Controller
	logger     *zap.Logger
	styles     styles

	name    textinput.Model
	age     textinput.Model
	focus   field
	spinner spinner.Model
	pending int
}

func New(ctx context.Context, controller *application.Controller, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := newStyles()

	name := textinput.New()
	name.Placeholder = "name"
	name.Prompt = "│ "
	name.CharLimit = 256
	name.Width = 40
	name.Focus()

	age := textinput.New()
	age.Placeholder = "age"
	age.Prompt = "│ "
	age.CharLimit = 32
	age.Width = 12

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.spinner),
	)

	return Model{
		ctx:        ctx,
		controller: controller,
		logger:     logger,
		styles:     s,
		name:       name,
		age:        age,
		spinner:    sp,
		pending:    1, // the list request issued by Init
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.run(m.controller.Initialize()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m.dispatch(m.controller.Apply(msg.event))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyShiftTab:
			return m.toggleFocus(), nil

		case tea.KeyCtrlR:
			return m.dispatch(m.controller.ListAll())

		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.age, cmd = m.age.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	list := peoplerender.View(m.controller.People(), peoplerender.RenderOptions{
		RefreshedAt: m.controller.RefreshedAt(),
	})

	nameLabel, ageLabel := m.styles.label, m.styles.label
	if m.focus == fieldName {
		nameLabel = m.styles.focused
	} else {
		ageLabel = m.styles.focused
	}

	form := m.styles.form.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		nameLabel.Render("Name")+m.name.View(),
		ageLabel.Render("Age")+m.age.View(),
	))

	status := ""
	if m.pending > 0 {
		status = m.spinner.View() + " Talking to the people API..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, list, form, status, m.styles.help.Render(helpText))
}

// Pending reports how many controller commands are in flight.
func (m Model) Pending() int {
	return m.pending
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	name := m.name.Value()
	age := m.parseAge(m.age.Value())

	m.name.Reset()
	m.age.Reset()
	if m.focus != fieldName {
		m = m.toggleFocus()
	}

	return m.dispatch(m.controller.AddPerson(name, age))
}

// parseAge sends anything that is not a number as 0; input is not validated.
func (m Model) parseAge(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}

	age, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		m.logger.Debug("age is not numeric, sending 0", zap.String("age", raw))
		return 0
	}

	return age
}

func (m Model) toggleFocus() Model {
	if m.focus == fieldName {
		m.focus = fieldAge
		m.name.Blur()
		m.age.Focus()
		return m
	}

	m.focus = fieldName
	m.age.Blur()
	m.name.Focus()
	return m
}

func (m Model) dispatch(cmd application.Command) (Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}

	m.pending++
	return m, m.run(cmd)
}

func (m Model) run(cmd application.Command) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return eventMsg{event: cmd(ctx)}
	}
}

// Run hosts the controller in an interactive bubbletea program until the
// operator quits.
func Run(ctx context.Context, controller *application.Controller, logger *zap.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, controller, logger), opts...).Run()
	return err
}
