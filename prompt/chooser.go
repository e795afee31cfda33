package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/saylorsolutions/argroute/route"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Choose lets the user narrow the chooser's options by typing, and pick one.
// In accessible mode the search term and the choice are asked as two separate lines.
func (t *Terminal) Choose(ctx context.Context, chooser route.Chooser) (string, bool, error) {
	if len(chooser.Choices) == 0 {
		return "", false, nil
	}
	if t.accessible {
		return t.chooseAccessible(ctx, chooser)
	}
	p := tea.NewProgram(newChooserModel(chooser),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return "", false, nil
		}
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", false, err
	}
	m := final.(chooserModel)
	return m.result()
}

func (t *Terminal) chooseAccessible(ctx context.Context, chooser route.Chooser) (string, bool, error) {
	var term string
	if err := t.form(huh.NewInput().Title(chooser.Message).Description("Type to filter, or leave empty to list all").Value(&term)).RunWithContext(ctx); err != nil {
		return "", false, ignoreAbort(err)
	}
	visible := suggest(chooser, strings.TrimSpace(term))
	if len(visible) == 0 {
		return "", false, nil
	}
	var chosen string
	options := make([]huh.Option[string], len(visible))
	for i, opt := range visible {
		options[i] = huh.NewOption(opt.Label, opt.Value)
	}
	sel := huh.NewSelect[string]().Title(chooser.Message).Options(options...).Value(&chosen)
	if err := t.form(sel).RunWithContext(ctx); err != nil {
		return "", false, ignoreAbort(err)
	}
	return chosen, len(chosen) > 0, nil
}

func suggest(chooser route.Chooser, term string) []route.Option {
	if chooser.Suggest == nil {
		return chooser.Choices
	}
	return chooser.Suggest(term, chooser.Choices)
}

// chooserModel is a filter input above the list of options that survive the chooser's suggest function.
type chooserModel struct {
	chooser   route.Chooser
	input     textinput.Model
	visible   []route.Option
	cursor    int
	chosen    string
	done      bool
	cancelled bool
}

func newChooserModel(chooser route.Chooser) chooserModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type to filter..."
	input.Focus()
	return chooserModel{
		chooser: chooser,
		input:   input,
		visible: suggest(chooser, ""),
	}
}

func (m chooserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.visible) == 0 {
				return m, nil
			}
			m.chosen = m.visible[m.cursor].Value
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var (
		cmd  tea.Cmd
		term = m.input.Value()
	)
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != term {
		m.visible = suggest(m.chooser, m.input.Value())
		m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
	}
	return m, cmd
}

func (m chooserModel) View() string {
	if m.done {
		return ""
	}
	var buf strings.Builder
	buf.WriteString(titleStyle.Render(m.chooser.Message))
	buf.WriteString("\n")
	buf.WriteString(m.input.View())
	buf.WriteString("\n")
	if len(m.visible) == 0 {
		buf.WriteString(helpStyle.Render("  No matches"))
		buf.WriteString("\n")
	}
	for i, opt := range m.visible {
		if i == m.cursor {
			buf.WriteString(selectedStyle.Render("› " + opt.Label))
		} else {
			buf.WriteString("  " + opt.Label)
		}
		buf.WriteString("\n")
	}
	buf.WriteString(helpStyle.Render("↑/↓ move • enter choose • esc cancel"))
	buf.WriteString("\n")
	return buf.String()
}

func (m chooserModel) result() (string, bool, error) {
	if m.cancelled || len(m.chosen) == 0 {
		return "", false, nil
	}
	return m.chosen, true, nil
}
