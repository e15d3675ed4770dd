package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"easeed/internal/modules/submission/domain"
	submissiondto "easeed/internal/modules/submission/dto"
	"easeed/internal/ui/components"
	"easeed/internal/ui/theme"
	inputview "easeed/internal/ui/views/input"
	resultview "easeed/internal/ui/views/result"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type submissionPort interface {
	Submit(ctx context.Context, input submissiondto.SubmitInput) (submissiondto.SubmitOutput, error)
	InspectFile(ctx context.Context, path string) (submissiondto.FileInfoOutput, error)
}

// ─── routes ──────────────────────────────────────────────────────────────────

type route int

const (
	routeInput route = iota
	routeResult
)

var routeLabels = map[route]string{
	routeInput:  "Input",
	routeResult: "Result",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Focus    key.Binding
	Change   key.Binding
	Submit   key.Binding
	Browse   key.Binding
	Back     key.Binding
	Copy     key.Binding
	Markdown key.Binding
	Theme    key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Change:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change kind/goal")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Browse:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "browse files")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "try another")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy result")),
		Markdown: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "markdown")),
		Theme:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Palette:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Theme, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Change, k.Submit, k.Browse},
		{k.Back, k.Copy, k.Markdown},
		{k.Theme, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns routing between the input and
// result views, the shared theme, the help overlay and the command palette.
type Model struct {
	backendURL string
	theme      *theme.Theme

	inputView  inputview.Model
	resultView resultview.Model

	route    route
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(backendURL string, th *theme.Theme, submission submissionPort) Model {
	return Model{
		backendURL: backendURL,
		theme:      th,
		inputView:  inputview.New(submission, th),
		resultView: resultview.New(th),
		route:      routeInput,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(th),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.inputView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case inputview.SubmittedMsg:
		var cmd tea.Cmd
		m.inputView, cmd = m.inputView.Update(msg)
		switch {
		case msg.Err != nil:
			m.status = "submit: " + msg.Err.Error()
		case msg.Output.Validation():
			m.status = "check the form"
		default:
			m.resultView.SetOutcome(msg.Output)
			m.route = routeResult
			m.status = submittedStatus(msg.Output)
		}
		return m, cmd

	case resultview.BackMsg:
		m.route = routeInput
		m.status = "ready"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "f1" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		case "ctrl+k":
			return m, m.palette.Open()
		case "f1":
			m.showHelp = true
			return m, nil
		case "q":
			if m.route == routeResult {
				return m, tea.Quit
			}
		}
		return m.updateActive(msg)
	}

	// Non-key messages (spinner ticks, file picker reads, inspections, clipboard
	// results) go to both views; each ignores what it does not own.
	var inCmd, resCmd tea.Cmd
	m.inputView, inCmd = m.inputView.Update(msg)
	m.resultView, resCmd = m.resultView.Update(msg)
	return m, tea.Batch(inCmd, resCmd)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.route {
	case routeResult:
		m.resultView, cmd = m.resultView.Update(msg)
	default:
		m.inputView, cmd = m.inputView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.route == routeResult:
		content = m.resultView.View()
	default:
		content = m.inputView.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	th := m.theme
	parts := make([]string, 0, len(routeLabels))
	for _, r := range []route{routeInput, routeResult} {
		if r == m.route {
			parts = append(parts, th.Hot.Render(" "+routeLabels[r]+" "))
		} else {
			parts = append(parts, th.Muted.Render(" "+routeLabels[r]+" "))
		}
	}
	bar := "easeed  " + strings.Join(parts, th.Muted.Render(" │ "))
	return th.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	th := m.theme
	left := m.status
	if m.inputView.Pending() {
		left = th.Hot.Render("● submitting") + "  " + left
	}
	right := th.Muted.Render(fmt.Sprintf("%s  %s  f1:help  ctrl+k:palette  ctrl+c:quit", m.backendURL, th.Mode))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + th.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return m, nil
	}
	name, arg, _ := strings.Cut(input, ":")

	switch name {
	case "kind":
		if m.inputView.Pending() {
			m.status = "wait for the submission to finish"
			return m, nil
		}
		k, err := domain.ParseKind(arg)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.route = routeInput
		m.resultView.Clear()
		m.status = "kind: " + k.Label()
		return m, m.inputView.SetKind(k)

	case "goal":
		g, err := domain.ParseGoal(arg)
		if err != nil || !g.IsSet() {
			m.status = "usage: goal:<learn|quiz|notes>"
			return m, nil
		}
		m.inputView.SetGoal(g)
		m.status = "goal: " + g.Label()
		return m, nil

	case "theme":
		if arg != "toggle" {
			m.status = "usage: theme:toggle"
			return m, nil
		}
		m.toggleTheme()
		return m, nil

	case "submit":
		if m.route != routeInput {
			m.status = "go back to submit again"
			return m, nil
		}
		return m, m.inputView.Submit()

	case "back":
		if m.route == routeResult {
			m.resultView.Clear()
			m.route = routeInput
		}
		m.status = "ready"
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.status = "unknown command: " + input
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.inputView.ApplyTheme()
	m.resultView.Refresh()
	m.status = "theme: " + string(m.theme.Mode)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.inputView, _ = m.inputView.Update(sz)
	m.resultView, _ = m.resultView.Update(sz)
}

func submittedStatus(out submissiondto.SubmitOutput) string {
	if out.Success {
		return fmt.Sprintf("%s done in %s", out.Endpoint, out.Elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("%s failed (%s)", out.Endpoint, out.Class)
}
