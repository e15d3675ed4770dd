package result

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	submissiondto "easeed/internal/modules/submission/dto"
	"easeed/internal/ui/theme"
)

// NoResultNotice is shown when the view is reached without an outcome.
const NoResultNotice = "No result found. Please try again."

// BackMsg asks the shell to return to the input view.
type BackMsg struct{}

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct{ Err error }

var clipboardWrite = clipboard.WriteAll

// Model presents one outcome. It holds no outcome of its own once Clear is called.
type Model struct {
	theme    *theme.Theme
	viewport viewport.Model
	output   *submissiondto.SubmitOutput
	markdown bool
	notice   string
	width    int
	height   int
}

func New(th *theme.Theme) Model {
	return Model{theme: th, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) HasOutcome() bool { return m.output != nil }

func (m Model) Markdown() bool { return m.markdown }

// SetOutcome replaces the displayed outcome and resets markdown mode and scroll.
func (m *Model) SetOutcome(out submissiondto.SubmitOutput) {
	m.output = &out
	m.markdown = false
	m.notice = ""
	m.refresh()
	m.viewport.GotoTop()
}

// Clear discards the outcome.
func (m *Model) Clear() {
	m.output = nil
	m.markdown = false
	m.notice = ""
	m.viewport.SetContent("")
}

// Refresh re-renders the content, for instance after a theme change.
func (m *Model) Refresh() { m.refresh() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.refresh()
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.notice = "copy failed: " + msg.Err.Error()
		} else {
			m.notice = "copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			m.Clear()
			return m, func() tea.Msg { return BackMsg{} }
		case "y":
			if m.output == nil {
				return m, nil
			}
			text := m.output.Text
			if !m.output.Success {
				text = m.output.Display
			}
			return m, copyCmd(text)
		case "m":
			if m.output != nil && m.output.Success {
				m.markdown = !m.markdown
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	th := m.theme
	if m.output == nil {
		return th.Error.Render(NoResultNotice) + "\n\n" + th.Muted.Render("esc/b: try another")
	}
	footer := th.Muted.Render(fmt.Sprintf("%.0f%%  esc/b: try another  y: copy  m: markdown", m.viewport.ScrollPercent()*100))
	if m.notice != "" {
		footer += "  " + th.Success.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.heading(), m.viewport.View(), footer)
}

// Heading is "{Goal} Result for {kind}" for successes and "Result" otherwise.
func Heading(out submissiondto.SubmitOutput) string {
	if !out.Success || out.Goal == "" {
		return "Result"
	}
	return strings.ToUpper(out.Goal[:1]) + out.Goal[1:] + " Result for " + out.Kind
}

// Body renders the outcome text. Lines longer than width are broken so that every
// row fits; removing the inserted line breaks gives back the original text.
// width <= 0 disables wrapping.
func Body(out submissiondto.SubmitOutput, width int) string {
	text := out.Display
	if out.Success {
		text = out.Text
	}
	return fit(text, width)
}

// fit hard-wraps s at width. The viewport scrolls by source line, so a row wider
// than the viewport would push the last lines out of reach.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := wrap.NewWriter(width)
	w.PreserveSpace = true
	_, _ = w.Write([]byte(s))
	return w.String()
}

func (m Model) heading() string {
	h := m.theme.Title.Render(Heading(*m.output))
	if m.markdown {
		h += "  " + m.theme.Muted.Render("[markdown]")
	}
	return h + "\n"
}

func (m *Model) refresh() {
	if m.output == nil {
		return
	}
	out := *m.output
	if !out.Success {
		m.viewport.SetContent(m.theme.Error.Render(Body(out, m.width)))
		return
	}
	if m.markdown {
		if rendered, err := m.renderMarkdown(out.Text); err == nil {
			m.viewport.SetContent(fit(rendered, m.width))
			return
		}
	}
	m.viewport.SetContent(Body(out, m.width))
}

func (m Model) renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.theme.GlamourStyle()),
		glamour.WithWordWrap(m.width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clipboardWrite(text)}
	}
}
