package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"easeed/internal/modules/submission/domain"
	submissiondto "easeed/internal/modules/submission/dto"
	"easeed/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the submission use-case.
type Port interface {
	Submit(ctx context.Context, input submissiondto.SubmitInput) (submissiondto.SubmitOutput, error)
	InspectFile(ctx context.Context, path string) (submissiondto.FileInfoOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SubmittedMsg is sent when a submission finishes. Err is set only when the
// submission could not be attempted at all.
type SubmittedMsg struct {
	Output submissiondto.SubmitOutput
	Err    error
}

// FileInspectedMsg carries advisory metadata for Path.
type FileInspectedMsg struct {
	Path string
	Info submissiondto.FileInfoOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type field int

const (
	fieldKind field = iota
	fieldPayload
	fieldGoal
	fieldCount
)

// Model collects kind, payload and goal. It owns the pending flag so a second
// submit is ignored until the first one reports back.
type Model struct {
	port  Port
	theme *theme.Theme

	kind  domain.Kind
	goal  domain.Goal
	focus field

	text    textarea.Model
	url     textinput.Model
	path    textinput.Model
	picker  filepicker.Model
	picking bool

	spinner spinner.Model
	pending bool

	errMsg   string
	fileInfo *submissiondto.FileInfoOutput
	fileErr  string
	width    int
	height   int
}

func New(port Port, th *theme.Theme) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste text or type a topic…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(6)

	url := textinput.New()
	url.Placeholder = "https://www.youtube.com/watch?v=…"

	path := textinput.New()
	path.Placeholder = "/path/to/file"

	fp := filepicker.New()
	fp.AutoHeight = false
	fp.Height = 10

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		port:    port,
		theme:   th,
		kind:    domain.KindText,
		focus:   fieldKind,
		text:    ta,
		url:     url,
		path:    path,
		picker:  fp,
		spinner: sp,
	}
	m.ApplyTheme()
	return m
}

// Init is a no-op: the view waits for input.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Kind() domain.Kind { return m.kind }

func (m Model) Goal() domain.Goal { return m.goal }

func (m Model) Pending() bool { return m.pending }

// Picking reports whether the file picker is open and owns the keyboard.
func (m Model) Picking() bool { return m.picking }

// ErrorMessage is the inline validation message, empty when there is none.
func (m Model) ErrorMessage() string { return m.errMsg }

func (m Model) FileInfo() (submissiondto.FileInfoOutput, bool) {
	if m.fileInfo == nil {
		return submissiondto.FileInfoOutput{}, false
	}
	return *m.fileInfo, true
}

// SetKind switches the input kind. Any payload typed or selected for the previous
// kind is discarded along with the inline error.
func (m *Model) SetKind(k domain.Kind) tea.Cmd {
	if k == m.kind {
		return nil
	}
	m.kind = k
	m.text.Reset()
	m.url.Reset()
	m.path.Reset()
	m.fileInfo = nil
	m.fileErr = ""
	m.errMsg = ""
	m.picking = false
	return m.refocus()
}

func (m *Model) SetGoal(g domain.Goal) { m.goal = g }

// Submit starts a submission unless one is already pending.
func (m *Model) Submit() tea.Cmd {
	if m.pending {
		return nil
	}
	m.errMsg = ""
	m.pending = true
	return tea.Batch(m.submitCmd(m.snapshot()), m.spinner.Tick)
}

// ApplyTheme restyles the embedded bubbles after the shared theme changed.
func (m *Model) ApplyTheme() {
	th := m.theme
	c := th.Colors

	focused, blurred := textarea.DefaultStyles()
	focused.Base = lipgloss.NewStyle()
	focused.Text = lipgloss.NewStyle().Foreground(c.Text)
	focused.CursorLine = lipgloss.NewStyle().Background(c.Surface0).Foreground(c.Text)
	focused.Placeholder = th.Muted
	focused.Prompt = lipgloss.NewStyle().Foreground(c.Lavender)
	blurred.Base = lipgloss.NewStyle()
	blurred.Text = th.Muted
	blurred.Placeholder = th.Muted
	blurred.Prompt = th.Muted
	m.text.FocusedStyle = focused
	m.text.BlurredStyle = blurred

	for _, ti := range []*textinput.Model{&m.url, &m.path} {
		ti.PromptStyle = lipgloss.NewStyle().Foreground(c.Lavender)
		ti.TextStyle = lipgloss.NewStyle().Foreground(c.Text)
		ti.PlaceholderStyle = th.Muted
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(c.Peach)
	}

	m.picker.Styles.Cursor = lipgloss.NewStyle().Foreground(c.Peach)
	m.picker.Styles.Directory = lipgloss.NewStyle().Foreground(c.Sapphire)
	m.picker.Styles.File = lipgloss.NewStyle().Foreground(c.Text)
	m.picker.Styles.DisabledFile = th.Muted
	m.picker.Styles.Selected = lipgloss.NewStyle().Foreground(c.Lavender).Bold(true)
	m.picker.Styles.FileSize = th.Muted.Width(7).Align(lipgloss.Right)
	m.picker.Styles.Permission = th.Muted

	m.spinner.Style = lipgloss.NewStyle().Foreground(c.Lavender)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case SubmittedMsg:
		m.pending = false
		switch {
		case msg.Err != nil:
			m.errMsg = msg.Err.Error()
		case msg.Output.Validation():
			m.errMsg = msg.Output.Message
		}
		return m, nil

	case FileInspectedMsg:
		if msg.Path != strings.TrimSpace(m.path.Value()) {
			return m, nil
		}
		if msg.Err != nil {
			m.fileInfo = nil
			m.fileErr = msg.Err.Error()
			return m, nil
		}
		info := msg.Info
		m.fileInfo = &info
		m.fileErr = ""
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if m.pending {
		return m, nil
	}

	switch key.String() {
	case "ctrl+s":
		return m, m.Submit()
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "ctrl+o":
		if m.kind.IsFile() {
			return m, m.openPicker()
		}
	case "left", "right":
		step := 1
		if key.String() == "left" {
			step = -1
		}
		switch m.focus {
		case fieldKind:
			next := m.kind.Next()
			if step < 0 {
				next = m.kind.Prev()
			}
			return m, m.SetKind(next)
		case fieldGoal:
			if step < 0 {
				m.goal = m.goal.Prev()
			} else {
				m.goal = m.goal.Next()
			}
			return m, nil
		}
	case "enter":
		if m.focus != fieldPayload || m.kind != domain.KindText {
			return m, m.Submit()
		}
	}
	return m.forward(msg)
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "esc" || key.String() == "ctrl+o") {
		m.picking = false
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.path.SetValue(path)
		m.path.CursorEnd()
		m.errMsg = ""
		return m, tea.Batch(cmd, m.inspectCmd(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.fileErr = fmt.Sprintf("%s is not a suggested type; type the path to use it anyway", filepath.Base(path))
	}
	return m, cmd
}

// forward routes msg to the focused payload component.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus != fieldPayload {
		return m, nil
	}
	var cmd tea.Cmd
	switch {
	case m.kind == domain.KindText:
		m.text, cmd = m.text.Update(msg)
	case m.kind == domain.KindYouTube:
		m.url, cmd = m.url.Update(msg)
	default:
		before := m.path.Value()
		m.path, cmd = m.path.Update(msg)
		if m.path.Value() != before {
			m.fileInfo = nil
			m.fileErr = ""
		}
	}
	return m, cmd
}

func (m *Model) moveFocus(step int) tea.Cmd {
	leaving := m.focus
	m.focus = field((int(m.focus) + step + int(fieldCount)) % int(fieldCount))
	cmd := m.refocus()
	if leaving == fieldPayload && m.kind.IsFile() {
		if path := strings.TrimSpace(m.path.Value()); path != "" && m.fileInfo == nil {
			return tea.Batch(cmd, m.inspectCmd(path))
		}
	}
	return cmd
}

func (m *Model) refocus() tea.Cmd {
	m.text.Blur()
	m.url.Blur()
	m.path.Blur()
	if m.focus != fieldPayload {
		return nil
	}
	switch {
	case m.kind == domain.KindText:
		return m.text.Focus()
	case m.kind == domain.KindYouTube:
		return m.url.Focus()
	default:
		return m.path.Focus()
	}
}

func (m *Model) openPicker() tea.Cmd {
	dir := filepath.Dir(strings.TrimSpace(m.path.Value()))
	if st, err := os.Stat(dir); err != nil || !st.IsDir() || m.path.Value() == "" {
		dir, _ = os.Getwd()
	}
	m.picker.CurrentDirectory = dir
	m.picker.AllowedTypes = m.kind.PickerHint()
	m.picking = true
	return m.picker.Init()
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.text.SetWidth(w)
	m.url.Width = w - 4
	m.path.Width = w - 4
	h := m.height - 14
	if h < 3 {
		h = 3
	}
	m.picker.Height = h
}

func (m Model) snapshot() submissiondto.SubmitInput {
	in := submissiondto.SubmitInput{Kind: string(m.kind), Goal: string(m.goal)}
	switch m.kind {
	case domain.KindText:
		in.Text = m.text.Value()
	case domain.KindYouTube:
		in.URL = m.url.Value()
	default:
		in.FilePath = strings.TrimSpace(m.path.Value())
	}
	return in
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(th.Title.Render("Learning material") + "\n\n")
	b.WriteString(m.renderSelector("Kind", m.focus == fieldKind, kindLabels(), m.kind.Label()) + "\n\n")

	pane := th.Pane
	if m.focus == fieldPayload {
		pane = th.PaneActive
	}
	if m.width > 4 {
		pane = pane.Width(m.width - 2)
	}
	b.WriteString(pane.Render(m.renderPayload()) + "\n\n")

	b.WriteString(m.renderSelector("Goal", m.focus == fieldGoal, goalLabels(), m.goal.Label()))
	if !m.goal.IsSet() {
		b.WriteString("  " + th.Muted.Render("choose with ←/→"))
	}
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(th.Error.Render(m.errMsg) + "\n")
	}
	if m.pending {
		b.WriteString(m.spinner.View() + " Submitting…")
	} else {
		b.WriteString(th.Muted.Render("tab: focus  ←/→: change  ctrl+s: submit"))
	}
	return b.String()
}

func (m Model) renderSelector(label string, focused bool, options []string, current string) string {
	th := m.theme
	marker := "  "
	labelStyle := th.Muted
	if focused {
		marker = th.Hot.Render("▸ ")
		labelStyle = th.Hot
	}
	parts := make([]string, len(options))
	for i, opt := range options {
		if opt == current {
			parts[i] = th.Selected.Render(" " + opt + " ")
		} else {
			parts[i] = th.Muted.Render(" " + opt + " ")
		}
	}
	return marker + labelStyle.Render(label+":") + " " + strings.Join(parts, " ")
}

func (m Model) renderPayload() string {
	th := m.theme
	switch m.kind {
	case domain.KindText:
		return m.text.View()
	case domain.KindYouTube:
		return m.url.View()
	}
	if m.picking {
		return th.Muted.Render(m.picker.CurrentDirectory) + "\n" + m.picker.View() + "\n" +
			th.Muted.Render("enter: select  esc: close")
	}
	lines := []string{m.path.View()}
	if m.fileInfo != nil {
		info := fmt.Sprintf("%s  %s  %s", m.fileInfo.Name, m.fileInfo.SizeLabel, m.fileInfo.MIME)
		if m.fileInfo.Pages > 0 {
			info += fmt.Sprintf("  %d pages", m.fileInfo.Pages)
		}
		lines = append(lines, th.Success.Render(info))
		if m.fileInfo.Warning != "" {
			lines = append(lines, th.Hot.Render(m.fileInfo.Warning))
		}
	}
	if m.fileErr != "" {
		lines = append(lines, th.Muted.Render(m.fileErr))
	}
	lines = append(lines, th.Muted.Render("ctrl+o: browse ("+strings.Join(m.kind.PickerHint(), " ")+")"))
	return strings.Join(lines, "\n")
}

func kindLabels() []string {
	out := make([]string, len(domain.Kinds))
	for i, k := range domain.Kinds {
		out[i] = k.Label()
	}
	return out
}

func goalLabels() []string {
	out := make([]string, len(domain.Goals))
	for i, g := range domain.Goals {
		out[i] = g.Label()
	}
	return out
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) submitCmd(input submissiondto.SubmitInput) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Submit(context.Background(), input)
		return SubmittedMsg{Output: out, Err: err}
	}
}

func (m Model) inspectCmd(path string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		info, err := port.InspectFile(context.Background(), path)
		return FileInspectedMsg{Path: path, Info: info, Err: err}
	}
}
