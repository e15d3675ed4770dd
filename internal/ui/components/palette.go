package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"easeed/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// PaletteHints must stay in sync with the switch in app/model.go executePalette.
var PaletteHints = []string{
	"kind:text",
	"kind:pdf",
	"kind:image",
	"kind:youtube",
	"goal:learn",
	"goal:quiz",
	"goal:notes",
	"theme:toggle",
	"submit",
	"back",
	"quit",
}

const maxHints = 6

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	theme   *theme.Theme
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette(th *theme.Theme) Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 64
	return Palette{theme: th, input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			// Complete to the first matching hint.
			if m := Matching(p.input.Value()); len(m) > 0 {
				p.input.SetValue(m[0])
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Matching returns the hints starting with prefix, case-insensitively.
func Matching(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, h := range PaletteHints {
		if prefix == "" || strings.HasPrefix(h, prefix) {
			out = append(out, h)
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	matching := Matching(p.input.Value())
	if len(matching) > maxHints {
		matching = matching[:maxHints]
	}

	var sb strings.Builder
	sb.WriteString(p.theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(p.theme.Muted.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.Colors.Peach).
		Background(p.theme.Colors.Mantle).
		Foreground(p.theme.Colors.Text).
		Padding(0, 1)
	return style.Width(w - 2).Render(sb.String())
}
