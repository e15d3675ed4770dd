package theme

import "github.com/charmbracelet/lipgloss"

type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ParseMode falls back to Dark for anything that is not "light".
func ParseMode(s string) Mode {
	if Mode(s) == Light {
		return Light
	}
	return Dark
}

// Palette holds the Catppuccin colours a Theme is built from.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
}

// Mocha is the dark flavour.
var Mocha = Palette{
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Text:     lipgloss.Color("#cdd6f4"),
	Subtext0: lipgloss.Color("#a6adc8"),
	Lavender: lipgloss.Color("#b4befe"),
	Sapphire: lipgloss.Color("#74c7ec"),
	Green:    lipgloss.Color("#a6e3a1"),
	Peach:    lipgloss.Color("#fab387"),
	Red:      lipgloss.Color("#f38ba8"),
}

// Latte is the light flavour.
var Latte = Palette{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Text:     lipgloss.Color("#4c4f69"),
	Subtext0: lipgloss.Color("#6c6f85"),
	Lavender: lipgloss.Color("#7287fd"),
	Sapphire: lipgloss.Color("#209fb5"),
	Green:    lipgloss.Color("#40a02b"),
	Peach:    lipgloss.Color("#fe640b"),
	Red:      lipgloss.Color("#d20f39"),
}

// Theme is shared by pointer between the shell and every view, so Toggle restyles
// the whole program at once.
type Theme struct {
	Mode   Mode
	Colors Palette

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Bar        lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Selected   lipgloss.Style
}

func New(mode Mode) *Theme {
	t := &Theme{}
	t.apply(mode)
	return t
}

func (t *Theme) Toggle() {
	if t.Mode == Dark {
		t.apply(Light)
		return
	}
	t.apply(Dark)
}

// GlamourStyle names the glamour standard style matching the mode.
func (t *Theme) GlamourStyle() string {
	return string(t.Mode)
}

func (t *Theme) apply(mode Mode) {
	p := Mocha
	if mode == Light {
		p = Latte
	} else {
		mode = Dark
	}
	t.Mode = mode
	t.Colors = p

	t.App = lipgloss.NewStyle().
		Background(p.Base).
		Foreground(p.Text).
		Padding(1, 2)
	t.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Foreground(p.Text).
		Padding(0, 1)
	t.PaneActive = t.Pane.BorderForeground(p.Lavender)
	t.Bar = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text)
	t.Title = lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(p.Subtext0)
	t.Hot = lipgloss.NewStyle().Foreground(p.Peach).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(p.Red).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(p.Green)
	t.Selected = lipgloss.NewStyle().Background(p.Surface0).Foreground(p.Lavender).Bold(true)
}
