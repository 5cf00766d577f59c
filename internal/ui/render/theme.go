package render

import (
	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShade indexes a Tailwind-style scale, Shade50 lightest.
type PaletteShade int

const (
	Shade50 PaletteShade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// PaletteFamily names a colour scale. The names double as badge colours in
// node data attributes.
type PaletteFamily string

const (
	Slate  PaletteFamily = "slate"
	Blue   PaletteFamily = "blue"
	Green  PaletteFamily = "green"
	Red    PaletteFamily = "red"
	Yellow PaletteFamily = "yellow"
)

// PaletteShades is one colour scale from lightest to darkest.
type PaletteShades [paletteShadeCount]lipgloss.Color

// Color returns the colour at shade, or "" when out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	if shade < 0 || int(shade) >= paletteShadeCount {
		return ""
	}
	return ps[shade]
}

// Theme is the colour and border set used by a Renderer.
type Theme struct {
	Palette map[PaletteFamily]PaletteShades
	Primary PaletteFamily
	Border  lipgloss.Border
}

// Shade looks up a colour. Unknown families fall back to slate.
func (t Theme) Shade(family PaletteFamily, shade PaletteShade) lipgloss.Color {
	shades, ok := t.Palette[family]
	if !ok {
		shades = t.Palette[Slate]
	}
	return shades.Color(shade)
}

// DefaultTheme mirrors the site's blue-on-slate look.
func DefaultTheme() Theme {
	return Theme{
		Primary: Blue,
		Border:  lipgloss.RoundedBorder(),
		Palette: map[PaletteFamily]PaletteShades{
			Slate: {
				"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
				"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
			},
			Blue: {
				"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
				"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
			},
			Green: {
				"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
				"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
			},
			Red: {
				"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
				"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
			},
			Yellow: {
				"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
				"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
			},
		},
	}
}

// styles are derived once per Renderer.
type styles struct {
	heading     lipgloss.Style
	subheading  lipgloss.Style
	muted       lipgloss.Style
	link        lipgloss.Style
	focused     lipgloss.Style
	disabled    lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	toast       lipgloss.Style
	destructive lipgloss.Style
	listbox     lipgloss.Style
	tabActive   lipgloss.Style
	tabIdle     lipgloss.Style
	field       lipgloss.Style
	buttons     map[string]lipgloss.Style
}

func newStyles(t Theme) styles {
	primary := func(s PaletteShade) lipgloss.Color { return t.Shade(t.Primary, s) }
	slate := func(s PaletteShade) lipgloss.Color { return t.Shade(Slate, s) }
	red := func(s PaletteShade) lipgloss.Color { return t.Shade(Red, s) }

	button := lipgloss.NewStyle().Padding(0, 1)
	return styles{
		heading:     lipgloss.NewStyle().Bold(true).Foreground(primary(Shade600)).MarginBottom(1),
		subheading:  lipgloss.NewStyle().Bold(true).Foreground(slate(Shade200)),
		muted:       lipgloss.NewStyle().Foreground(slate(Shade400)),
		link:        lipgloss.NewStyle().Underline(true).Foreground(primary(Shade400)),
		focused:     lipgloss.NewStyle().Reverse(true).Bold(true),
		disabled:    lipgloss.NewStyle().Faint(true),
		card:        lipgloss.NewStyle().Border(t.Border).BorderForeground(slate(Shade600)).Padding(0, 1),
		cardTitle:   lipgloss.NewStyle().Bold(true),
		toast:       lipgloss.NewStyle().Border(t.Border).BorderForeground(primary(Shade500)).Padding(0, 1),
		destructive: lipgloss.NewStyle().Border(t.Border).BorderForeground(red(Shade500)).Foreground(red(Shade300)).Padding(0, 1),
		listbox:     lipgloss.NewStyle().Border(t.Border).BorderForeground(primary(Shade400)),
		tabActive:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(primary(Shade400)).Padding(0, 1),
		tabIdle:     lipgloss.NewStyle().Foreground(slate(Shade400)).Padding(0, 1),
		field:       lipgloss.NewStyle().Foreground(slate(Shade100)),
		buttons: map[string]lipgloss.Style{
			"default":     button.Foreground(lipgloss.Color("#ffffff")).Background(primary(Shade600)),
			"secondary":   button.Foreground(slate(Shade900)).Background(slate(Shade200)),
			"destructive": button.Foreground(lipgloss.Color("#ffffff")).Background(red(Shade600)),
			"outline":     button.Foreground(slate(Shade100)),
			"ghost":       button.Foreground(slate(Shade300)),
			"link":        lipgloss.NewStyle().Underline(true).Foreground(primary(Shade400)),
		},
	}
}
