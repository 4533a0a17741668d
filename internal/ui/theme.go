package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked                         string

	// lipgloss colors for the interactive view
	TitleColor, AccentColor, SuccessColor, PendingColor, ErrorColor, BorderColor lipgloss.TerminalColor
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•",
			TitleColor: lipgloss.Color("13"), AccentColor: lipgloss.Color("14"),
			SuccessColor: lipgloss.Color("10"), PendingColor: lipgloss.Color("11"),
			ErrorColor: lipgloss.Color("9"), BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		colorSetting = colorNever
		current = Theme{
			Name:  "mono",
			Title: "", Muted: "", Accent: "", Success: "", Error: "", Pending: "",
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymUnchecked: "-",
			TitleColor: lipgloss.NoColor{}, AccentColor: lipgloss.NoColor{},
			SuccessColor: lipgloss.NoColor{}, PendingColor: lipgloss.NoColor{},
			ErrorColor: lipgloss.NoColor{}, BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•",
			TitleColor: lipgloss.NoColor{}, AccentColor: lipgloss.Color("12"),
			SuccessColor: lipgloss.Color("42"), PendingColor: lipgloss.Color("214"),
			ErrorColor: lipgloss.Color("9"), BorderColor: lipgloss.Color("8"),
		}
	}
	applyStyles(current)
}

// Expose what renderers need
func Current() Theme { return current }
