package tui

import "github.com/charmbracelet/lipgloss"

// Base styles shared across all screens.
var (
	BaseStyle = lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorFg)

	// Content container with padding
	ContentStyle = lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorFg).
			Padding(1, 3)

	// Card/Panel style with border and background
	CardStyle = lipgloss.NewStyle().
			Background(ColorBgLight).
			Foreground(ColorFg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	// Focused card (active modal, focused pane)
	CardFocusedStyle = lipgloss.NewStyle().
				Background(ColorBgLight).
				Foreground(ColorFg).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Background(ColorBgLight).
			Foreground(ColorFg).
			Padding(0, 1).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Money styles
	BalanceStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	AmountPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	AmountNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	// List item styles
	SelectedStyle = lipgloss.NewStyle().
			Background(ColorBgLight).
			Foreground(ColorFg).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	// Inline field error (validation message next to the offending input)
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Badge base style
	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorPrimary).
			Foreground(ColorBg)

	// Toast styles
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorSuccess).
				Padding(0, 1)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorError).
			Padding(0, 1)

	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorSecondary).
			Padding(0, 1)

	// Help styles
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Nav tab styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)
)

// PlanBadge renders a plan name in its tier color.
func PlanBadge(plan string) string {
	color := ColorPlanBasic
	switch plan {
	case "Silver":
		color = ColorPlanSilver
	case "Gold":
		color = ColorPlanGold
	case "Platinum":
		color = ColorPlanPlatinum
	case "Diamond":
		color = ColorPlanDiamond
	}
	return lipgloss.NewStyle().Padding(0, 1).Background(color).Foreground(ColorBg).Render(plan)
}
