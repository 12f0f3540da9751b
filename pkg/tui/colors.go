// Package tui provides shared styles and widgets for the EarnPro terminal client.
package tui

import "github.com/charmbracelet/lipgloss"

// EarnPro palette. Gold for money, green/red for transaction direction.
var (
	ColorPrimary   = lipgloss.Color("#e0af68") // Gold
	ColorSecondary = lipgloss.Color("#7aa2f7") // Blue
	ColorSuccess   = lipgloss.Color("#9ece6a") // Green
	ColorWarning   = lipgloss.Color("#ff9e64") // Orange
	ColorError     = lipgloss.Color("#f7768e") // Red
	ColorMuted     = lipgloss.Color("#565f89") // Gray
	ColorBg        = lipgloss.Color("#1a1b26") // Dark background
	ColorBgLight   = lipgloss.Color("#24283b") // Lighter background
	ColorFg        = lipgloss.Color("#c0caf5") // Foreground
	ColorFgDim     = lipgloss.Color("#a9b1d6") // Dimmed foreground

	// Plan tier colors for badges.
	ColorPlanBasic    = lipgloss.Color("#a9b1d6")
	ColorPlanSilver   = lipgloss.Color("#c0caf5")
	ColorPlanGold     = lipgloss.Color("#e0af68")
	ColorPlanPlatinum = lipgloss.Color("#7dcfff")
	ColorPlanDiamond  = lipgloss.Color("#bb9af7")
)
