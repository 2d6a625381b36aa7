// Package tui provides the interactive terminal front-end of the counter.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/maodou/internal/report"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#5a8f5a") // Bean green - titles, Chinese
	ColorLatin   = lipgloss.Color("#6b8e9f") // Slate blue - Latin
	ColorAccent  = lipgloss.Color("#c4a574") // Pod tan - mixed, warnings
	ColorMuted   = lipgloss.Color("#b8a89a") // Husk - help text, neutral
	ColorText    = lipgloss.Color("#f5f0e8") // Light text
	ColorError   = lipgloss.Color("#c0504d")
	ColorBgAlt   = lipgloss.Color("#2f3a2f")
	ColorBorder  = lipgloss.Color("#4a5a4a")
)

// toneColors matches the web page's comment colours.
var toneColors = map[report.Tone]lipgloss.Color{
	report.ToneChinese: ColorPrimary,
	report.ToneLatin:   ColorLatin,
	report.ToneMixed:   ColorAccent,
	report.ToneNeutral: ColorMuted,
}

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)
)

// Editor styles
var (
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	EditorFocusedStyle = EditorStyle.
				BorderForeground(ColorPrimary)
)

// Result styles
var (
	BigNumberStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2).
			Align(lipgloss.Center)

	BigLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	BeanStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorBgAlt).
			Padding(0, 1)

	CommentStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
