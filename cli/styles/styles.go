package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var Theme = PhotofolioTheme()

var (
	white       = lipgloss.Color("#ffffff")
	gray        = lipgloss.Color("#a6adc8")
	accent      = lipgloss.Color("#d9822b")
	accentLight = lipgloss.Color("#f0a75e")
	shared      = lipgloss.Color("#3EB974")
	destructive = lipgloss.Color("#a83c3c")
)

func PhotofolioTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(white)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(white).Bold(true)
	t.Focused.Directory = t.Focused.Directory.Foreground(accentLight)
	t.Focused.Description = t.Focused.Description.Foreground(gray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(destructive)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(destructive)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accentLight).Bold(true)
	t.Focused.Option = t.Focused.Option.PaddingLeft(1).PaddingRight(1).Foreground(gray)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accentLight)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(white).PaddingLeft(1).PaddingRight(1)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(accentLight)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.PaddingLeft(1).PaddingRight(1)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(white).Background(accent)

	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(white)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(gray)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accentLight)

	t.Help = help.New().Styles

	// Blurred styles.
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}

var (
	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	DirStyle     = lipgloss.NewStyle().Foreground(accentLight)
	SharedStyle  = lipgloss.NewStyle().Foreground(shared)
	BoldStyle    = lipgloss.NewStyle().Bold(true).Foreground(Theme.Focused.NoteTitle.GetForeground())
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentLight)
	ErrStyle     = lipgloss.NewStyle().Foreground(Theme.Focused.ErrorMessage.GetForeground())
	SuccessStyle = lipgloss.NewStyle().Foreground(shared)
	MutedStyle   = lipgloss.NewStyle().Foreground(gray)
)

// TableStyles are the styles of the library table.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("255")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(white).
		Background(accent)
	s.Cell = s.Cell.Foreground(white)
	return s
}

func PrintErrStr(errMsg string) {
	fmt.Fprintln(os.Stderr, ErrStyle.Render(errMsg))
}

func PrintSuccessStr(msg string) {
	fmt.Println(SuccessStyle.Render(msg))
}

func DestructiveTheme() *huh.Theme {
	t := *Theme

	red := lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color("238"))
	t.Focused.Title = t.Focused.Title.Foreground(red).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(red)

	return &t
}
