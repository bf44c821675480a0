package utils

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"photofolio/cli/styles"
)

// GenerateTitle renders a form title prefixed with the app name.
func GenerateTitle(title string) string {
	return styles.TitleStyle.Render("photofolio") + styles.BoldStyle.Render(" > "+title)
}

// GenerateDescriptionSection renders a titled block of text with a divider
// sized to width.
func GenerateDescriptionSection(title, desc string, width int) string {
	divider := strings.Repeat("─", max(width, len(title)))
	return fmt.Sprintf("%s\n%s\n%s", styles.BoldStyle.Render(title), divider, desc)
}

// ShowErrorForm shows msg until the user dismisses it.
func ShowErrorForm(msg string) {
	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(GenerateTitle("Error")).Description(msg),
		huh.NewConfirm().Affirmative("OK").Negative(""),
	)).WithTheme(styles.Theme).Run()
}
