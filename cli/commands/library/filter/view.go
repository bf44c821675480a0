package filter

import (
	"github.com/charmbracelet/huh"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/gallery"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
)

// RunModel edits current. Leaving every field empty clears the filter.
func RunModel(current gallery.Filter) (internal.Event, error) {
	var confirmed bool
	fs := fromFilter(current)

	err := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Filter Images")).
			Description("Leave a field empty to ignore it"),
		huh.NewInput().Title("Year").Placeholder("2024").
			Validate(validator(func(s string) fields { return fields{year: s} })).
			Value(&fs.year),
		huh.NewInput().Title("Month").Placeholder("1-12").
			Validate(validator(func(s string) fields { return fields{month: s} })).
			Value(&fs.month),
		huh.NewInput().Title("Day").Placeholder("1-31").
			Validate(validator(func(s string) fields { return fields{day: s} })).
			Value(&fs.day),
		huh.NewInput().Title("Name contains").Value(&fs.keyword),
		huh.NewConfirm().Affirmative("Apply").Negative("Cancel").Value(&confirmed),
	)).WithTheme(styles.Theme).Run()

	if err != nil || !confirmed {
		return internal.Event{Status: internal.StatusCanceled, Type: internal.FilterRequest}, err
	}

	filter, err := fs.parse()
	if err != nil {
		return internal.Event{
			Status: internal.StatusCanceled,
			Type:   internal.FilterRequest,
			Err:    err,
		}, nil
	}

	return internal.Event{
		Status: internal.StatusOk,
		Type:   internal.FilterRequest,
		Filter: filter,
	}, nil
}
