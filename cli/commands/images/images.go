// Package images lists the images of a folder without starting the TUI.
package images

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"photofolio/cli/gallery"
	"photofolio/cli/library"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

// Options are the command line arguments of the images command.
type Options struct {
	Folder shared.ID
	Filter gallery.Filter
}

// ParseArgs reads "[folder-id] [--year Y] [--month M] [--day D]
// [--keyword K]". A missing folder or "home" selects home.
func ParseArgs(args []string) (Options, error) {
	var year, month, day, keyword string
	utils.StrFlag(&year, "year", "", args)
	utils.StrFlag(&month, "month", "", args)
	utils.StrFlag(&day, "day", "", args)
	utils.StrFlag(&keyword, "keyword", "", args)

	filter, err := gallery.ParseFilter(year, month, day, keyword)
	if err != nil {
		return Options{}, err
	}

	opts := Options{Filter: filter}
	if positional := utils.Positional(args); len(positional) > 0 && positional[0] != "home" {
		opts.Folder = shared.ID(positional[0])
	}

	return opts, nil
}

// Print loads the library, selects the folder and writes its images that
// pass the filter as a table.
func Print(ctx context.Context, lib *library.Library, w io.Writer, opts Options, now time.Time) error {
	if err := lib.Load(ctx); err != nil {
		return err
	}

	if !opts.Folder.IsHome() {
		if err := lib.SelectAndLoad(ctx, opts.Folder); err != nil {
			return err
		}
	}

	images := lib.Images.View(opts.Filter)
	if len(images) == 0 {
		fmt.Fprintln(w, styles.MutedStyle.Render("No images"))
		return nil
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.MutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			// row 0 is the header
			if row == 0 {
				return cell.Bold(true)
			}
			return cell
		}).
		Headers("ID", "Name", "Added", "URL")

	for _, image := range images {
		added := ""
		if image.CreatedAt.Valid() {
			added = humanize.RelTime(image.CreatedAt.Time, now, "ago", "from now")
		}

		t.Row(image.ID.String(), shared.EscapeString(image.Name), added, image.URL)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d of %d image(s)\n", len(images), lib.Images.Len())
	return nil
}
