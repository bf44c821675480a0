// Package tree prints the folder hierarchy without starting the TUI.
package tree

import (
	"context"
	"fmt"
	"io"
	"strings"

	"photofolio/cli/library"
	"photofolio/cli/styles"
	"photofolio/shared"
)

// Print loads the library and writes home's folder tree followed by the
// folders shared with the user.
func Print(ctx context.Context, lib *library.Library, w io.Writer) error {
	if err := lib.Load(ctx); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.BoldStyle.Render("home"))
	for _, line := range lib.Tree.Render(shared.HomeID, 1) {
		fmt.Fprintf(w, "%s%s %s\n",
			strings.Repeat("  ", line.Depth),
			styles.DirStyle.Render(shared.EscapeString(line.Folder.Name)+"/"),
			styles.MutedStyle.Render("#"+line.Folder.ID.String()))
	}

	entries := lib.Tree.Shared()
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintln(w, styles.BoldStyle.Render("shared with me"))
	for _, entry := range entries {
		fmt.Fprintf(w, "  %s %s\n",
			styles.SharedStyle.Render(shared.EscapeString(entry.Name)+"/"),
			styles.MutedStyle.Render(fmt.Sprintf("#%s %s", entry.ID, entry.Permission)))
	}

	return nil
}
