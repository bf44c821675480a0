// Package upload sends image files to a folder without starting the TUI.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"photofolio/cli/library"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

var ErrUsage = errors.New("usage: photofolio upload <folder-id|home> <file>...")

// Run uploads the files named in args into the folder named by its first
// positional argument and reports each file on w. The returned error joins
// the failures.
func Run(ctx context.Context, lib *library.Library, w io.Writer, args []string) error {
	positional := utils.Positional(args)
	if len(positional) < 2 {
		return ErrUsage
	}

	folderID := shared.ID(positional[0])
	if positional[0] == "home" {
		folderID = shared.HomeID
	}

	if err := lib.Load(ctx); err != nil {
		return err
	}

	results, err := lib.UploadFiles(ctx, folderID, positional[1:])
	for _, result := range results {
		name := filepath.Base(result.Path)
		if result.Err != nil {
			fmt.Fprintln(w, styles.ErrStyle.Render(fmt.Sprintf("✗ %s: %v", name, result.Err)))
			continue
		}

		fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("✓ %s", name))+
			styles.MutedStyle.Render(" -> "+result.Image.URL))
	}

	if results != nil {
		fmt.Fprintf(w, "Uploaded %d of %d file(s), limit %s per file\n",
			len(results)-countFailed(results),
			len(results),
			humanize.IBytes(uint64(lib.MaxUpload())))
	}

	return err
}

func countFailed(results []library.UploadResult) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	return failed
}
