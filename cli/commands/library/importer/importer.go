package importer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"photofolio/cli/drive"
)

type Action int

const (
	Cancel Action = iota
	ImportImages
	SyncFolder
	AuthorizeServer
)

// pick returns the refs at the chosen positions, in list order.
func pick[T any](refs []T, chosen []int) []T {
	seen := make(map[int]bool, len(chosen))
	for _, i := range chosen {
		seen[i] = true
	}

	var result []T
	for i, ref := range refs {
		if seen[i] {
			result = append(result, ref)
		}
	}

	return result
}

func imageOptions(refs []drive.ImageRef) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(refs))
	for i, ref := range refs {
		options = append(options, huh.NewOption(ref.Name, i))
	}

	return options
}

func folderOptions(refs []drive.FolderRef) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(refs))
	for i, ref := range refs {
		options = append(options, huh.NewOption(ref.Name+"/", i))
	}

	return options
}

// summarize describes an import result for the confirmation note.
func summarize(result drive.ImportResult) string {
	summary := fmt.Sprintf("Imported %d image(s)", len(result.Imported))
	if len(result.Failed) == 0 {
		return summary
	}

	names := make([]string, 0, len(result.Failed))
	for _, failure := range result.Failed {
		names = append(names, failure.Ref.Name)
	}

	return fmt.Sprintf("%s, %d failed: %s", summary, len(result.Failed), strings.Join(names, ", "))
}

// menu lists the actions offered for a folder. Drive folders can only be
// synced below folders the user owns.
func menu(canSync bool) []huh.Option[Action] {
	options := []huh.Option[Action]{huh.NewOption("Import images", ImportImages)}
	if canSync {
		options = append(options, huh.NewOption("Sync a Drive folder", SyncFolder))
	}

	return append(options,
		huh.NewOption("Authorize server sync", AuthorizeServer),
		huh.NewOption("Return to Library", Cancel))
}
