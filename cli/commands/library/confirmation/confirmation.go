package confirmation

import (
	"fmt"

	"photofolio/cli/commands/library/internal"
)

// GenConfirmMsg returns the title and description of a confirmation prompt.
// subfolders is the number of folders removed along with a folder.
func GenConfirmMsg(req internal.ViewRequest, subfolders int) (string, string) {
	switch req.Type {
	case internal.DeleteFolderRequest:
		title := fmt.Sprintf("Are you sure you want to delete folder '%s'?", req.Folder.Name)
		if subfolders > 0 {
			return title, fmt.Sprintf(
				"Its %d subfolder(s) and every image inside will be deleted too.\n"+
					"WARNING: This cannot be undone!", subfolders)
		}

		return title, "WARNING: This cannot be undone!"
	case internal.DeleteImageRequest:
		return fmt.Sprintf("Are you sure you want to delete image '%s'?", req.Image.Name),
			"WARNING: This cannot be undone!"
	}

	return "", ""
}
