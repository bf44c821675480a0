package filepicker

import (
	"path/filepath"
	"slices"
)

// ImageTypes are the extensions offered for upload. Content is checked again
// before anything is sent.
var ImageTypes = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".heic", ".tif", ".tiff",
	".JPG", ".JPEG", ".PNG", ".GIF", ".WEBP",
}

// Selection is an ordered set of chosen file paths.
type Selection []string

// Toggle adds path, or removes it when it was already chosen.
func (s Selection) Toggle(path string) Selection {
	if i := slices.Index(s, path); i >= 0 {
		return slices.Delete(slices.Clone(s), i, i+1)
	}

	return append(slices.Clone(s), path)
}

func (s Selection) Contains(path string) bool {
	return slices.Contains(s, path)
}

// Names returns the base names of the selected files.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for _, path := range s {
		names = append(names, filepath.Base(path))
	}

	return names
}
