package gallery

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"photofolio/shared"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Filter narrows a list of images. Zero fields are not applied, and a record
// passes only if every applied field matches.
type Filter struct {
	Year    int
	Month   int
	Day     int
	Keyword string
}

// ParseFilter builds a Filter from text input. Empty strings leave the
// corresponding field unset.
func ParseFilter(year, month, day, keyword string) (Filter, error) {
	var f Filter
	var err error

	if f.Year, err = parseField("year", year, 1, 9999); err != nil {
		return Filter{}, err
	} else if f.Month, err = parseField("month", month, 1, 12); err != nil {
		return Filter{}, err
	} else if f.Day, err = parseField("day", day, 1, 31); err != nil {
		return Filter{}, err
	}

	f.Keyword = strings.TrimSpace(keyword)
	return f, nil
}

func parseField(name, value string, min, max int) (int, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%w: %s must be between %d and %d",
			ErrInvalidFilter, name, min, max)
	}

	return n, nil
}

func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Match reports whether image passes the filter. Calendar fields are read
// from the creation time in the zone it was recorded in, so an image without
// a readable creation time fails any calendar field.
func (f Filter) Match(image shared.ImageItem) bool {
	if f.Year != 0 || f.Month != 0 || f.Day != 0 {
		if !image.CreatedAt.Valid() {
			return false
		}

		created := image.CreatedAt.Time
		if f.Year != 0 && created.Year() != f.Year {
			return false
		} else if f.Month != 0 && created.Month() != time.Month(f.Month) {
			return false
		} else if f.Day != 0 && created.Day() != f.Day {
			return false
		}
	}

	if len(f.Keyword) > 0 &&
		!strings.Contains(strings.ToLower(image.Name), strings.ToLower(f.Keyword)) {
		return false
	}

	return true
}

// Seq lazily yields the images that pass the filter. It reads images on every
// iteration and can be ranged over any number of times.
func (f Filter) Seq(images []shared.ImageItem) iter.Seq[shared.ImageItem] {
	return func(yield func(shared.ImageItem) bool) {
		for _, image := range images {
			if f.Match(image) && !yield(image) {
				return
			}
		}
	}
}

// Apply returns a new slice with the images that pass the filter.
func (f Filter) Apply(images []shared.ImageItem) []shared.ImageItem {
	return slices.Collect(f.Seq(images))
}

func (f Filter) String() string {
	var parts []string
	if f.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", f.Year))
	}
	if f.Month != 0 {
		parts = append(parts, fmt.Sprintf("month=%d", f.Month))
	}
	if f.Day != 0 {
		parts = append(parts, fmt.Sprintf("day=%d", f.Day))
	}
	if len(f.Keyword) > 0 {
		parts = append(parts, fmt.Sprintf("name~%q", f.Keyword))
	}

	return strings.Join(parts, " ")
}
