package filter

import (
	"strconv"

	"photofolio/cli/gallery"
)

// fields holds the text form of a filter while it is edited.
type fields struct {
	year, month, day, keyword string
}

func fromFilter(f gallery.Filter) fields {
	return fields{
		year:    itoa(f.Year),
		month:   itoa(f.Month),
		day:     itoa(f.Day),
		keyword: f.Keyword,
	}
}

func (fs fields) parse() (gallery.Filter, error) {
	return gallery.ParseFilter(fs.year, fs.month, fs.day, fs.keyword)
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}

	return strconv.Itoa(n)
}

// validator checks a single numeric field in isolation.
func validator(build func(string) fields) func(string) error {
	return func(s string) error {
		_, err := build(s).parse()
		return err
	}
}
