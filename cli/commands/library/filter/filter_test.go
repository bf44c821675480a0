package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/cli/gallery"
)

func TestFieldsRoundTrip(t *testing.T) {
	current := gallery.Filter{Year: 2023, Day: 9, Keyword: "beach"}
	fs := fromFilter(current)
	assert.Equal(t, fields{year: "2023", day: "9", keyword: "beach"}, fs)

	parsed, err := fs.parse()
	require.NoError(t, err)
	assert.Equal(t, current, parsed)
}

func TestValidator(t *testing.T) {
	month := validator(func(s string) fields { return fields{month: s} })
	assert.NoError(t, month(""))
	assert.NoError(t, month("12"))
	assert.ErrorIs(t, month("13"), gallery.ErrInvalidFilter)
	assert.ErrorIs(t, month("may"), gallery.ErrInvalidFilter)
}
