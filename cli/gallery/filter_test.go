package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/shared"
)

func image(id shared.ID, name, created string) shared.ImageItem {
	return shared.ImageItem{
		ID:        id,
		Name:      name,
		URL:       "http://img/" + id.String(),
		CreatedAt: shared.ParseTimestamp(created),
	}
}

var images = []shared.ImageItem{
	image("a", "beach.png", "2022-05-10"),
	image("b", "cat.png", "2023-01-01"),
	image("c", "Beach-Party.JPG", "2022-05-21T18:00:00+07:00"),
	image("d", "broken.png", "yesterday"),
}

func names(images []shared.ImageItem) []string {
	var out []string
	for _, img := range images {
		out = append(out, img.Name)
	}
	return out
}

func TestFilterYear(t *testing.T) {
	got := Filter{Year: 2022}.Apply(images[:2])
	assert.Equal(t, []string{"beach.png"}, names(got))
}

func TestFilterFields(t *testing.T) {
	assert.Equal(t, []string{"beach.png", "Beach-Party.JPG"},
		names(Filter{Year: 2022, Month: 5}.Apply(images)))
	assert.Equal(t, []string{"Beach-Party.JPG"},
		names(Filter{Day: 21}.Apply(images)))
	assert.Equal(t, []string{"beach.png", "Beach-Party.JPG"},
		names(Filter{Keyword: "BEACH"}.Apply(images)))
	assert.Empty(t, Filter{Year: 2022, Keyword: "cat"}.Apply(images))
}

func TestEmptyFilterPassesThrough(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.Equal(t, images, Filter{}.Apply(images))
}

func TestUnreadableDate(t *testing.T) {
	assert.Equal(t, []string{"broken.png"}, names(Filter{Keyword: "broken"}.Apply(images)))
	assert.Empty(t, Filter{Keyword: "broken", Year: 2022}.Apply(images))
}

func TestFilterCommutes(t *testing.T) {
	year := Filter{Year: 2022}
	keyword := Filter{Keyword: "party"}

	a := keyword.Apply(year.Apply(images))
	b := year.Apply(keyword.Apply(images))
	c := Filter{Year: 2022, Keyword: "party"}.Apply(images)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestSeqIsRestartable(t *testing.T) {
	seq := Filter{Year: 2022}.Seq(images)

	var first, second []shared.ImageItem
	for img := range seq {
		first = append(first, img)
	}
	for img := range seq {
		second = append(second, img)
	}

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)

	for img := range seq {
		assert.Equal(t, "beach.png", img.Name)
		break
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	loaded := append([]shared.ImageItem(nil), images...)
	_ = Filter{Year: 2023}.Apply(loaded)
	assert.Equal(t, images, loaded)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("2022", "", " 5 ", "  beach ")
	require.NoError(t, err)
	assert.Equal(t, Filter{Year: 2022, Day: 5, Keyword: "beach"}, f)

	_, err = ParseFilter("", "13", "", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseFilter("abc", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	f, err = ParseFilter("", "", "", "")
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, `year=2022 name~"cat"`, Filter{Year: 2022, Keyword: "cat"}.String())
	assert.Empty(t, Filter{}.String())
}
