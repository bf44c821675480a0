package utils

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	args := []string{"images", "12", "--year", "2022", "-k", "beach"}

	var year, keyword, month string
	StrFlag(&year, "year", "", args)
	StrFlag(&keyword, "keyword", "", args)
	StrFlag(&month, "month", "none", args)

	assert.Equal(t, "2022", year)
	assert.Equal(t, "beach", keyword)
	assert.Equal(t, "none", month)
}

func TestFlagMissingValue(t *testing.T) {
	var keyword string
	StrFlag(&keyword, "keyword", "fallback", []string{"images", "--keyword"})
	assert.Equal(t, "fallback", keyword)
}

func TestPositional(t *testing.T) {
	args := []string{"12", "--year", "2022", "a.png", "-k", "x", "b.png"}
	assert.Equal(t, []string{"12", "a.png", "b.png"}, Positional(args))
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseHTTPError(t *testing.T) {
	err := ParseHTTPError(response(http.StatusForbidden, `{"detail": "not allowed"}`))
	assert.EqualError(t, err, "server error 403: not allowed")
	assert.True(t, IsStatus(err, http.StatusForbidden))

	err = ParseHTTPError(response(http.StatusBadRequest, `{"error": "bad name"}`))
	assert.EqualError(t, err, "server error 400: bad name")

	err = ParseHTTPError(response(http.StatusInternalServerError, ""))
	assert.EqualError(t, err, "server error 500: Internal Server Error")

	err = ParseHTTPError(response(http.StatusBadGateway, "upstream down"))
	assert.EqualError(t, err, "server error 502: upstream down")
	assert.False(t, IsStatus(err, http.StatusForbidden))
}

func TestGenerateDescriptionSection(t *testing.T) {
	section := GenerateDescriptionSection("Info", "body", 6)
	lines := strings.Split(section, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "──────", lines[1])
	assert.Equal(t, "body", lines[2])
}

func TestIsConnectionError(t *testing.T) {
	_, err := http.Get("http://127.0.0.1:1/")
	assert.True(t, IsConnectionError(err))
	assert.False(t, IsConnectionError(&HTTPError{StatusCode: 500}))
}
