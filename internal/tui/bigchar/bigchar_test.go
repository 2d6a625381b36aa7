package bigchar

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	require.True(t, IsAvailable())

	out := Render("128", 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	width := runewidth.StringWidth(lines[0])
	assert.Greater(t, width, 0)
	for _, l := range lines {
		assert.Equal(t, width, runewidth.StringWidth(l), "rows must be equally wide")
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"))
}

func TestRenderWidthGrows(t *testing.T) {
	short := strings.Split(Render("1", 4), "\n")[0]
	long := strings.Split(Render("1000", 4), "\n")[0]
	assert.Greater(t, len([]rune(long)), len([]rune(short)))
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render("", 4))
	assert.Empty(t, Render("12", 0))
}

func TestCached(t *testing.T) {
	first := Cached("42", 3)
	assert.Equal(t, Render("42", 3), first)
	assert.Equal(t, first, Cached("42", 3))
}
