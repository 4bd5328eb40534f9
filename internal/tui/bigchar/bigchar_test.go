package bigchar

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontLoaded(t *testing.T) {
	require.True(t, IsAvailable())
}

func TestRenderBlockShape(t *testing.T) {
	out := RenderBlock('A', 7, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 7, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "expected some ink in:\n%s", out)
}

func TestRenderBlockInvalidSize(t *testing.T) {
	assert.Empty(t, RenderBlock('A', 0, 3))
	assert.Empty(t, RenderBlock(0, 5, 3))
}

func TestGetCachedReturnsSameRendering(t *testing.T) {
	first := GetCached('G', 6, 3)
	assert.Equal(t, first, GetCached('G', 6, 3))
	assert.Contains(t, cache, cacheKey{'G', 6, 3})
}
