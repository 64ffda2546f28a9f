package patch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
)

func TestRenderer_Unified(t *testing.T) {
	before := "a\nb\n<img src=\"x\">\nc\n"
	after := "a\nb\n<img src=\"x\" alt=\"logo\" />\nc\n"

	out := patch.New().Unified("src/App.tsx", before, after, 1)

	assert.Contains(t, out, "--- a/src/App.tsx")
	assert.Contains(t, out, "+++ b/src/App.tsx")
	assert.Contains(t, out, "-<img src=\"x\">\n")
	assert.Contains(t, out, "+<img src=\"x\" alt=\"logo\" />\n")
	assert.Contains(t, out, " b\n")
	assert.NotContains(t, out, " a\n", "context of 1 line excludes the first line")
}

func TestRenderer_UnifiedIdentical(t *testing.T) {
	assert.Empty(t, patch.New().Unified("x.html", "same\n", "same\n", 3))
}

func TestRenderer_UnifiedMissingTrailingNewline(t *testing.T) {
	out := patch.New().Unified("x.html", "one", "two", 0)
	assert.Contains(t, out, "-one\n")
	assert.Contains(t, out, "+two\n")
}

func TestSnippetDiff(t *testing.T) {
	segs := patch.SnippetDiff(`<img src="a.png">`, `<img src="a.png" alt="A">`)
	require.NotEmpty(t, segs)

	var before, after strings.Builder
	inserted := false
	for _, s := range segs {
		switch s.Op {
		case patch.OpEqual:
			before.WriteString(s.Text)
			after.WriteString(s.Text)
		case patch.OpDelete:
			before.WriteString(s.Text)
		case patch.OpInsert:
			after.WriteString(s.Text)
			inserted = true
		}
	}
	assert.Equal(t, `<img src="a.png">`, before.String())
	assert.Equal(t, `<img src="a.png" alt="A">`, after.String())
	assert.True(t, inserted)
}

func TestSnippetDiff_Identical(t *testing.T) {
	segs := patch.SnippetDiff("<br />", "<br />")
	require.Len(t, segs, 1)
	assert.Equal(t, patch.OpEqual, segs[0].Op)
}
