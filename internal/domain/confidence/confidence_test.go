package confidence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/confidence"
)

const original = `<button class="btn-primary">Click Me</button>`

func TestScore_FullMatch(t *testing.T) {
	conf := confidence.Score(`<button className="btn-primary">Click Me</button>`, original, "Click Me")
	assert.Equal(t, 100, conf.Score)
	assert.Equal(t, domain.LevelHigh, conf.Level)
	assert.Equal(t, []string{"btn-primary"}, conf.MatchedClasses)
	assert.Equal(t, "Click Me", conf.MatchedText)
	assert.Contains(t, conf.Details, "1/1 classes matched")
	assert.Contains(t, conf.Details, "text matched")
}

// Four significant classes, two shared, no text and a different tag.
func TestScore_PartialClassesIsLow(t *testing.T) {
	orig := `<div class="flex text-lg bg-white rounded">Welcome</div>`
	conf := confidence.Score(`<span className="flex text-lg">Other</span>`, orig, "Welcome")
	assert.Equal(t, 30, conf.Score)
	assert.Equal(t, domain.LevelLow, conf.Level)
	assert.Equal(t, []string{"flex", "text-lg"}, conf.MatchedClasses)
	assert.Empty(t, conf.MatchedText)
	assert.Contains(t, conf.Details, "text not found")
}

func TestScore_TagBonusIsCaseInsensitive(t *testing.T) {
	conf := confidence.Score(`<BUTTON>nothing</BUTTON>`, original, "")
	assert.Equal(t, 10, conf.Score)
	assert.Equal(t, domain.LevelNone, conf.Level)
}

func TestScore_NoOriginalClasses(t *testing.T) {
	conf := confidence.Score(`<p className="lead">Hello world</p>`, `<p>Hello world</p>`, "Hello world")
	assert.Equal(t, 50, conf.Score)
	assert.Equal(t, domain.LevelMedium, conf.Level)
	assert.Contains(t, conf.Details, "no classes to compare")
	assert.NotNil(t, conf.MatchedClasses)
}

func TestScore_Deterministic(t *testing.T) {
	src := `<div className="card shadow">Pricing</div>`
	orig := `<div class="card shadow border">Pricing</div>`
	assert.Equal(t, confidence.Score(src, orig, "Pricing"), confidence.Score(src, orig, "Pricing"))
}

func TestScore_Bounds(t *testing.T) {
	inputs := []struct{ src, orig, text string }{
		{"", "", ""},
		{original, original, "Click Me"},
		{`<a class="x y z">q</a>`, `<a class="x">q</a>`, "q"},
		{"garbage <<<", "<<<>>>", "<<"},
	}
	for _, in := range inputs {
		conf := confidence.Score(in.src, in.orig, in.text)
		assert.GreaterOrEqual(t, conf.Score, 0)
		assert.LessOrEqual(t, conf.Score, 100)
		assert.Equal(t, domain.LevelFor(conf.Score), conf.Level)
	}
}

func TestRank_BestMatchSkipsNoneLevel(t *testing.T) {
	orig := `<button class="btn-primary btn-lg">Click Me</button>`
	none := domain.Candidate{Path: "src/util.ts", Content: "export const x = 1;"}
	partial := domain.Candidate{Path: "src/Hero.tsx", Content: `<span className="btn-primary">Other</span>`}

	for _, order := range [][]domain.Candidate{{none, partial}, {partial, none}} {
		ranked := confidence.Rank(order, orig, "Click Me")
		require.Len(t, ranked, 2)
		assert.Equal(t, "src/Hero.tsx", ranked[0].Path)
		assert.Equal(t, domain.LevelLow, ranked[0].Confidence.Level)
		assert.True(t, ranked[0].IsBestMatch)
		assert.Equal(t, domain.LevelNone, ranked[1].Confidence.Level)
		assert.False(t, ranked[1].IsBestMatch)
	}
}

func TestRank_NoBestMatchWhenAllNone(t *testing.T) {
	ranked := confidence.Rank([]domain.Candidate{
		{Path: "a.ts", Content: "const a = 1"},
		{Path: "b.ts", Content: "const b = 2"},
	}, original, "Click Me")
	for _, r := range ranked {
		assert.False(t, r.IsBestMatch)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	content := `<button className="btn-primary">Click Me</button>`
	ranked := confidence.Rank([]domain.Candidate{
		{Path: "first.tsx", Content: content},
		{Path: "second.tsx", Content: content},
	}, original, "Click Me")
	require.Len(t, ranked, 2)
	assert.Equal(t, "first.tsx", ranked[0].Path)
	assert.True(t, ranked[0].IsBestMatch)
	assert.False(t, ranked[1].IsBestMatch)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, confidence.Rank(nil, original, ""))
}
