// Package confidence scores how well a source fragment corresponds to the
// original markup and ranks candidate files by that score.
package confidence

import (
	"fmt"
	"math"
	"strings"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

const (
	classWeight = 60
	textBonus   = 40
	tagBonus    = 10
	maxScore    = 100
)

// Score computes the confidence that source contains the original markup.
// It is a pure function of its inputs: 60 points scale with the share of the
// original's classes found in source, 40 for a literal text match, and 10
// when both fragments open with the same tag.
func Score(source, original, text string) domain.MatchConfidence {
	originalClasses := extract.AllClasses(original)
	matched := extract.Intersect(originalClasses, extract.AllClasses(source))

	ratio := 0.0
	if len(originalClasses) > 0 {
		ratio = float64(len(matched)) / float64(len(originalClasses))
	}
	score := math.Min(ratio*classWeight, classWeight)

	textMatched := text != "" && strings.Contains(source, text)
	if textMatched {
		score += textBonus
	}

	srcTag, origTag := extract.TagName(source), extract.TagName(original)
	if srcTag != "" && strings.EqualFold(srcTag, origTag) {
		score += tagBonus
	}

	final := int(math.Round(math.Min(score, maxScore)))
	conf := domain.MatchConfidence{
		Score:          final,
		Level:          domain.LevelFor(final),
		MatchedClasses: matched,
		Details:        details(len(matched), len(originalClasses), textMatched),
	}
	if conf.MatchedClasses == nil {
		conf.MatchedClasses = []string{}
	}
	if textMatched {
		conf.MatchedText = text
	}
	return conf
}

func details(matched, total int, textMatched bool) string {
	var parts []string
	if total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d classes matched", matched, total))
	} else {
		parts = append(parts, "no classes to compare")
	}
	if textMatched {
		parts = append(parts, "text matched")
	} else {
		parts = append(parts, "text not found")
	}
	return strings.Join(parts, ", ")
}
