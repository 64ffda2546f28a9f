package confidence

import (
	"sort"

	"github.com/abdidvp/fixspot/internal/domain"
)

// Rank scores every candidate against the original markup and returns them
// sorted by descending score. Ties keep input order. Only the first result is
// flagged as the best match, and only when its level is not none.
func Rank(candidates []domain.Candidate, original, text string) []domain.RankedFile {
	ranked := make([]domain.RankedFile, len(candidates))
	for i, c := range candidates {
		ranked[i] = domain.RankedFile{
			Candidate:  c,
			Confidence: Score(c.Content, original, text),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence.Score > ranked[j].Confidence.Score
	})

	if len(ranked) > 0 && ranked[0].Confidence.Level != domain.LevelNone {
		ranked[0].IsBestMatch = true
	}
	return ranked
}
