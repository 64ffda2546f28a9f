package locate

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

// FindInstances enumerates every region of source that plausibly holds the
// original markup. Code instances sort before comment instances, each group
// by ascending start line. Identical ranges are reported once.
func FindInstances(source, original, text string) []domain.Instance {
	return findInstances(SplitLines(source), NewQuery(original, text))
}

func findInstances(lines []string, q Query) []domain.Instance {
	var keyClasses []string
	for _, cls := range extract.SignificantClasses(q.Original) {
		if len(cls) > 4 && !extract.IsResponsive(cls) {
			keyClasses = append(keyClasses, cls)
		}
	}
	useText := utf8.RuneCountInString(q.Text) >= minAnchorLen

	type span struct{ start, end int }
	seen := make(map[span]bool)
	var out []domain.Instance

	for i, l := range lines {
		hit := useText && strings.Contains(l, q.Text)
		if !hit && len(keyClasses) >= 2 {
			count := 0
			for _, cls := range keyClasses {
				if extract.ContainsClass(l, cls) {
					count++
				}
			}
			hit = count >= 2
		}
		if !hit {
			continue
		}

		start, end := expandAround(lines, i)
		key := span{start, end}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.Instance{
			LineStart: start + 1,
			LineEnd:   end + 1,
			IsComment: IsNonCodeContext(lines, i),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsComment != out[j].IsComment {
			return !out[i].IsComment
		}
		return out[i].LineStart < out[j].LineStart
	})
	return out
}
