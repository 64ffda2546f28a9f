package locate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

const minAnchorLen = 3

// byTextAnchor finds the first line holding the visible text. Comment hits
// are skipped while a non-comment hit exists elsewhere in the file.
func byTextAnchor(lines []string, q Query) *domain.CodeLocation {
	if utf8.RuneCountInString(q.Text) < minAnchorLen {
		return nil
	}

	hasCodeHit := false
	for i, l := range lines {
		if strings.Contains(l, q.Text) && !IsNonCodeContext(lines, i) {
			hasCodeHit = true
			break
		}
	}

	for i, l := range lines {
		if !strings.Contains(l, q.Text) {
			continue
		}
		nonCode := IsNonCodeContext(lines, i)
		if nonCode && hasCodeHit {
			continue
		}

		start, end := expandAround(lines, i)
		region := strings.Join(lines[start:end+1], "\n")
		shared := extract.Intersect(q.Classes, extract.AllClasses(region))

		level := domain.LevelMedium
		switch {
		case len(shared) > 2:
			level = domain.LevelHigh
		case !nonCode && len(q.Classes) > 0 && len(shared) == len(q.Classes):
			level = domain.LevelHigh
		case nonCode:
			level = domain.LevelLow
		}

		reason := fmt.Sprintf("text %q found on line %d, %d/%d classes shared", q.Text, i+1, len(shared), len(q.Classes))
		if nonCode {
			reason += " (inside a comment or declaration)"
		}
		return newLocation(lines, start, end, level, reason, nonCode)
	}
	return nil
}

// byClassCombination finds the first code line sharing at least
// min(2, significant) of the original's longer or responsive classes.
// Comment lines are never trusted here.
func byClassCombination(lines []string, q Query) *domain.CodeLocation {
	if len(q.Classes) < 2 {
		return nil
	}
	var significant []string
	for _, cls := range q.Classes {
		if extract.IsResponsive(cls) || len(cls) > 4 {
			significant = append(significant, cls)
		}
	}
	need := min(2, len(significant))
	if need == 0 {
		return nil
	}

	for i, l := range lines {
		if IsNonCodeContext(lines, i) {
			continue
		}
		count := 0
		for _, cls := range significant {
			if extract.ContainsClass(l, cls) {
				count++
			}
		}
		if count < need {
			continue
		}

		start, end := expandByDepth(lines, i)
		level := domain.LevelMedium
		if count >= 3 {
			level = domain.LevelHigh
		}
		reason := fmt.Sprintf("%d of %d significant classes matched on line %d", count, len(significant), i+1)
		return newLocation(lines, start, end, level, reason, false)
	}
	return nil
}

// byTagAndClass is the last resort: the first code line opening the same tag
// and sharing any class. It spans a single line.
func byTagAndClass(lines []string, q Query) *domain.CodeLocation {
	if q.Tag == "" || len(q.Classes) == 0 {
		return nil
	}
	for i, l := range lines {
		if extract.LeadingTagName(l) != q.Tag || IsNonCodeContext(lines, i) {
			continue
		}
		shared := extract.Intersect(q.Classes, extract.AllClasses(l))
		if len(shared) == 0 {
			continue
		}
		reason := fmt.Sprintf("<%s> with class %q on line %d", q.Tag, shared[0], i+1)
		return newLocation(lines, i, i, domain.LevelLow, reason, false)
	}
	return nil
}
