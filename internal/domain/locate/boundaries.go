package locate

import (
	"regexp"
	"strings"
)

var openTagRe = regexp.MustCompile(`<[A-Za-z]`)

const (
	anchorWindow = 5
	depthWindow  = 10
)

func hasOpenTag(line string) bool {
	return openTagRe.MatchString(line)
}

func hasCloseDelimiter(line string) bool {
	return strings.Contains(line, "/>") || strings.Contains(line, "</")
}

// expandAround widens a hit at index to the nearest non-comment opening tag
// at most five lines above and the first closing delimiter at most five lines
// below. Both bounds default to the hit line. Returned indexes are 0-based.
func expandAround(lines []string, index int) (start, end int) {
	start, end = index, index
	for j := index; j >= 0 && j >= index-anchorWindow; j-- {
		if hasOpenTag(lines[j]) && !IsCommentLine(lines[j]) {
			start = j
			break
		}
	}
	for j := index; j < len(lines) && j <= index+anchorWindow; j++ {
		if hasCloseDelimiter(lines[j]) {
			end = j
			break
		}
	}
	return start, end
}

// expandByDepth finds the element around a class hit by walking up to ten
// lines back to its opening tag, then counting opened and closed tags
// forward for up to ten lines until the element closes. An opener whose
// element closes above the hit is dropped in favour of the hit line, so the
// region always contains index.
func expandByDepth(lines []string, index int) (start, end int) {
	start = index
	for j := index; j >= 0 && j >= index-depthWindow; j-- {
		if hasOpenTag(lines[j]) {
			start = j
			break
		}
	}

	end = closeByDepth(lines, start, index+depthWindow)
	if end < index {
		start = index
		end = closeByDepth(lines, index, index+depthWindow)
	}
	if end < index {
		end = index
	}
	return start, end
}

// closeByDepth returns the first line at or after from where the tag depth
// drops to zero on a close delimiter, or from when none is seen by limit.
func closeByDepth(lines []string, from, limit int) int {
	depth := 0
	for j := from; j < len(lines) && j <= limit; j++ {
		l := lines[j]
		opens := len(openTagRe.FindAllStringIndex(l, -1))
		closes := strings.Count(l, "</") + strings.Count(l, "/>")
		depth += opens - closes
		if depth <= 0 && hasCloseDelimiter(l) {
			return j
		}
	}
	return from
}
