package locate

import (
	"regexp"
	"strings"
)

var (
	unionCommentRe = regexp.MustCompile(`^\|.*(?://|/\*)`)
	typeDeclRe     = regexp.MustCompile(`^(?:export\s+)?(?:declare\s+)?(?:type|interface)\s+\w+`)
)

// blockCommentLookback bounds the backward scan for an unclosed /* opener.
const blockCommentLookback = 10

// IsCommentLine reports whether line is a comment: it starts with //, /*, *,
// <!-- or {/*, or it carries a trailing // comment and holds no markup.
func IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, "//"),
		strings.HasPrefix(trimmed, "/*"),
		strings.HasPrefix(trimmed, "*"),
		strings.HasPrefix(trimmed, "<!--"),
		strings.HasPrefix(trimmed, "{/*"):
		return true
	}
	return hasTrailingComment(trimmed)
}

// hasTrailingComment detects "code // note" where the marker is preceded by
// whitespace (so URLs do not count) and the line holds no tags.
func hasTrailingComment(trimmed string) bool {
	idx := strings.Index(trimmed, " //")
	if idx < 0 {
		idx = strings.Index(trimmed, "\t//")
	}
	if idx < 0 {
		return false
	}
	return !strings.ContainsAny(trimmed, "<>")
}

// IsNonCodeContext reports whether lines[index] sits in a comment, a type or
// interface declaration, a commented union-type member, or inside a block
// comment opened within the previous ten lines.
func IsNonCodeContext(lines []string, index int) bool {
	if index < 0 || index >= len(lines) {
		return false
	}
	line := lines[index]
	if IsCommentLine(line) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	if unionCommentRe.MatchString(trimmed) || typeDeclRe.MatchString(trimmed) {
		return true
	}
	return insideBlockComment(lines, index)
}

func insideBlockComment(lines []string, index int) bool {
	stop := index - blockCommentLookback
	if stop < 0 {
		stop = 0
	}
	for j := index - 1; j >= stop; j-- {
		l := lines[j]
		opened := strings.LastIndex(l, "/*")
		closed := strings.LastIndex(l, "*/")
		switch {
		case closed >= 0 && closed > opened:
			return false
		case opened >= 0:
			return true
		}
	}
	return false
}
