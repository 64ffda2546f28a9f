// Package extract pulls comparison features out of raw markup: visible text,
// class attribute tokens, and the subset of classes that carry meaning.
// Every function is regex based and returns empty results for malformed input.
package extract

import (
	"regexp"
	"strings"
)

var (
	textRe      = regexp.MustCompile(`>([^<]{2,50})<`)
	punctOnlyRe = regexp.MustCompile(`^[\p{P}\p{S}\s]+$`)
	selectorRe  = regexp.MustCompile(`\.([\w-]+)`)
	tagNameRe   = regexp.MustCompile(`<([A-Za-z][\w.-]*)`)

	// class="..", class='..', className="..", className={".."}, className={`..`}
	classAttrRe = regexp.MustCompile("\\bclass(?:Name)?\\s*=\\s*\\{?\\s*(?:\"([^\"]*)\"|'([^']*)'|`([^`]*)`)")

	responsiveRe  = regexp.MustCompile(`^(?:sm|md|lg|xl|2xl):`)
	spacingUtilRe = regexp.MustCompile(`^-?(?:w|h|p|m|px|py|pt|pb|pl|pr|mx|my|mt|mb|ml|mr|gap|gap-x|gap-y|space-x|space-y|min-w|min-h|max-w|max-h|inset|top|bottom|left|right|z)-\d`)
)

// pseudoClasses are interaction states dropped from selector tokens.
var pseudoClasses = map[string]bool{
	"hover":       true,
	"focus":       true,
	"active":      true,
	"group-hover": true,
}

// semanticMarkers flag classes that describe visual role rather than spacing.
var semanticMarkers = []string{"text-", "bg-", "border-", "rounded", "flex", "grid", "font-"}

const maxSelectorTokens = 5

// TextContent returns the first 2-50 character run between a '>' and the
// next '<', trimmed. It returns "" when the run is missing, shorter than two
// characters after trimming, or made only of punctuation and whitespace.
func TextContent(markup string) string {
	m := textRe.FindStringSubmatch(markup)
	if m == nil {
		return ""
	}
	text := strings.TrimSpace(m[1])
	if len([]rune(text)) < 2 || punctOnlyRe.MatchString(text) {
		return ""
	}
	return text
}

// ClassTokens parses ".token" fragments from a CSS selector. Tokens of three
// characters or fewer and interaction pseudo-class names are dropped; at most
// five tokens are returned in encounter order.
func ClassTokens(selector string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range selectorRe.FindAllStringSubmatch(selector, -1) {
		tok := m[1]
		if len(tok) <= 3 || pseudoClasses[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
		if len(out) == maxSelectorTokens {
			break
		}
	}
	return out
}

// AllClasses returns the deduplicated union of every class attribute value in
// markup, in order of first appearance. Both the plain HTML attribute and the
// JSX className form are recognised.
func AllClasses(markup string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range classAttrRe.FindAllStringSubmatch(markup, -1) {
		value := m[1] + m[2] + m[3]
		for _, cls := range strings.Fields(value) {
			if strings.ContainsAny(cls, "${}") || seen[cls] {
				continue
			}
			seen[cls] = true
			out = append(out, cls)
		}
	}
	return out
}

// SignificantClasses filters AllClasses down to classes that look
// semantically meaningful.
func SignificantClasses(markup string) []string {
	var out []string
	for _, cls := range AllClasses(markup) {
		if IsSignificant(cls) {
			out = append(out, cls)
		}
	}
	return out
}

// IsSignificant reports whether a single class token is kept by
// SignificantClasses.
func IsSignificant(cls string) bool {
	if IsResponsive(cls) {
		return true
	}
	for _, marker := range semanticMarkers {
		if strings.Contains(cls, marker) {
			return true
		}
	}
	if spacingUtilRe.MatchString(cls) {
		return false
	}
	return len(cls) > 4
}

// IsResponsive reports whether cls carries a breakpoint prefix such as "md:".
func IsResponsive(cls string) bool {
	return responsiveRe.MatchString(cls)
}

// TagName returns the name of the first opening tag in markup, or "".
func TagName(markup string) string {
	m := tagNameRe.FindStringSubmatch(markup)
	if m == nil {
		return ""
	}
	return m[1]
}

// LeadingTagName returns the tag name only when the trimmed line starts with
// an opening tag.
func LeadingTagName(line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "<") {
		return ""
	}
	return TagName(trimmed)
}

// Intersect returns the members of want that are present in have, keeping
// the order of want.
func Intersect(want, have []string) []string {
	set := make(map[string]bool, len(have))
	for _, h := range have {
		set[h] = true
	}
	var out []string
	for _, w := range want {
		if set[w] {
			out = append(out, w)
		}
	}
	return out
}

// ContainsClass reports whether line holds cls as a whole class token, bounded
// by whitespace, quotes, braces, or the line edges.
func ContainsClass(line, cls string) bool {
	if cls == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(line[idx:], cls)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(cls)
		if isClassBoundary(line, start-1) && isClassBoundary(line, end) {
			return true
		}
		idx = start + 1
	}
}

func isClassBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	switch s[i] {
	case ' ', '\t', '"', '\'', '`', '{', '}':
		return true
	}
	return false
}
