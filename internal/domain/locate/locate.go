// Package locate finds where an original markup snippet lives inside a source
// file written in a different dialect. The search is line oriented: three
// ordered strategies produce the primary location and an independent pass
// enumerates every plausible instance for navigation.
package locate

import (
	"strings"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

// Query holds the features extracted once from the original markup and
// shared by every strategy.
type Query struct {
	Original string
	Text     string
	Classes  []string
	Tag      string
}

// NewQuery extracts search features from original. When text is empty the
// visible text of original is used as the anchor.
func NewQuery(original, text string) Query {
	if text == "" {
		text = extract.TextContent(original)
	}
	return Query{
		Original: original,
		Text:     strings.TrimSpace(text),
		Classes:  extract.AllClasses(original),
		Tag:      extract.TagName(original),
	}
}

// WithSelector adds the class tokens of a CSS selector to the query's
// classes. Tokens already present are skipped.
func (q Query) WithSelector(selector string) Query {
	tokens := extract.ClassTokens(selector)
	if len(tokens) == 0 {
		return q
	}
	have := make(map[string]bool, len(q.Classes))
	classes := append([]string(nil), q.Classes...)
	for _, c := range classes {
		have[c] = true
	}
	for _, tok := range tokens {
		if !have[tok] {
			have[tok] = true
			classes = append(classes, tok)
		}
	}
	q.Classes = classes
	return q
}

// Strategy attempts to produce a primary location from the source lines.
// It returns nil when it cannot.
type Strategy func(lines []string, q Query) *domain.CodeLocation

// Strategies lists the location strategies in the order they are tried.
var Strategies = []Strategy{
	byTextAnchor,
	byClassCombination,
	byTagAndClass,
}

// Locate returns the region of source that best matches original, or nil
// when no strategy succeeds and a human must pick the lines. AllInstances is
// filled only when more than one candidate region exists.
func Locate(source, original, text string) *domain.CodeLocation {
	return Find(source, NewQuery(original, text))
}

// Find runs the strategies for a prepared query.
func Find(source string, q Query) *domain.CodeLocation {
	lines := SplitLines(source)

	var loc *domain.CodeLocation
	for _, strategy := range Strategies {
		if loc = strategy(lines, q); loc != nil {
			break
		}
	}
	if loc == nil {
		return nil
	}

	if instances := findInstances(lines, q); len(instances) > 1 {
		loc.AllInstances = instances
	}
	return loc
}

// SplitLines splits source on newlines, dropping carriage returns.
func SplitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// newLocation builds a CodeLocation from 0-based inclusive indexes.
func newLocation(lines []string, start, end int, level domain.MatchLevel, reason string, isComment bool) *domain.CodeLocation {
	return &domain.CodeLocation{
		LineStart:   start + 1,
		LineEnd:     end + 1,
		Confidence:  level,
		MatchedCode: strings.Join(lines[start:end+1], "\n"),
		Reason:      reason,
		IsComment:   isComment,
	}
}
