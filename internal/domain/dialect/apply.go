package dialect

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

// ErrInvalidRange is returned when a line range does not fit the source.
var ErrInvalidRange = errors.New("invalid line range")

const maxPatternClasses = 3

// Apply substitutes fixed for original in source. A verbatim occurrence of
// original is replaced directly. Otherwise fixed is converted to JSX and
// placed over the single element whose tag and class attribute match the
// original's significant classes. When that element is missing or ambiguous
// the converted markup is returned unapplied for manual placement.
func Apply(source, original, fixed string) domain.ApplyResult {
	if original != "" && strings.Contains(source, original) {
		return domain.ApplyResult{
			Content: strings.Replace(source, original, fixed, 1),
			Applied: true,
			Method:  domain.MethodExact,
			Matches: strings.Count(source, original),
		}
	}

	transformed := ToJSX(fixed)
	re := ElementPattern(original)
	if re == nil {
		return domain.ApplyResult{Content: transformed, Method: domain.MethodNone}
	}

	matches := re.FindAllStringIndex(source, -1)
	if len(matches) != 1 {
		return domain.ApplyResult{Content: transformed, Method: domain.MethodNone, Matches: len(matches)}
	}
	m := matches[0]
	return domain.ApplyResult{
		Content: source[:m[0]] + transformed + source[m[1]:],
		Applied: true,
		Method:  domain.MethodClassPattern,
		Matches: 1,
	}
}

// ElementPattern builds a permissive regular expression matching an element
// with the original's tag whose class attribute contains its first three
// significant classes in order. It returns nil when original has no tag or
// no significant class.
func ElementPattern(original string) *regexp.Regexp {
	tag := extract.TagName(original)
	classes := extract.SignificantClasses(original)
	if tag == "" || len(classes) == 0 {
		return nil
	}
	if len(classes) > maxPatternClasses {
		classes = classes[:maxPatternClasses]
	}

	quoted := make([]string, len(classes))
	for i, c := range classes {
		quoted[i] = regexp.QuoteMeta(c)
	}
	const valueChars = "[^\"'`]*?"
	t := regexp.QuoteMeta(tag)

	pattern := `(?s)<` + t + `\b[^>]*?\bclass(?:Name)?\s*=\s*\{?\s*["'` + "`" + `]` +
		valueChars + strings.Join(quoted, valueChars) + valueChars +
		`["'` + "`" + `]\s*\}?[^>]*?(?:/>|>.*?</` + t + `>)`
	return regexp.MustCompile(pattern)
}

// ReplaceLines replaces the 1-based inclusive range [lineStart, lineEnd] of
// source with fixed converted to JSX, re-indented to the first replaced line.
func ReplaceLines(source string, lineStart, lineEnd int, fixed string) (domain.ApplyResult, error) {
	lines := strings.Split(source, "\n")
	if lineStart < 1 || lineEnd < lineStart || lineEnd > len(lines) {
		return domain.ApplyResult{}, fmt.Errorf("%w: lines %d-%d of %d", ErrInvalidRange, lineStart, lineEnd, len(lines))
	}

	first := lines[lineStart-1]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	eol := ""
	if strings.HasSuffix(first, "\r") {
		eol = "\r"
	}

	replacement := reindent(ToJSX(fixed), indent, eol)

	out := make([]string, 0, len(lines)-(lineEnd-lineStart+1)+len(replacement))
	out = append(out, lines[:lineStart-1]...)
	out = append(out, replacement...)
	out = append(out, lines[lineEnd:]...)

	return domain.ApplyResult{
		Content: strings.Join(out, "\n"),
		Applied: true,
		Method:  domain.MethodLines,
		Matches: 1,
	}, nil
}

// reindent strips the common leading whitespace of markup and prefixes every
// non-blank line with indent.
func reindent(markup, indent, eol string) []string {
	lines := strings.Split(strings.Trim(markup, "\r\n"), "\n")
	common := -1
	for _, l := range lines {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}
	if common < 0 {
		common = 0
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			out[i] = eol
			continue
		}
		out[i] = indent + l[common:] + eol
	}
	return out
}
