// Package patch renders reviewable diffs of applied fixes. Whole-file
// previews use go-difflib unified hunks; snippet comparisons use
// diffmatchpatch character diffs.
package patch

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/abdidvp/fixspot/internal/domain"
)

// Op classifies a snippet diff segment.
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Segment is one run of a character-level snippet diff.
type Segment struct {
	Op   Op
	Text string
}

// Renderer implements domain.PatchRenderer.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Unified returns a unified diff of before→after labelled a/path and
// b/path, or "" when the contents are identical.
func (r *Renderer) Unified(path, before, after string, context int) string {
	if before == after {
		return ""
	}
	if context <= 0 {
		context = domain.DefaultDiffContext
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(before),
		B:        splitLinesKeepNL(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  context,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

// SnippetDiff returns the character-level edit from original to fixed,
// cleaned up for human reading.
func SnippetDiff(original, fixed string) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, fixed, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	out := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		default:
			op = OpEqual
		}
		out = append(out, Segment{Op: op, Text: d.Text})
	}
	return out
}

// splitLinesKeepNL splits s into lines that keep their trailing newline.
// A final line without one gets it added so difflib hunks stay well formed.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	last := len(lines) - 1
	if !strings.HasSuffix(lines[last], "\n") {
		lines[last] += "\n"
	}
	return lines
}
