package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
	"github.com/abdidvp/fixspot/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	levelColors = map[domain.MatchLevel]lipgloss.Color{
		domain.LevelHigh:   success,
		domain.LevelMedium: lime,
		domain.LevelLow:    warning,
		domain.LevelNone:   danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	insertStyle   = lipgloss.NewStyle().Foreground(success).Underline(true)
	deleteStyle   = lipgloss.NewStyle().Foreground(danger).Strikethrough(true)
	gutterStyle   = lipgloss.NewStyle().Foreground(faint)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderLocation formats a located fix region with its code excerpt and any
// alternative instances.
func RenderLocation(path string, loc *domain.CodeLocation) string {
	var b strings.Builder
	b.WriteString("\n")

	if loc == nil {
		b.WriteString("  " + failStyle.Render("No location found") + " " + fileStyle.Render(path) + "\n")
		return b.String()
	}

	header := headerStyle.Render("fixspot") + "  " + fileStyle.Render(fmt.Sprintf("%s:%d-%d", path, loc.LineStart, loc.LineEnd))
	summary := levelTag(loc.Confidence) + "  " + dimStyle.Render(loc.Reason)
	if loc.IsComment {
		summary += "  " + warnStyle.Render("inside comment")
	}
	b.WriteString(boxStyle.Render(header + "\n" + summary))
	b.WriteString("\n\n")

	for i, line := range strings.Split(loc.MatchedCode, "\n") {
		gutter := gutterStyle.Render(fmt.Sprintf("%5d │", loc.LineStart+i))
		fmt.Fprintf(&b, "  %s %s\n", gutter, line)
	}

	if len(loc.AllInstances) > 1 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render(fmt.Sprintf("%d instances", len(loc.AllInstances))) + "\n")
		for i, inst := range loc.AllInstances {
			marker := dimStyle.Render("○")
			if inst.LineStart == loc.LineStart {
				marker = passStyle.Render("●")
			}
			note := ""
			if inst.IsComment {
				note = "  " + faintStyle.Render("comment")
			}
			fmt.Fprintf(&b, "    %s %d. lines %d-%d%s\n", marker, i+1, inst.LineStart, inst.LineEnd, note)
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderRanking formats ranked candidate files, best match first.
func RenderRanking(files []domain.RankedFile) string {
	if len(files) == 0 {
		return "  " + dimStyle.Render("No candidate files found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Candidate files") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, f := range files {
		c := f.Confidence
		score := lipgloss.NewStyle().Bold(true).Foreground(levelColor(c.Level)).Render(fmt.Sprintf("%3d", c.Score))
		best := "  "
		if f.IsBestMatch {
			best = passStyle.Render("★ ")
		}
		fmt.Fprintf(&b, "  %s%s %s  %s\n", best, score, coloredBar(c.Score, 20), fileStyle.Render(shortenPath(f.Path)))
		fmt.Fprintf(&b, "         %s\n", faintStyle.Render(c.Details))
	}

	b.WriteString("\n")
	return b.String()
}

// RenderApply formats the outcome of applying a fix, including the unified
// patch when one was produced.
func RenderApply(path string, result domain.ApplyResult, diff string) string {
	var b strings.Builder
	b.WriteString("\n")

	if !result.Applied {
		reason := "original markup not found"
		if result.Matches > 1 {
			reason = fmt.Sprintf("%d elements match, refusing to guess", result.Matches)
		}
		b.WriteString("  " + warnStyle.Render("Not applied") + "  " + dimStyle.Render(reason) + "\n")
		b.WriteString("  " + dimStyle.Render("Transformed markup to place manually:") + "\n\n")
		for _, line := range strings.Split(result.Content, "\n") {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  " + passStyle.Render("Applied") + " " + fileStyle.Render(path) + "  " + dimStyle.Render("via "+result.Method) + "\n\n")
	if diff != "" {
		b.WriteString(RenderUnified(diff))
	}
	return b.String()
}

// RenderUnified colors a unified diff line by line.
func RenderUnified(diff string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString("  " + titleStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString("  " + headerStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString("  " + passStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString("  " + failStyle.Render(line))
		default:
			b.WriteString("  " + dimStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSnippetDiff shows the inline character edit from the original markup
// to the fixed markup.
func RenderSnippetDiff(segs []patch.Segment) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, s := range segs {
		switch s.Op {
		case patch.OpInsert:
			b.WriteString(insertStyle.Render(s.Text))
		case patch.OpDelete:
			b.WriteString(deleteStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderPreference formats the remembered repository for a host.
func RenderPreference(host string, pref domain.RepoPreference, found bool) string {
	if !found {
		return "  " + dimStyle.Render("No repository remembered for ") + titleStyle.Render(host) + "\n"
	}
	return "  " + titleStyle.Render(host) + " " + faintStyle.Render("→") + " " + passStyle.Render(pref.FullName()) + "\n"
}

// RenderPreferences formats every stored host mapping, sorted by host.
func RenderPreferences(hosts []string, prefs map[string]domain.RepoPreference) string {
	if len(hosts) == 0 {
		return "  " + dimStyle.Render("No preferences stored.") + "\n"
	}
	var b strings.Builder
	for _, h := range hosts {
		b.WriteString(RenderPreference(h, prefs[h], true))
	}
	return b.String()
}

func levelTag(level domain.MatchLevel) string {
	return lipgloss.NewStyle().Bold(true).Foreground(levelColor(level)).Render(string(level))
}

func levelColor(level domain.MatchLevel) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return fg
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := levelColor(domain.LevelFor(score))
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func shortenPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) > 4 {
		return "…/" + strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}
