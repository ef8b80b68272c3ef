package diff

import (
	"regexp"
	"strconv"
	"strings"
)

type LineKind string

const (
	LineHeader  LineKind = "header"
	LineAdded   LineKind = "added"
	LineRemoved LineKind = "removed"
	LineContext LineKind = "context"
)

// Line is one display row derived from a DiffItem's diff content. OldLine and
// NewLine track the two sides independently; header rows carry neither.
type Line struct {
	Num     int
	Kind    LineKind
	Content string
	OldLine int
	NewLine int
}

var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// ParseLines classifies unified-diff text into display rows. The function is
// total: malformed input degrades to context/header rows rather than failing,
// and the output always has exactly one row per input line.
func ParseLines(diffText string) []Line {
	lines := strings.Split(diffText, "\n")
	rows := make([]Line, 0, len(lines))
	oldLine, newLine := 0, 0

	for i, raw := range lines {
		switch {
		case strings.HasPrefix(raw, "@@"):
			// A header that fails the numeric pattern keeps the prior counters.
			if m := hunkHeaderRegex.FindStringSubmatch(raw); len(m) >= 3 {
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				oldLine = a - 1
				newLine = b - 1
			}
			rows = append(rows, Line{Num: i + 1, Kind: LineHeader, Content: raw})
		case strings.HasPrefix(raw, "+") && !strings.HasPrefix(raw, "+++"):
			newLine++
			rows = append(rows, Line{Num: i + 1, Kind: LineAdded, Content: raw[1:], OldLine: oldLine, NewLine: newLine})
		case strings.HasPrefix(raw, "-") && !strings.HasPrefix(raw, "---"):
			oldLine++
			rows = append(rows, Line{Num: i + 1, Kind: LineRemoved, Content: raw[1:], OldLine: oldLine, NewLine: newLine})
		default:
			oldLine++
			newLine++
			rows = append(rows, Line{Num: i + 1, Kind: LineContext, Content: raw, OldLine: oldLine, NewLine: newLine})
		}
	}

	return rows
}

// Stats counts added and removed lines for the file-tab badges.
func Stats(diffText string) (added, removed int) {
	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			added++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			removed++
		}
	}
	return added, removed
}
