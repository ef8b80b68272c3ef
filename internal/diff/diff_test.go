package diff

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name     string
		diffText string
		want     []Line
	}{
		{
			name:     "empty input yields one empty context row",
			diffText: "",
			want: []Line{
				{Num: 1, Kind: LineContext, Content: "", OldLine: 1, NewLine: 1},
			},
		},
		{
			name:     "hunk header resets counters",
			diffText: "@@ -10,3 +20,5 @@\n context\n+added\n-removed",
			want: []Line{
				{Num: 1, Kind: LineHeader, Content: "@@ -10,3 +20,5 @@"},
				{Num: 2, Kind: LineContext, Content: " context", OldLine: 10, NewLine: 20},
				{Num: 3, Kind: LineAdded, Content: "added", OldLine: 10, NewLine: 21},
				{Num: 4, Kind: LineRemoved, Content: "removed", OldLine: 11, NewLine: 21},
			},
		},
		{
			name:     "hunk header without counts",
			diffText: "@@ -5 +7 @@\n line",
			want: []Line{
				{Num: 1, Kind: LineHeader, Content: "@@ -5 +7 @@"},
				{Num: 2, Kind: LineContext, Content: " line", OldLine: 5, NewLine: 7},
			},
		},
		{
			name:     "malformed hunk header keeps prior counters",
			diffText: "@@ -1,2 +1,3 @@\n a\n@@ bogus @@\n b",
			want: []Line{
				{Num: 1, Kind: LineHeader, Content: "@@ -1,2 +1,3 @@"},
				{Num: 2, Kind: LineContext, Content: " a", OldLine: 1, NewLine: 1},
				{Num: 3, Kind: LineHeader, Content: "@@ bogus @@"},
				{Num: 4, Kind: LineContext, Content: " b", OldLine: 2, NewLine: 2},
			},
		},
		{
			name:     "file markers are context not add or remove",
			diffText: "--- a/file.txt\n+++ b/file.txt",
			want: []Line{
				{Num: 1, Kind: LineContext, Content: "--- a/file.txt", OldLine: 1, NewLine: 1},
				{Num: 2, Kind: LineContext, Content: "+++ b/file.txt", OldLine: 2, NewLine: 2},
			},
		},
		{
			name:     "blank lines advance both counters",
			diffText: "@@ -1,3 +1,3 @@\n a\n\n c",
			want: []Line{
				{Num: 1, Kind: LineHeader, Content: "@@ -1,3 +1,3 @@"},
				{Num: 2, Kind: LineContext, Content: " a", OldLine: 1, NewLine: 1},
				{Num: 3, Kind: LineContext, Content: "", OldLine: 2, NewLine: 2},
				{Num: 4, Kind: LineContext, Content: " c", OldLine: 3, NewLine: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLines(tt.diffText)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLines() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLinesRowCountMatchesInput(t *testing.T) {
	inputs := []string{
		"",
		"no hunk headers at all",
		"@@ -1,1 +1,1 @@\n+a\n-b\n c\n",
		strings.Repeat("x\n", 100),
	}

	for _, in := range inputs {
		rows := ParseLines(in)
		want := len(strings.Split(in, "\n"))
		if len(rows) != want {
			t.Errorf("ParseLines(%q) produced %d rows, want %d", in, len(rows), want)
		}
	}
}

func TestParseLinesDeterministic(t *testing.T) {
	input := "@@ -3,2 +4,3 @@\n context\n+new\n-old\n tail"
	first := ParseLines(input)
	second := ParseLines(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("ParseLines is not deterministic for identical input")
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name        string
		diffText    string
		wantAdded   int
		wantRemoved int
	}{
		{
			name:        "counts adds and removes",
			diffText:    "@@ -1,2 +1,3 @@\n+one\n+two\n-three\n context",
			wantAdded:   2,
			wantRemoved: 1,
		},
		{
			name:        "file markers excluded",
			diffText:    "--- a/f\n+++ b/f\n+real add",
			wantAdded:   1,
			wantRemoved: 0,
		},
		{
			name:     "empty diff",
			diffText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := Stats(tt.diffText)
			if added != tt.wantAdded || removed != tt.wantRemoved {
				t.Errorf("Stats() = (%d, %d), want (%d, %d)", added, removed, tt.wantAdded, tt.wantRemoved)
			}
		})
	}
}
