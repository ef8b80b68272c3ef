package ui

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType CommandType
		wantArgs []string
	}{
		{"quit short", ":q", CommandQuit, nil},
		{"quit long", ":quit", CommandQuit, nil},
		{"analyze with url", ":a https://github.com/a/b/pull/1", CommandAnalyze, []string{"https://github.com/a/b/pull/1"}},
		{"analyze long form", ":analyze https://github.com/a/b/pull/1", CommandAnalyze, []string{"https://github.com/a/b/pull/1"}},
		{"reviews", ":reviews", CommandReviews, nil},
		{"open alias", ":o", CommandReviews, nil},
		{"sessions alias", ":sessions", CommandReviews, nil},
		{"clear", ":clear", CommandClear, nil},
		{"stats", ":stats", CommandStats, nil},
		{"token", ":token ghp_x", CommandToken, []string{"ghp_x"}},
		{"logs", ":logs", CommandLogs, nil},
		{"logs short", ":l", CommandLogs, nil},
		{"help", ":h", CommandHelp, nil},
		{"unknown", ":bogus", CommandUnknown, nil},
		{"missing colon", "quit", CommandUnknown, nil},
		{"empty", "", CommandUnknown, nil},
		{"colon only", ":", CommandUnknown, nil},
		{"whitespace padded", "  :q  ", CommandQuit, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.input)
			if got.Type != tt.wantType {
				t.Errorf("ParseCommand(%q).Type = %v, want %v", tt.input, got.Type, tt.wantType)
			}
			if len(got.Args) != len(tt.wantArgs) {
				t.Fatalf("ParseCommand(%q).Args = %v, want %v", tt.input, got.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if got.Args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %q, want %q", i, got.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
