package github

import "testing"

func TestParsePullRequestURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    PRRef
		wantErr bool
	}{
		{
			name: "standard URL",
			url:  "https://github.com/golang/go/pull/12345",
			want: PRRef{Owner: "golang", Repo: "go", Number: 12345},
		},
		{
			name: "trailing slash",
			url:  "https://github.com/golang/go/pull/1/",
			want: PRRef{Owner: "golang", Repo: "go", Number: 1},
		},
		{
			name: "http scheme",
			url:  "http://github.com/a/b/pull/7",
			want: PRRef{Owner: "a", Repo: "b", Number: 7},
		},
		{
			name:    "issue URL",
			url:     "https://github.com/golang/go/issues/12345",
			wantErr: true,
		},
		{
			name:    "not github",
			url:     "https://gitlab.com/a/b/pull/1",
			wantErr: true,
		},
		{
			name:    "files subpage",
			url:     "https://github.com/a/b/pull/1/files",
			wantErr: true,
		},
		{
			name:    "empty string",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePullRequestURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePullRequestURL(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ParsePullRequestURL(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestPRRefString(t *testing.T) {
	ref := PRRef{Owner: "golang", Repo: "go", Number: 42}
	if got := ref.String(); got != "golang/go#42" {
		t.Errorf("String() = %q, want %q", got, "golang/go#42")
	}
}
