package github

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

var pullRequestURLRegex = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/pull/(\d+)/?$`)

// PRRef identifies one pull request on GitHub.
type PRRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PRRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ParsePullRequestURL extracts the owner, repo and PR number from a GitHub
// pull request URL.
func ParsePullRequestURL(url string) (PRRef, error) {
	m := pullRequestURLRegex.FindStringSubmatch(url)
	if m == nil {
		return PRRef{}, fmt.Errorf("not a GitHub pull request URL: %s", url)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return PRRef{}, fmt.Errorf("invalid pull request number: %w", err)
	}

	return PRRef{Owner: m[1], Repo: m[2], Number: number}, nil
}

// PreviewClient fetches lightweight pull request metadata straight from
// GitHub, so a title and change summary can be shown while the backend is
// still importing the PR. A token is optional; without one, public repos
// still work within the unauthenticated rate limit.
type PreviewClient struct {
	client *github.Client
}

func NewPreviewClient(token string) *PreviewClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &PreviewClient{client: github.NewClient(httpClient)}
}

// Preview holds the subset of pull request metadata the UI shows before any
// diff content has arrived.
type Preview struct {
	Title        string
	Author       string
	ChangedFiles int
	Additions    int
	Deletions    int
}

func (c *PreviewClient) Fetch(ctx context.Context, ref PRRef) (*Preview, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	preview := &Preview{
		Title:        pr.GetTitle(),
		ChangedFiles: pr.GetChangedFiles(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
	}
	if pr.User != nil {
		preview.Author = pr.User.GetLogin()
	}
	return preview, nil
}
