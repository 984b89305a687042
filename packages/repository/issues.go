package repository

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"issue-dataset/types"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

const perPage = 100

// ListOptions narrows the issues returned by the server
type ListOptions struct {
	State string
	Since time.Time
}

// IssueLister streams the issues of a repository
type IssueLister interface {
	ForEachIssue(ctx context.Context, owner, repo string, opts ListOptions, fn func(types.Issue) error) error
}

// GitHubIssues lists issues through the GitHub REST API
type GitHubIssues struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient builds a GitHub client. An empty token gives anonymous,
// rate-limited access. apiURL, when set, replaces the public endpoint.
func NewClient(ctx context.Context, token, apiURL string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		base, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid api url %q: %w", apiURL, err)
		}
		client.BaseURL = base
	}
	return client, nil
}

// NewGitHubIssues wraps client. A nil logger means slog.Default().
func NewGitHubIssues(client *github.Client, logger *slog.Logger) *GitHubIssues {
	if logger == nil {
		logger = slog.Default()
	}
	return &GitHubIssues{client: client, logger: logger}
}

// ForEachIssue calls fn for every issue matching opts, one page at a time.
// Iteration stops at the first error from the API or from fn.
func (g *GitHubIssues) ForEachIssue(ctx context.Context, owner, repo string, opts ListOptions, fn func(types.Issue) error) error {
	listOpts := &github.IssueListByRepoOptions{
		State: opts.State,
		Since: opts.Since,
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	for pageNum := 1; ; pageNum++ {
		page, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, listOpts)
		if err != nil {
			return fmt.Errorf("failed to list issues for %s/%s: %w", owner, repo, err)
		}
		g.logger.Debug("Fetched issue page", "repo", owner+"/"+repo, "page", pageNum, "count", len(page))

		for _, ghIssue := range page {
			if err := fn(ConvertIssue(ghIssue)); err != nil {
				return err
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return nil
		}
		listOpts.Page = resp.NextPage
	}
}

// ConvertIssue maps a go-github issue onto types.Issue
func ConvertIssue(gh *github.Issue) types.Issue {
	issue := types.Issue{
		Number:        gh.GetNumber(),
		Title:         gh.GetTitle(),
		Body:          gh.GetBody(),
		CreatedAt:     gh.GetCreatedAt(),
		IsPullRequest: gh.PullRequestLinks != nil,
	}
	for _, label := range gh.Labels {
		if label.Name != nil {
			issue.Labels = append(issue.Labels, *label.Name)
		}
	}
	return issue
}
