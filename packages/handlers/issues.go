package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"issue-dataset/packages/config"
	"issue-dataset/packages/dataset"
	"issue-dataset/packages/repository"
	"issue-dataset/types"
)

// Collector turns the issues of one repository into a labelled text dataset
type Collector struct {
	Lister    repository.IssueLister
	Config    *config.Config
	OutputDir string
	Logger    *slog.Logger
}

// Run fetches, filters and writes every issue, returning what was done.
// Skipped issues are not errors; API and filesystem failures are.
func (c *Collector) Run(ctx context.Context) (types.Summary, error) {
	summary := types.NewSummary()
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := c.Config

	if err := dataset.InitLabelDirs(c.OutputDir, cfg.Labels); err != nil {
		return summary, err
	}

	logger.Info("Getting issue labels", "since", cfg.Since, "until", cfg.Until)
	logger.Info("Querying repo", "repo", cfg.Repo, "state", cfg.State)

	opts := repository.ListOptions{State: cfg.State, Since: cfg.Since}
	err := c.Lister.ForEachIssue(ctx, cfg.Owner(), cfg.Name(), opts, func(issue types.Issue) error {
		summary.Seen++
		return c.handleIssue(logger, issue, &summary)
	})
	if err != nil {
		return summary, fmt.Errorf("collecting issues from %s: %w", cfg.Repo, err)
	}

	logger.Info("Collection finished",
		"seen", summary.Seen,
		"written", summary.Written,
		"skipped", summary.TotalSkipped())
	return summary, nil
}

func (c *Collector) handleIssue(logger *slog.Logger, issue types.Issue, summary *types.Summary) error {
	label, reason := repository.Classify(issue, c.Config)
	if reason != types.SkipNone {
		logger.Debug("Skipping issue",
			"issueNumber", issue.Number,
			"issueTitle", issue.Title,
			"reason", string(reason),
			"createdAt", issue.CreatedAt,
			"labels", issue.Labels)
		summary.Skipped[reason]++
		return nil
	}

	logger.Info("Writing issue",
		"issueNumber", issue.Number,
		"label", label,
		"title", issue.Title)
	logger.Debug("Issue body", "issueNumber", issue.Number, "body", issue.Body)

	path, err := dataset.WriteIssue(c.OutputDir, label, issue)
	if err != nil {
		return err
	}
	logger.Debug("Issue written", "path", path)

	summary.Written++
	summary.PerLabel[label]++
	return nil
}
