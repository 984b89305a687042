package repository

import (
	"issue-dataset/packages/config"
	"issue-dataset/types"
)

// MatchLabels returns the issue labels that are part of the vocabulary,
// in issue order and without duplicates. Comparison is exact.
func MatchLabels(issueLabels, vocabulary []string) []string {
	wanted := make(map[string]bool, len(vocabulary))
	for _, l := range vocabulary {
		wanted[l] = true
	}

	var matched []string
	seen := make(map[string]bool)
	for _, l := range issueLabels {
		if !wanted[l] || seen[l] {
			continue
		}
		seen[l] = true
		matched = append(matched, l)
	}
	return matched
}

// Classify decides whether an issue belongs in the dataset. It returns the
// single matching label and SkipNone when the issue is kept.
func Classify(issue types.Issue, cfg *config.Config) (string, types.SkipReason) {
	if issue.IsPullRequest {
		return "", types.SkipPullRequest
	}
	if issue.CreatedAt.After(cfg.Until) {
		return "", types.SkipAfterUntil
	}

	matched := MatchLabels(issue.Labels, cfg.Labels)
	if len(matched) != 1 {
		return "", types.SkipLabelCount
	}
	return matched[0], types.SkipNone
}
