package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"issue-dataset/types"
)

// InitLabelDirs creates root/<label> for every label. Existing
// directories are left untouched.
func InitLabelDirs(root string, labels []string) error {
	for _, label := range labels {
		dir := filepath.Join(root, label)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create label directory %s: %w", dir, err)
		}
	}
	return nil
}

// IssuePath returns where an issue labelled label is stored under root
func IssuePath(root, label string, number int) string {
	return filepath.Join(root, label, strconv.Itoa(number)+".txt")
}

// Content is the text stored for an issue: title, newline, body
func Content(issue types.Issue) string {
	return issue.Title + "\n" + issue.Body
}

// WriteIssue stores the issue text under root/label, replacing any
// earlier file for the same issue number.
func WriteIssue(root, label string, issue types.Issue) (string, error) {
	path := IssuePath(root, label, issue.Number)
	if err := os.WriteFile(path, []byte(Content(issue)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write issue %d: %w", issue.Number, err)
	}
	return path, nil
}
