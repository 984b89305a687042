package types

import "time"

// Issue is the subset of a GitHub issue the dataset needs
type Issue struct {
	Number        int
	Title         string
	Body          string
	CreatedAt     time.Time
	Labels        []string
	IsPullRequest bool
}

// SkipReason explains why an issue produced no output file
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipPullRequest SkipReason = "pull_request"
	SkipAfterUntil  SkipReason = "after_until"
	SkipLabelCount  SkipReason = "label_count"
)

// Summary tallies one collection run
type Summary struct {
	Seen     int
	Written  int
	Skipped  map[SkipReason]int
	PerLabel map[string]int
}

func NewSummary() Summary {
	return Summary{
		Skipped:  make(map[SkipReason]int),
		PerLabel: make(map[string]int),
	}
}

// TotalSkipped returns the number of issues that were not written
func (s Summary) TotalSkipped() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}
