package model

import "time"

// Release is the subset of a hosted release used for version calculation
type Release struct {
	TagName string
}

// Commit is the subset of hosted commit metadata used for version calculation
type Commit struct {
	Message       string
	CommitterDate time.Time
}

// PullRequest is the subset of a hosted pull request used for version
// calculation
type PullRequest struct {
	Number  int
	HeadRef string
	BaseRef string
	Labels  []string
}
