package github

import (
	"context"
	"strings"
	"time"

	gh "github.com/google/go-github/v41/github"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/matching"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

const apiRepoPrefix = "/repos/"

// convertIssue maps a platform issue record to a CandidateIssue. Records
// bearing a pull-request marker never become candidates. fullName is used
// when the record does not carry its repository URL (per-repo listings).
func (c *Client) convertIssue(ctx context.Context, issue *gh.Issue, fullName string) (model.CandidateIssue, bool) {
	if issue == nil || issue.ID == nil {
		return model.CandidateIssue{}, false
	}
	if issue.PullRequestLinks != nil {
		c.logSkippedIssue(ctx, issue.GetID(), issue.GetNumber(), "pull request")
		return model.CandidateIssue{}, false
	}

	repoName := fullName
	if repoName == "" {
		repoName = repoFromURL(issue.GetRepositoryURL())
	}
	if repoName == "" {
		c.logSkippedIssue(ctx, issue.GetID(), issue.GetNumber(), "unknown repository")
		return model.CandidateIssue{}, false
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	body := issue.GetBody()

	return model.CandidateIssue{
		ID:             issue.GetID(),
		Number:         issue.GetNumber(),
		Title:          issue.GetTitle(),
		Body:           body,
		URL:            issue.GetHTMLURL(),
		RepositoryName: repoName,
		RepositoryURL:  "https://github.com/" + repoName,
		Labels:         labels,
		CreatedAt:      formatTime(issue.GetCreatedAt()),
		UpdatedAt:      formatTime(issue.GetUpdatedAt()),
		Difficulty:     matching.ClassifyDifficulty(labels, body),
		MatchedSkills:  []string{},
		RelevanceScore: 0.0,
	}, true
}

// repoFromURL extracts "owner/repo" from an API repository URL such as
// https://api.github.com/repos/owner/repo.
func repoFromURL(url string) string {
	idx := strings.Index(url, apiRepoPrefix)
	if idx < 0 {
		return ""
	}
	name := url[idx+len(apiRepoPrefix):]
	if !strings.Contains(name, "/") {
		return ""
	}
	return name
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
