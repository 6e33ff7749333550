package github

import (
	"context"
	"strings"
	"time"

	gh "github.com/google/go-github/v41/github"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
)

const searchPerPage = 100

// SearchIssues runs a full-text/label search and converts up to limit
// non-pull-request results, most recently updated first. Items that fail
// conversion are skipped individually.
func (c *Client) SearchIssues(ctx context.Context, query string, limit int) ([]model.CandidateIssue, error) {
	opts := &gh.SearchOptions{
		Sort:  "updated",
		Order: "desc",
		ListOptions: gh.ListOptions{
			PerPage: perPage(limit, searchPerPage),
		},
	}

	start := time.Now()
	result, _, err := c.client.Search.Issues(ctx, query, opts)
	observe("search.issues", start, err)
	if err != nil {
		return nil, wrapAPIError("search issues", err)
	}

	issues := make([]model.CandidateIssue, 0, limit)
	for _, item := range result.Issues {
		if len(issues) >= limit {
			break
		}
		candidate, ok := c.convertIssue(ctx, item, "")
		if !ok {
			continue
		}
		issues = append(issues, candidate)
	}
	return issues, nil
}

// RepoIssues lists up to limit open issues from one repository matching
// any of the given labels.
func (c *Client) RepoIssues(ctx context.Context, fullName string, labels []string, limit int) ([]model.CandidateIssue, error) {
	owner, name, ok := splitRepo(fullName)
	if !ok {
		return nil, ErrInvalidRepository
	}

	opts := &gh.IssueListByRepoOptions{
		State:  "open",
		Labels: labels,
		ListOptions: gh.ListOptions{
			PerPage: perPage(limit, searchPerPage),
		},
	}

	start := time.Now()
	page, _, err := c.client.Issues.ListByRepo(ctx, owner, name, opts)
	observe("issues.list_by_repo", start, err)
	if err != nil {
		return nil, wrapAPIError("list repository issues", err)
	}

	issues := make([]model.CandidateIssue, 0, limit)
	for _, item := range page {
		if len(issues) >= limit {
			break
		}
		candidate, ok := c.convertIssue(ctx, item, fullName)
		if !ok {
			continue
		}
		issues = append(issues, candidate)
	}
	return issues, nil
}

func (c *Client) logSkippedIssue(ctx context.Context, id int64, number int, reason string) {
	c.logger.Debug(ctx, "skipping search result",
		logger.Int64("id", id),
		logger.Int("number", number),
		logger.String("reason", reason),
	)
}

func splitRepo(fullName string) (owner, name string, ok bool) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
