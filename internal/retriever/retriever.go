// Package retriever gathers candidate issues from the platform for each
// skill in a profile.
package retriever

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
)

// Default retrieval limits.
const (
	defaultMaxLanguages     = 5
	defaultMaxTechnologies  = 3
	defaultPopularRepoCount = 3
	defaultPerRepoIssues    = 5
	defaultPerSkillTimeout  = 15 * time.Second
)

// repoIssueLabels are the labels usable when listing issues directly from
// a curated repository.
var repoIssueLabels = map[string]struct{}{
	"good first issue": {},
	"help wanted":      {},
	"bug":              {},
}

// Searcher executes issue queries against the external platform.
type Searcher interface {
	// SearchIssues runs a full-text/label search and converts up to limit
	// non-pull-request results.
	SearchIssues(ctx context.Context, query string, limit int) ([]model.CandidateIssue, error)

	// RepoIssues lists up to limit open issues from one repository
	// matching any of the given labels.
	RepoIssues(ctx context.Context, fullName string, labels []string, limit int) ([]model.CandidateIssue, error)
}

// Retriever fans out per-skill searches and collects raw candidates.
type Retriever struct {
	searcher         Searcher
	popularRepos     map[string][]string
	maxLanguages     int
	maxTechnologies  int
	popularRepoCount int
	perRepoIssues    int
	perSkillTimeout  time.Duration
	logger           logger.Logger
}

// New constructs a Retriever over the given searcher.
func New(searcher Searcher, opts ...Option) *Retriever {
	r := &Retriever{
		searcher:         searcher,
		popularRepos:     map[string][]string{},
		maxLanguages:     defaultMaxLanguages,
		maxTechnologies:  defaultMaxTechnologies,
		popularRepoCount: defaultPopularRepoCount,
		perRepoIssues:    defaultPerRepoIssues,
		perSkillTimeout:  defaultPerSkillTimeout,
		logger:           logger.Named("retriever"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type skillQuery struct {
	skill    string
	language bool
	budget   int
}

// Retrieve collects candidate issues for the profile's top languages and
// technologies. Searches run concurrently with a per-skill time budget;
// the pre-deduplication order of results is unspecified. A failing lookup
// for one skill or one repository is logged and skipped, never fatal.
func (r *Retriever) Retrieve(ctx context.Context, profile *model.SkillsProfile, issueTypes []string, maxResults int) []model.CandidateIssue {
	queries := r.planQueries(profile, maxResults)
	if len(queries) == 0 {
		return nil
	}

	results := make(chan []model.CandidateIssue, len(queries))
	var wg sync.WaitGroup
	for _, q := range queries {
		wg.Add(1)
		go func(q skillQuery) {
			defer wg.Done()
			results <- r.retrieveSkill(ctx, q, issueTypes)
		}(q)
	}
	wg.Wait()
	close(results)

	var all []model.CandidateIssue
	for batch := range results {
		all = append(all, batch...)
	}
	return all
}

// planQueries selects the skills to search and allocates the result
// budget proportionally: every skill gets total/n, the remainder goes
// one-each to the earliest skills, and nobody drops below 1.
func (r *Retriever) planQueries(profile *model.SkillsProfile, maxResults int) []skillQuery {
	var queries []skillQuery
	for _, lang := range capSlice(profile.Languages, r.maxLanguages) {
		queries = append(queries, skillQuery{skill: lang, language: true})
	}
	for _, tech := range capSlice(profile.Technologies, r.maxTechnologies) {
		queries = append(queries, skillQuery{skill: tech})
	}

	n := len(queries)
	if n == 0 {
		return nil
	}
	base := maxResults / n
	rem := maxResults % n
	for i := range queries {
		budget := base
		if i < rem {
			budget++
		}
		if budget < 1 {
			budget = 1
		}
		queries[i].budget = budget
	}
	return queries
}

// retrieveSkill runs the general search plus the curated-repository
// supplement for one skill.
func (r *Retriever) retrieveSkill(parent context.Context, q skillQuery, issueTypes []string) []model.CandidateIssue {
	ctx, cancel := context.WithTimeout(parent, r.perSkillTimeout)
	defer cancel()

	var out []model.CandidateIssue

	query := buildQuery(q.skill, q.language, issueTypes)
	found, err := r.searcher.SearchIssues(ctx, query, q.budget)
	if err != nil {
		r.logger.Warn(ctx, "issue search failed",
			logger.String("skill", q.skill),
			logger.Error(err),
		)
	} else {
		out = append(out, found...)
	}

	labels := filterRepoLabels(issueTypes)
	for _, repo := range capSlice(r.popularRepos[strings.ToLower(q.skill)], r.popularRepoCount) {
		issues, err := r.searcher.RepoIssues(ctx, repo, labels, r.perRepoIssues)
		if err != nil {
			r.logger.Debug(ctx, "curated repository lookup failed",
				logger.String("repository", repo),
				logger.Error(err),
			)
			continue
		}
		out = append(out, issues...)
	}

	// Record which query produced each candidate. Content-based skill
	// matching happens later, in the scorer.
	for i := range out {
		out[i].SourceSkills = []string{q.skill}
	}
	return out
}

// buildQuery conjoins the skill filter, the OR-ed label filters, and the
// open-state filter into one search expression.
func buildQuery(skill string, language bool, issueTypes []string) string {
	var sb strings.Builder
	if language {
		fmt.Fprintf(&sb, "language:%s", skill)
	} else {
		fmt.Fprintf(&sb, "%q in:title,body", skill)
	}
	if len(issueTypes) > 0 {
		quoted := make([]string, len(issueTypes))
		for i, t := range issueTypes {
			quoted[i] = fmt.Sprintf("%q", t)
		}
		fmt.Fprintf(&sb, " label:%s", strings.Join(quoted, ","))
	}
	sb.WriteString(" state:open")
	return sb.String()
}

func filterRepoLabels(issueTypes []string) []string {
	var labels []string
	for _, t := range issueTypes {
		if _, ok := repoIssueLabels[strings.ToLower(t)]; ok {
			labels = append(labels, t)
		}
	}
	return labels
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
