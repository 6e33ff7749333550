// Package matching converts heterogeneous match signals into a single
// ranked list of candidate issues.
package matching

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/dedupe"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

// Additive scoring weights.
const (
	languageMatchPoints    = 2.0
	technologyMatchPoints  = 1.5
	goodFirstIssuePoints   = 3.0
	helpWantedPoints       = 2.0
	bugPoints              = 1.0
	enhancementPoints      = 1.5
	difficultyExactPoints  = 2.0
	difficultyStepUpPoints = 1.0
	recencyWeekPoints      = 1.0
	recencyMonthPoints     = 0.5

	recencyWeek  = 7
	recencyMonth = 30
)

// Scorer deduplicates, scores, and ranks candidate issues against a
// skills profile. It holds no per-request state and is safe for
// concurrent use.
type Scorer struct {
	now func() time.Time
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithNow overrides the clock used for recency scoring.
func WithNow(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Scorer.
func New(opts ...Option) *Scorer {
	s := &Scorer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreAndRank deduplicates issues by ID (first seen wins), scores each
// against the profile, and returns a new slice sorted by relevance score,
// strictly non-increasing, truncated to maxResults. Ties preserve input
// order. Input elements are never mutated; scored copies are returned.
// An empty input yields an empty result, never an error.
func (s *Scorer) ScoreAndRank(ctx context.Context, issues []model.CandidateIssue, profile *model.SkillsProfile, maxResults int) []model.CandidateIssue {
	seen := dedupe.New(dedupe.WithCapacityHint(len(issues)))

	scored := make([]model.CandidateIssue, 0, len(issues))
	for i := range issues {
		if seen.SeenAndRecord(ctx, issues[i].ID) {
			continue
		}
		scored = append(scored, s.score(issues[i], profile))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if maxResults >= 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// score computes the relevance of one issue. It returns a scored copy:
// the original candidate is left untouched so concurrent retrieval never
// races with scoring.
func (s *Scorer) score(issue model.CandidateIssue, profile *model.SkillsProfile) model.CandidateIssue {
	if issue.Difficulty == "" {
		issue.Difficulty = ClassifyDifficulty(issue.Labels, issue.Body)
	}

	var score float64
	content := strings.ToLower(issue.Title + " " + issue.Body)

	matched := make([]string, 0, len(profile.Languages)+len(profile.Technologies))
	for _, lang := range profile.Languages {
		if strings.Contains(content, strings.ToLower(lang)) {
			score += languageMatchPoints
			matched = append(matched, lang)
		}
	}
	for _, tech := range profile.Technologies {
		if strings.Contains(content, strings.ToLower(tech)) {
			score += technologyMatchPoints
			matched = append(matched, tech)
		}
	}

	score += labelScore(issue.Labels, profile.ExperienceLevel)
	score += difficultyAlignmentScore(issue.Difficulty, profile.ExperienceLevel)
	score += s.recencyScore(issue.UpdatedAt)

	issue.MatchedSkills = matched
	issue.RelevanceScore = score
	return issue
}

// labelScore sums the label bonuses. The bonuses are independent and
// additive: a label matching several categories contributes each
// applicable bonus once per occurrence in the label list.
func labelScore(labels []string, tier model.Tier) float64 {
	var score float64
	for _, label := range labels {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "good first issue") &&
			(tier == model.TierBeginner || tier == model.TierIntermediate) {
			score += goodFirstIssuePoints
		}
		if strings.Contains(lower, "help wanted") {
			score += helpWantedPoints
		}
		if strings.Contains(lower, "bug") {
			score += bugPoints
		}
		if strings.Contains(lower, "enhancement") || strings.Contains(lower, "feature") {
			score += enhancementPoints
		}
	}
	return score
}

// difficultyAlignmentScore rewards an exact difficulty/experience match,
// or an issue one step below the profile's level. At most one of the two
// bonuses fires.
func difficultyAlignmentScore(difficulty model.Difficulty, tier model.Tier) float64 {
	if string(difficulty) == string(tier) {
		return difficultyExactPoints
	}
	stepUp := (difficulty == model.DifficultyBeginner &&
		(tier == model.TierIntermediate || tier == model.TierAdvanced)) ||
		(difficulty == model.DifficultyIntermediate &&
			(tier == model.TierAdvanced || tier == model.TierExpert))
	if stepUp {
		return difficultyStepUpPoints
	}
	return 0
}

// recencyScore rewards recently-updated issues. A malformed timestamp
// silently skips the bonus; it never fails the scoring pass.
func (s *Scorer) recencyScore(updatedAt string) float64 {
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return 0
	}
	days := s.now().Sub(t).Hours() / 24
	switch {
	case days <= recencyWeek:
		return recencyWeekPoints
	case days <= recencyMonth:
		return recencyMonthPoints
	default:
		return 0
	}
}
