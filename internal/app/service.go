// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/matching"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/profile"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/skills"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/retriever"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// MatchRequest carries the caller's matching parameters after transport
// decoding. Zero values select configured defaults.
type MatchRequest struct {
	Skills          []string
	ExperienceLevel string
	IssueTypes      []string
	MaxResults      int
}

// MatchResult is the outcome of one matching pass.
type MatchResult struct {
	Issues     []model.CandidateIssue
	TotalFound int
	Profile    *model.SkillsProfile
}

// Service sequences profile aggregation, issue retrieval, and relevance
// ranking for each request. Every request builds its own profile and
// candidate set; no mutable state is shared across concurrent requests.
type Service struct {
	mu sync.RWMutex

	// Core components, built in Start.
	aggregator *profile.Aggregator
	retriever  *retriever.Retriever
	scorer     *matching.Scorer

	// Wiring
	source   profile.Source
	searcher retriever.Searcher

	// Configuration
	defaultMaxResults   int
	maxResultsCap       int
	maxReposPerUser     int
	defaultIssueTypes   []string
	supportedIssueTypes map[string]struct{}
	retrieverOpts       []retriever.Option

	started bool

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultMaxResults: 20,
		maxResultsCap:     100,
		maxReposPerUser:   50,
		defaultIssueTypes: []string{"good first issue", "help wanted"},
		supportedIssueTypes: map[string]struct{}{
			"good first issue": {},
			"help wanted":      {},
		},
		logger: nil, // replaced in Start when unset
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the service components. It is idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.source == nil || s.searcher == nil {
		return fmt.Errorf("start service: platform source and searcher are required")
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.aggregator = profile.New(s.source,
		profile.WithMaxRepos(s.maxReposPerUser),
		profile.WithLogger(s.logger.Named("profile")),
	)
	s.retriever = retriever.New(s.searcher, s.retrieverOpts...)
	s.scorer = matching.New()

	s.started = true
	s.logger.Info(ctx, "issue matching service started",
		logger.Int("defaultMaxResults", s.defaultMaxResults),
		logger.Int("maxReposPerUser", s.maxReposPerUser),
	)
	return nil
}

// Stop marks the service stopped. There are no background loops to wind
// down; requests in flight complete on their own contexts.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "issue matching service stopped")
}

// MatchBySkills matches issues against an explicitly supplied skill list.
func (s *Service) MatchBySkills(ctx context.Context, req MatchRequest) (MatchResult, error) {
	if err := s.ready(); err != nil {
		return MatchResult{}, err
	}
	if len(req.Skills) == 0 {
		return MatchResult{}, ErrEmptySkills
	}

	prof := profileFromSkills(req.Skills, req.ExperienceLevel)
	issues := s.match(ctx, prof, req.IssueTypes, s.clampMaxResults(req.MaxResults))

	return MatchResult{Issues: issues, TotalFound: len(issues)}, nil
}

// MatchByUsername analyzes a platform user and matches issues against the
// inferred profile.
func (s *Service) MatchByUsername(ctx context.Context, username string, req MatchRequest) (MatchResult, error) {
	if err := s.ready(); err != nil {
		return MatchResult{}, err
	}

	prof, err := s.AnalyzeUser(ctx, username)
	if err != nil {
		return MatchResult{}, err
	}

	issues := s.match(ctx, prof, req.IssueTypes, s.clampMaxResults(req.MaxResults))

	return MatchResult{Issues: issues, TotalFound: len(issues), Profile: prof}, nil
}

// AnalyzeUser builds a skills profile for one platform user. Analysis
// failures (unknown user, zero repositories, platform errors) are wrapped
// in ErrAnalysisFailed.
func (s *Service) AnalyzeUser(ctx context.Context, username string) (*model.SkillsProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	prof, err := s.aggregator.Aggregate(ctx, username)
	if err != nil {
		metrics.RecordAnalysisFailure()
		s.logger.Warn(ctx, "user analysis failed",
			logger.String("username", username),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	metrics.RecordProfileAnalyzed()
	return prof, nil
}

// match runs retrieval and ranking for one profile. Retrieval failures
// inside the batch have already been skipped; an empty candidate list
// simply yields an empty result.
func (s *Service) match(ctx context.Context, prof *model.SkillsProfile, issueTypes []string, maxResults int) []model.CandidateIssue {
	start := time.Now()
	types := s.resolveIssueTypes(issueTypes)

	candidates := s.retriever.Retrieve(ctx, prof, types, maxResults)
	metrics.RecordIssuesRetrieved(len(candidates))
	metrics.RecordDuplicateIssues(countDuplicates(candidates))

	ranked := s.scorer.ScoreAndRank(ctx, candidates, prof, maxResults)
	metrics.RecordIssuesScored(len(candidates))
	metrics.RecordMatchesReturned(len(ranked))
	metrics.RecordMatchingLatency(float64(time.Since(start).Milliseconds()))

	topScore := 0.0
	if len(ranked) > 0 {
		topScore = ranked[0].RelevanceScore
	}
	s.logger.Debug(ctx, "matching pass complete",
		logger.Int("candidates", len(candidates)),
		logger.Int("ranked", len(ranked)),
		logger.Float64("topScore", topScore),
		logger.Any("issueTypes", types),
		logger.Duration("elapsed", time.Since(start)),
	)
	return ranked
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":             s.started,
		"defaultMaxResults":   s.defaultMaxResults,
		"maxResultsCap":       s.maxResultsCap,
		"maxReposPerUser":     s.maxReposPerUser,
		"defaultIssueTypes":   s.defaultIssueTypes,
		"supportedIssueTypes": len(s.supportedIssueTypes),
	}
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

func (s *Service) clampMaxResults(n int) int {
	if n <= 0 {
		return s.defaultMaxResults
	}
	if n > s.maxResultsCap {
		return s.maxResultsCap
	}
	return n
}

// resolveIssueTypes drops unsupported label filters and falls back to the
// configured defaults when nothing usable remains.
func (s *Service) resolveIssueTypes(requested []string) []string {
	var usable []string
	for _, t := range requested {
		if _, ok := s.supportedIssueTypes[strings.ToLower(t)]; ok {
			usable = append(usable, strings.ToLower(t))
		}
	}
	if len(usable) == 0 {
		return s.defaultIssueTypes
	}
	return usable
}

// profileFromSkills builds an explicit-request profile. Each skill is
// routed by the classifier's language predicate; unrecognized tags stay
// in the language set so they still feed language-scoped searches.
func profileFromSkills(skillList []string, experienceLevel string) *model.SkillsProfile {
	var languages, technologies []string
	seen := make(map[string]struct{}, len(skillList))
	for _, skill := range skillList {
		tag := strings.ToLower(strings.TrimSpace(skill))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if skills.IsTechnology(tag) {
			technologies = append(technologies, tag)
		} else {
			languages = append(languages, tag)
		}
	}

	tier := model.Tier(strings.ToLower(strings.TrimSpace(experienceLevel)))
	if !tier.Valid() {
		tier = model.TierIntermediate
	}

	return &model.SkillsProfile{
		Languages:       languages,
		Technologies:    technologies,
		ExperienceLevel: tier,
	}
}

func countDuplicates(issues []model.CandidateIssue) int {
	seen := make(map[int64]struct{}, len(issues))
	dups := 0
	for i := range issues {
		if _, ok := seen[issues[i].ID]; ok {
			dups++
			continue
		}
		seen[issues[i].ID] = struct{}{}
	}
	return dups
}
