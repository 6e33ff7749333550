// Package profile aggregates per-repository and biography signals into a
// single skills summary for one user.
package profile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/experience"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/skills"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
)

// Default aggregation limits.
const (
	defaultMaxRepos   = 50
	activityRepoCount = 10
	activityWindow    = 365 * 24 * time.Hour
	hoursPerYear      = 365.25 * 24
)

// Source provides profile and repository data for one user.
type Source interface {
	// User fetches profile metadata for a username.
	User(ctx context.Context, username string) (model.User, error)

	// Repos lists up to limit of the user's own repositories,
	// most-recently-updated first.
	Repos(ctx context.Context, username string, limit int) ([]model.Repository, error)

	// Languages returns the language breakdown for one repository.
	Languages(ctx context.Context, owner, name string) (map[string]int, error)
}

// Aggregator builds a SkillsProfile from a Source.
type Aggregator struct {
	source   Source
	maxRepos int
	logger   logger.Logger
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithMaxRepos caps how many repositories are analyzed per user.
func WithMaxRepos(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxRepos = n
		}
	}
}

// WithLogger sets a custom logger for the aggregator.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New constructs an Aggregator over the given source.
func New(source Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		source:   source,
		maxRepos: defaultMaxRepos,
		logger:   logger.Named("profile"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate analyzes a user's repositories and bio into a SkillsProfile.
// It returns ErrNoRepositories when the user owns no repositories; other
// errors indicate the user could not be fetched at all. Per-repository
// lookup failures are skipped, never fatal.
func (a *Aggregator) Aggregate(ctx context.Context, username string) (*model.SkillsProfile, error) {
	user, err := a.source.User(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch user %q: %w", username, err)
	}

	repos, err := a.source.Repos(ctx, username, a.maxRepos)
	if err != nil {
		return nil, fmt.Errorf("list repositories for %q: %w", username, err)
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("analyze %q: %w", username, ErrNoRepositories)
	}

	languages := make(map[string]struct{})
	technologies := make(map[string]struct{})

	for _, repo := range repos {
		a.collectLanguages(ctx, repo, languages)
		a.collectTechnologies(repo, languages, technologies)
	}

	// Bio-derived tags are reclassified so technology mentions are never
	// miscounted as languages and vice versa.
	for _, tag := range skills.Classify(user.Bio) {
		addTag(tag, languages, technologies)
	}

	// Keep the namespaces disjoint: languages win.
	for lang := range languages {
		delete(technologies, lang)
	}

	tier := a.estimateTier(user, repos)

	return &model.SkillsProfile{
		Languages:       sortedTags(languages),
		Technologies:    sortedTags(technologies),
		ExperienceLevel: tier,
		ProfileStats: map[string]float64{
			"public_repos":      float64(user.PublicRepos),
			"followers":         float64(user.Followers),
			"following":         float64(user.Following),
			"account_age_years": accountAgeYears(user),
		},
	}, nil
}

// collectLanguages merges one repository's language breakdown, excluding
// the purely-markup languages html and css.
func (a *Aggregator) collectLanguages(ctx context.Context, repo model.Repository, languages map[string]struct{}) {
	breakdown, err := a.source.Languages(ctx, repo.Owner, repo.Name)
	if err != nil {
		a.logger.Debug(ctx, "skipping repository language lookup",
			logger.String("repository", repo.FullName),
			logger.Error(err),
		)
		return
	}
	for lang := range breakdown {
		lower := strings.ToLower(lang)
		if lower == "" || lower == "html" || lower == "css" {
			continue
		}
		languages[lower] = struct{}{}
	}
}

// collectTechnologies classifies a repository's name, description, and
// topics. Tags that are programming languages are merged into the
// language set.
func (a *Aggregator) collectTechnologies(repo model.Repository, languages, technologies map[string]struct{}) {
	for _, tag := range skills.Classify(repo.Name) {
		addTag(tag, languages, technologies)
	}
	for _, tag := range skills.Classify(repo.Description) {
		addTag(tag, languages, technologies)
	}
	for _, topic := range repo.Topics {
		if skills.IsKnown(topic) {
			addTag(strings.ToLower(topic), languages, technologies)
		}
	}
}

// estimateTier derives the experience tier. Missing timestamps degrade to
// the intermediate default rather than failing the analysis.
func (a *Aggregator) estimateTier(user model.User, repos []model.Repository) model.Tier {
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		return model.TierIntermediate
	}

	active := 0
	considered := repos
	if len(considered) > activityRepoCount {
		considered = considered[:activityRepoCount]
	}
	for _, repo := range considered {
		if repo.UpdatedAt.IsZero() {
			continue
		}
		if user.UpdatedAt.Sub(repo.UpdatedAt) <= activityWindow {
			active++
		}
	}

	return experience.Estimate(accountAgeYears(user), user.PublicRepos, user.Followers, active)
}

func accountAgeYears(user model.User) float64 {
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		return 0
	}
	return user.UpdatedAt.Sub(user.CreatedAt).Hours() / hoursPerYear
}

func addTag(tag string, languages, technologies map[string]struct{}) {
	if skills.IsProgrammingLanguage(tag) {
		languages[tag] = struct{}{}
		return
	}
	technologies[tag] = struct{}{}
}

func sortedTags(set map[string]struct{}) []string {
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
