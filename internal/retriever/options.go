package retriever

import (
	"time"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
)

// Option applies a configuration option to the Retriever.
type Option func(*Retriever)

// WithPopularRepos sets the curated popular-repository table keyed by
// lower-cased language.
func WithPopularRepos(repos map[string][]string) Option {
	return func(r *Retriever) {
		if repos != nil {
			r.popularRepos = repos
		}
	}
}

// WithSkillLimits caps how many languages and technologies are searched.
func WithSkillLimits(languages, technologies int) Option {
	return func(r *Retriever) {
		if languages > 0 {
			r.maxLanguages = languages
		}
		if technologies > 0 {
			r.maxTechnologies = technologies
		}
	}
}

// WithRepoLimits caps the curated repositories per skill and the issues
// pulled per repository.
func WithRepoLimits(repos, issuesPerRepo int) Option {
	return func(r *Retriever) {
		if repos > 0 {
			r.popularRepoCount = repos
		}
		if issuesPerRepo > 0 {
			r.perRepoIssues = issuesPerRepo
		}
	}
}

// WithPerSkillTimeout bounds how long one skill's retrieval may take.
func WithPerSkillTimeout(d time.Duration) Option {
	return func(r *Retriever) {
		if d > 0 {
			r.perSkillTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the retriever.
func WithLogger(l logger.Logger) Option {
	return func(r *Retriever) {
		if l != nil {
			r.logger = l
		}
	}
}
