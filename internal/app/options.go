package app

import (
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/profile"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/retriever"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProfileSource sets the platform source used for profile analysis.
func WithProfileSource(source profile.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithSearcher sets the platform searcher used for issue retrieval.
func WithSearcher(searcher retriever.Searcher) Option {
	return func(s *Service) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResultCaps sets the default and maximum result counts per request.
func WithResultCaps(defaultMax, cap int) Option {
	return func(s *Service) {
		if defaultMax > 0 {
			s.defaultMaxResults = defaultMax
		}
		if cap >= s.defaultMaxResults {
			s.maxResultsCap = cap
		}
	}
}

// WithMaxReposPerUser caps how many repositories are analyzed per user.
func WithMaxReposPerUser(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxReposPerUser = n
		}
	}
}

// WithIssueTypes sets the supported label filters and the defaults used
// when a request names none.
func WithIssueTypes(supported, defaults []string) Option {
	return func(s *Service) {
		if len(supported) > 0 {
			set := make(map[string]struct{}, len(supported))
			for _, t := range supported {
				set[t] = struct{}{}
			}
			s.supportedIssueTypes = set
		}
		if len(defaults) > 0 {
			s.defaultIssueTypes = defaults
		}
	}
}

// WithRetrieverOptions forwards options to the retriever built in Start.
func WithRetrieverOptions(opts ...retriever.Option) Option {
	return func(s *Service) {
		s.retrieverOpts = append(s.retrieverOpts, opts...)
	}
}
