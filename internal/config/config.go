// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Debug enables verbose request logging.
	Debug bool `koanf:"debug"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// GitHubToken authenticates platform calls. May be empty: the
	// service then degrades under unauthenticated rate limits.
	GitHubToken string `koanf:"github_token"`

	// DefaultMaxResults is the result cap applied when a request does
	// not specify one; MaxResultsCap bounds what a caller may request.
	DefaultMaxResults int `koanf:"default_max_results"`
	MaxResultsCap     int `koanf:"max_results_cap"`

	// MaxReposPerUser caps how many repositories are analyzed per user.
	MaxReposPerUser int `koanf:"max_repos_per_user"`

	// PopularReposPerSkill and IssuesPerRepo bound the curated-repository
	// supplement during retrieval.
	PopularReposPerSkill int `koanf:"popular_repos_per_skill"`
	IssuesPerRepo        int `koanf:"issues_per_repo"`

	// MaxSearchLanguages and MaxSearchTechnologies cap how many profile
	// skills get their own search.
	MaxSearchLanguages    int `koanf:"max_search_languages"`
	MaxSearchTechnologies int `koanf:"max_search_technologies"`

	// PerSkillTimeoutMS bounds one skill's retrieval wall-clock time.
	PerSkillTimeoutMS int `koanf:"per_skill_timeout_ms"`

	// SupportedIssueTypes whitelists the label filters callers may
	// request; DefaultIssueTypes applies when a request names none.
	SupportedIssueTypes []string `koanf:"supported_issue_types"`
	DefaultIssueTypes   []string `koanf:"default_issue_types"`

	// PopularRepositories is the curated repository table keyed by
	// lower-cased language. Read-only after load.
	PopularRepositories map[string][]string `koanf:"popular_repositories"`
}

// PerSkillTimeout returns the per-skill retrieval budget as a duration.
func (c *Config) PerSkillTimeout() time.Duration {
	return time.Duration(c.PerSkillTimeoutMS) * time.Millisecond
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Debug:                 false,
		Addr:                  ":8000",
		DefaultMaxResults:     20,
		MaxResultsCap:         100,
		MaxReposPerUser:       50,
		PopularReposPerSkill:  3,
		IssuesPerRepo:         5,
		MaxSearchLanguages:    5,
		MaxSearchTechnologies: 3,
		PerSkillTimeoutMS:     15_000,
		SupportedIssueTypes: []string{
			"good first issue",
			"help wanted",
			"bug",
			"enhancement",
			"feature",
			"documentation",
			"question",
			"beginner-friendly",
		},
		DefaultIssueTypes: []string{
			"good first issue",
			"help wanted",
		},
		PopularRepositories: defaultPopularRepositories(),
	}
}

// defaultPopularRepositories returns the curated popular-repository table.
// Immutable configuration data loaded once at process start.
func defaultPopularRepositories() map[string][]string {
	return map[string][]string{
		"python": {
			"python/cpython",
			"pallets/flask",
			"django/django",
			"fastapi/fastapi",
			"requests/requests",
			"psf/black",
			"pytorch/pytorch",
			"scikit-learn/scikit-learn",
			"pandas-dev/pandas",
			"numpy/numpy",
		},
		"javascript": {
			"microsoft/vscode",
			"facebook/react",
			"vuejs/vue",
			"angular/angular",
			"nodejs/node",
			"expressjs/express",
			"webpack/webpack",
			"babel/babel",
			"prettier/prettier",
			"eslint/eslint",
		},
		"typescript": {
			"microsoft/TypeScript",
			"nestjs/nest",
			"typeorm/typeorm",
			"angular/angular",
			"ionic-team/ionic-framework",
			"grafana/grafana",
			"apollographql/apollo-server",
			"typestack/class-validator",
		},
		"java": {
			"spring-projects/spring-boot",
			"elastic/elasticsearch",
			"apache/kafka",
			"google/guava",
			"square/retrofit",
			"ReactiveX/RxJava",
			"junit-team/junit5",
			"mockito/mockito",
		},
		"go": {
			"kubernetes/kubernetes",
			"golang/go",
			"docker/docker",
			"prometheus/prometheus",
			"helm/helm",
			"hashicorp/terraform",
			"gin-gonic/gin",
			"gorilla/mux",
		},
		"rust": {
			"rust-lang/rust",
			"actix/actix-web",
			"tokio-rs/tokio",
			"serde-rs/serde",
			"clap-rs/clap",
			"diesel-rs/diesel",
			"hyperium/hyper",
			"rustls/rustls",
		},
		"swift": {
			"apple/swift",
			"vapor/vapor",
			"Alamofire/Alamofire",
			"SwiftyJSON/SwiftyJSON",
			"realm/realm-swift",
			"onevcat/Kingfisher",
			"apple/swift-package-manager",
		},
		"kotlin": {
			"JetBrains/kotlin",
			"square/okhttp",
			"InsertKoinIO/koin",
			"google/accompanist",
			"detekt/detekt",
			"mockk/mockk",
			"kotest/kotest",
		},
		"ruby": {
			"rails/rails",
			"jekyll/jekyll",
			"github/gitignore",
			"rubocop/rubocop",
			"rspec/rspec",
			"sinatra/sinatra",
			"capistrano/capistrano",
		},
		"php": {
			"laravel/laravel",
			"symfony/symfony",
			"composer/composer",
			"PHPUnit/phpunit",
			"guzzle/guzzle",
			"doctrine/orm",
			"phpstan/phpstan",
		},
		"c++": {
			"microsoft/calculator",
			"opencv/opencv",
			"tensorflow/tensorflow",
			"facebook/folly",
			"google/googletest",
			"nlohmann/json",
			"fmtlib/fmt",
		},
		"c#": {
			"dotnet/core",
			"aspnet/AspNetCore",
			"NUnit/nunit",
			"AutoMapper/AutoMapper",
			"StackExchange/Dapper",
			"JamesNK/Newtonsoft.Json",
			"serilog/serilog",
		},
	}
}

// IsSupportedIssueType reports whether callers may filter by this label.
func (c *Config) IsSupportedIssueType(issueType string) bool {
	for _, t := range c.SupportedIssueTypes {
		if t == issueType {
			return true
		}
	}
	return false
}
