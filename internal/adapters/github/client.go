// Package github adapts the GitHub REST API to the profile and issue
// sources the domain needs.
package github

import (
	"context"
	"time"

	gh "github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// Client wraps the GitHub API client behind the domain-facing source
// interfaces.
type Client struct {
	client *gh.Client
	logger logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a GitHub API client. An empty token is tolerated:
// requests then run unauthenticated under GitHub's much lower rate limit
// and the service degrades to whatever partial results that allows.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{logger: logger.Named("github")}
	for _, opt := range opts {
		opt(c)
	}

	if token == "" {
		c.logger.Warn(context.Background(), "no github token configured; unauthenticated rate limits apply")
		c.client = gh.NewClient(nil)
		return c
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c.client = gh.NewClient(oauth2.NewClient(context.Background(), ts))
	return c
}

// Verify checks the configured token by fetching the authenticated user.
// A failure is reported but callers are expected to continue degraded.
func (c *Client) Verify(ctx context.Context) error {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return wrapAPIError("verify token", err)
	}
	c.logger.Info(ctx, "github authentication successful",
		logger.String("username", user.GetLogin()),
	)
	return nil
}

// observe records call metrics for one API operation.
func observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordGitHubCall(operation, status)
	metrics.RecordGitHubCallLatency(operation, float64(time.Since(start).Milliseconds()))
}
