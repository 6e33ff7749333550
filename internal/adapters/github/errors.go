package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v41/github"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotFound marks a user or repository the platform does not know.
	ErrNotFound = errors.New("not found on github")

	// ErrRateLimited marks a request rejected by the platform rate limiter.
	ErrRateLimited = errors.New("github rate limit exceeded")

	// ErrInvalidRepository marks a repository reference not in owner/repo form.
	ErrInvalidRepository = errors.New("invalid repository format")
)

const errorComponent = "github"

// wrapAPIError normalizes go-github errors into this package's sentinel
// kinds so callers can branch with errors.Is, and counts the failure by
// kind.
func wrapAPIError(op string, err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		metrics.RecordErrorByComponent(errorComponent, "rate_limited")
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		metrics.RecordErrorByComponent(errorComponent, "rate_limited")
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
		metrics.RecordErrorByComponent(errorComponent, "not_found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	metrics.RecordErrorByComponent(errorComponent, "upstream")
	return fmt.Errorf("%s: %w", op, err)
}
