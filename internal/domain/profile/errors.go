package profile

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoRepositories marks a user that cannot be analyzed because they
	// own no repositories. A reported condition, not a crash.
	ErrNoRepositories = errors.New("user has no repositories to analyze")
)
