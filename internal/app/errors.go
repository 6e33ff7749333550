package app

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrEmptySkills marks a match request without any skills.
	ErrEmptySkills = errors.New("skills list cannot be empty")

	// ErrEmptyUsername marks a request without a username.
	ErrEmptyUsername = errors.New("username is required")

	// ErrAnalysisFailed marks a user whose profile could not be analyzed:
	// unknown user, zero repositories, or a platform failure.
	ErrAnalysisFailed = errors.New("user analysis failed")

	// ErrNotStarted marks operations invoked before Start.
	ErrNotStarted = errors.New("service not started")
)
