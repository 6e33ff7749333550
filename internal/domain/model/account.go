package model

import "time"

// User is the platform profile metadata needed for skills analysis.
type User struct {
	Login       string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository is one of a user's repositories, as needed for skills
// analysis.
type Repository struct {
	Owner       string
	Name        string
	FullName    string
	Description string
	Topics      []string
	UpdatedAt   time.Time
}
