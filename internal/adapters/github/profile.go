package github

import (
	"context"
	"time"

	gh "github.com/google/go-github/v41/github"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

const reposPerPage = 100

// User fetches profile metadata for a username.
func (c *Client) User(ctx context.Context, username string) (model.User, error) {
	start := time.Now()
	user, _, err := c.client.Users.Get(ctx, username)
	observe("users.get", start, err)
	if err != nil {
		return model.User{}, wrapAPIError("get user", err)
	}

	return model.User{
		Login:       user.GetLogin(),
		Bio:         user.GetBio(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
		UpdatedAt:   user.GetUpdatedAt().Time,
	}, nil
}

// Repos lists up to limit of the user's own repositories, most recently
// updated first.
func (c *Client) Repos(ctx context.Context, username string, limit int) ([]model.Repository, error) {
	opts := &gh.RepositoryListOptions{
		Type: "owner",
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: perPage(limit, reposPerPage),
		},
	}

	var repos []model.Repository
	for len(repos) < limit {
		start := time.Now()
		page, resp, err := c.client.Repositories.List(ctx, username, opts)
		observe("repos.list", start, err)
		if err != nil {
			return nil, wrapAPIError("list repositories", err)
		}

		for _, repo := range page {
			if len(repos) >= limit {
				break
			}
			repos = append(repos, model.Repository{
				Owner:       repo.GetOwner().GetLogin(),
				Name:        repo.GetName(),
				FullName:    repo.GetFullName(),
				Description: repo.GetDescription(),
				Topics:      repo.Topics,
				UpdatedAt:   repo.GetUpdatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

// Languages returns the byte-weighted language breakdown for one
// repository.
func (c *Client) Languages(ctx context.Context, owner, name string) (map[string]int, error) {
	start := time.Now()
	langs, _, err := c.client.Repositories.ListLanguages(ctx, owner, name)
	observe("repos.languages", start, err)
	if err != nil {
		return nil, wrapAPIError("list languages", err)
	}
	return langs, nil
}

func perPage(limit, max int) int {
	if limit < max {
		return limit
	}
	return max
}
