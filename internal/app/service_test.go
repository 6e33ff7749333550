package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	app "github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/app"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// fakePlatform serves as both profile source and issue searcher. Searches
// may arrive from several goroutines at once.
type fakePlatform struct {
	mu       sync.Mutex
	user     model.User
	userErr  error
	repos    []model.Repository
	issues   []model.CandidateIssue
	searched []string
	limits   []int
}

func (f *fakePlatform) User(_ context.Context, _ string) (model.User, error) {
	return f.user, f.userErr
}

func (f *fakePlatform) Repos(_ context.Context, _ string, limit int) ([]model.Repository, error) {
	if len(f.repos) > limit {
		return f.repos[:limit], nil
	}
	return f.repos, nil
}

func (f *fakePlatform) Languages(_ context.Context, _, _ string) (map[string]int, error) {
	return nil, nil
}

func (f *fakePlatform) SearchIssues(_ context.Context, query string, limit int) ([]model.CandidateIssue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, query)
	f.limits = append(f.limits, limit)
	return f.issues, nil
}

func (f *fakePlatform) RepoIssues(_ context.Context, _ string, _ []string, _ int) ([]model.CandidateIssue, error) {
	return nil, nil
}

func newStartedService(ctx context.Context, platform *fakePlatform, opts ...app.Option) *app.Service {
	base := []app.Option{
		app.WithProfileSource(platform),
		app.WithSearcher(platform),
	}
	svc := app.New(append(base, opts...)...)
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	_ = logger.Init()

	Convey("Given a service", t, func() {
		ctx := context.Background()

		Convey("When it has not been started", func() {
			svc := app.New(
				app.WithProfileSource(&fakePlatform{}),
				app.WithSearcher(&fakePlatform{}),
			)

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{Skills: []string{"go"}})

			Convey("Then requests are rejected", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, app.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When started without wiring", func() {
			svc := app.New()

			err := svc.Start(ctx)

			Convey("Then startup fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When started twice", func() {
			svc := newStartedService(ctx, &fakePlatform{})

			err := svc.Start(ctx)

			Convey("Then the second start is a no-op", func() {
				So(err, ShouldBeNil)
			})

			svc.Stop()
		})
	})
}

func TestMatchBySkills(t *testing.T) {
	_ = logger.Init()

	Convey("Given a started service", t, func() {
		ctx := context.Background()

		Convey("When the skill list is empty", func() {
			svc := newStartedService(ctx, &fakePlatform{})
			defer svc.Stop()

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{})

			Convey("Then it fails with ErrEmptySkills", func() {
				So(errors.Is(err, app.ErrEmptySkills), ShouldBeTrue)
			})
		})

		Convey("When skills match open issues", func() {
			recent := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)
			platform := &fakePlatform{
				issues: []model.CandidateIssue{
					{ID: 1, Title: "Improve python docs", Labels: []string{"good first issue"}, UpdatedAt: recent},
					{ID: 2, Title: "unrelated work item"},
				},
			}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			result, err := svc.MatchBySkills(ctx, app.MatchRequest{
				Skills:          []string{"python"},
				ExperienceLevel: "beginner",
			})

			Convey("Then matched issues come back ranked", func() {
				So(err, ShouldBeNil)
				So(result.TotalFound, ShouldBeGreaterThan, 0)
				So(result.Issues[0].ID, ShouldEqual, 1)
				So(result.Issues[0].RelevanceScore, ShouldBeGreaterThan, result.Issues[len(result.Issues)-1].RelevanceScore)
			})

			Convey("Then no profile is attached for skill requests", func() {
				So(err, ShouldBeNil)
				So(result.Profile, ShouldBeNil)
			})
		})

		Convey("When skills mix languages and technologies", func() {
			platform := &fakePlatform{}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{
				Skills: []string{"go", "react", "Go", " react "},
			})

			Convey("Then each unique skill is searched with its own query shape", func() {
				So(err, ShouldBeNil)
				So(platform.searched, ShouldHaveLength, 2)
				joined := strings.Join(platform.searched, " | ")
				So(joined, ShouldContainSubstring, "language:go")
				So(joined, ShouldContainSubstring, `"react" in:title,body`)
			})
		})

		Convey("When an unknown experience level is supplied", func() {
			recent := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)
			platform := &fakePlatform{
				issues: []model.CandidateIssue{
					{ID: 1, Title: "simple python fix", Labels: []string{"good first issue"}, UpdatedAt: recent},
				},
			}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			result, err := svc.MatchBySkills(ctx, app.MatchRequest{
				Skills:          []string{"python"},
				ExperienceLevel: "wizard",
			})

			Convey("Then it degrades to intermediate and still matches", func() {
				So(err, ShouldBeNil)
				// The good-first-issue bonus only applies below advanced, so a
				// non-zero bonus here shows the intermediate default applied.
				So(result.Issues[0].RelevanceScore, ShouldBeGreaterThanOrEqualTo, 3.0)
			})
		})

		Convey("When max results exceeds the cap", func() {
			platform := &fakePlatform{}
			svc := newStartedService(ctx, platform, app.WithResultCaps(10, 25))
			defer svc.Stop()

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{
				Skills:     []string{"go"},
				MaxResults: 10_000,
			})

			Convey("Then the search budget is clamped to the cap", func() {
				So(err, ShouldBeNil)
				So(platform.limits, ShouldResemble, []int{25})
			})
		})

		Convey("When max results is omitted", func() {
			platform := &fakePlatform{}
			svc := newStartedService(ctx, platform, app.WithResultCaps(10, 25))
			defer svc.Stop()

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{Skills: []string{"go"}})

			Convey("Then the default applies", func() {
				So(err, ShouldBeNil)
				So(platform.limits, ShouldResemble, []int{10})
			})
		})

		Convey("When unsupported issue types are requested", func() {
			platform := &fakePlatform{}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			_, err := svc.MatchBySkills(ctx, app.MatchRequest{
				Skills:     []string{"go"},
				IssueTypes: []string{"nonsense", "also-nonsense"},
			})

			Convey("Then the defaults are searched instead", func() {
				So(err, ShouldBeNil)
				So(platform.searched[0], ShouldContainSubstring, `label:"good first issue","help wanted"`)
			})
		})
	})
}

func TestMatchByUsername(t *testing.T) {
	_ = logger.Init()

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		now := time.Now().UTC()

		Convey("When the username is blank", func() {
			svc := newStartedService(ctx, &fakePlatform{})
			defer svc.Stop()

			_, err := svc.MatchByUsername(ctx, "   ", app.MatchRequest{})

			So(errors.Is(err, app.ErrEmptyUsername), ShouldBeTrue)
		})

		Convey("When the user cannot be analyzed", func() {
			platform := &fakePlatform{userErr: errors.New("404 from upstream")}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			_, err := svc.MatchByUsername(ctx, "ghost", app.MatchRequest{})

			Convey("Then the failure is wrapped in ErrAnalysisFailed", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, app.ErrAnalysisFailed), ShouldBeTrue)
			})
		})

		Convey("When the user analyzes successfully", func() {
			platform := &fakePlatform{
				user: model.User{
					Login:     "dev",
					Bio:       "go developer",
					CreatedAt: now.AddDate(-4, 0, 0),
					UpdatedAt: now,
				},
				repos: []model.Repository{
					{Owner: "dev", Name: "svc", FullName: "dev/svc", UpdatedAt: now},
				},
				issues: []model.CandidateIssue{
					{ID: 5, Title: "go bug to squash", Labels: []string{"help wanted"}},
				},
			}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			result, err := svc.MatchByUsername(ctx, "dev", app.MatchRequest{})

			Convey("Then the inferred profile is attached to the result", func() {
				So(err, ShouldBeNil)
				So(result.Profile, ShouldNotBeNil)
				So(result.Profile.Languages, ShouldContain, "go")
				So(result.TotalFound, ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestAnalyzeUser(t *testing.T) {
	_ = logger.Init()

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		now := time.Now().UTC()

		Convey("When the user owns no repositories", func() {
			platform := &fakePlatform{user: model.User{Login: "empty"}}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			_, err := svc.AnalyzeUser(ctx, "empty")

			Convey("Then analysis fails", func() {
				So(errors.Is(err, app.ErrAnalysisFailed), ShouldBeTrue)
			})
		})

		Convey("When the user has analyzable repositories", func() {
			platform := &fakePlatform{
				user: model.User{
					Login:     "dev",
					Bio:       "rust and redis",
					CreatedAt: now.AddDate(-2, 0, 0),
					UpdatedAt: now,
				},
				repos: []model.Repository{
					{Owner: "dev", Name: "svc", FullName: "dev/svc", UpdatedAt: now},
				},
			}
			svc := newStartedService(ctx, platform)
			defer svc.Stop()

			prof, err := svc.AnalyzeUser(ctx, "dev")

			Convey("Then a profile is returned", func() {
				So(err, ShouldBeNil)
				So(prof.Languages, ShouldContain, "rust")
				So(prof.Technologies, ShouldContain, "redis")
				So(prof.ExperienceLevel.Valid(), ShouldBeTrue)
			})
		})
	})
}

func TestGetStats(t *testing.T) {
	_ = logger.Init()

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newStartedService(ctx, &fakePlatform{}, app.WithResultCaps(15, 60))
		defer svc.Stop()

		Convey("When fetching stats", func() {
			stats := svc.GetStats()

			Convey("Then the configuration is reported", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["defaultMaxResults"], ShouldEqual, 15)
				So(stats["maxResultsCap"], ShouldEqual, 60)
			})
		})
	})
}
