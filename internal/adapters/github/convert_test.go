package github

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	gh "github.com/google/go-github/v41/github"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConvertIssue(t *testing.T) {
	_ = logger.Init()

	Convey("Given the issue converter", t, func() {
		ctx := context.Background()
		c := NewClient("")
		created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
		updated := time.Date(2026, 1, 20, 9, 30, 0, 0, time.UTC)

		Convey("When converting a complete issue record", func() {
			issue := &gh.Issue{
				ID:            gh.Int64(77),
				Number:        gh.Int(12),
				Title:         gh.String("Fix the parser"),
				Body:          gh.String("A simple fix"),
				HTMLURL:       gh.String("https://github.com/owner/repo/issues/12"),
				RepositoryURL: gh.String("https://api.github.com/repos/owner/repo"),
				Labels:        []*gh.Label{{Name: gh.String("good first issue")}, {Name: gh.String("bug")}},
				CreatedAt:     &created,
				UpdatedAt:     &updated,
			}

			candidate, ok := c.convertIssue(ctx, issue, "")

			Convey("Then every field is mapped", func() {
				So(ok, ShouldBeTrue)
				So(candidate.ID, ShouldEqual, 77)
				So(candidate.Number, ShouldEqual, 12)
				So(candidate.Title, ShouldEqual, "Fix the parser")
				So(candidate.RepositoryName, ShouldEqual, "owner/repo")
				So(candidate.RepositoryURL, ShouldEqual, "https://github.com/owner/repo")
				So(candidate.Labels, ShouldResemble, []string{"good first issue", "bug"})
				So(candidate.CreatedAt, ShouldEqual, "2026-01-10T08:00:00Z")
				So(candidate.UpdatedAt, ShouldEqual, "2026-01-20T09:30:00Z")
			})

			Convey("Then difficulty is classified at conversion time", func() {
				So(candidate.Difficulty, ShouldEqual, model.DifficultyBeginner)
			})

			Convey("Then matched skills start empty but present", func() {
				So(candidate.MatchedSkills, ShouldNotBeNil)
				So(candidate.MatchedSkills, ShouldBeEmpty)
				So(candidate.RelevanceScore, ShouldEqual, 0.0)
			})
		})

		Convey("When the record is a pull request", func() {
			issue := &gh.Issue{
				ID:               gh.Int64(1),
				PullRequestLinks: &gh.PullRequestLinks{},
			}

			_, ok := c.convertIssue(ctx, issue, "owner/repo")

			So(ok, ShouldBeFalse)
		})

		Convey("When the record is nil or has no ID", func() {
			_, okNil := c.convertIssue(ctx, nil, "")
			_, okNoID := c.convertIssue(ctx, &gh.Issue{}, "owner/repo")

			So(okNil, ShouldBeFalse)
			So(okNoID, ShouldBeFalse)
		})

		Convey("When a fallback repository name is supplied", func() {
			issue := &gh.Issue{ID: gh.Int64(2)}

			candidate, ok := c.convertIssue(ctx, issue, "owner/fallback")

			So(ok, ShouldBeTrue)
			So(candidate.RepositoryName, ShouldEqual, "owner/fallback")
		})

		Convey("When the repository cannot be determined at all", func() {
			issue := &gh.Issue{ID: gh.Int64(3)}

			_, ok := c.convertIssue(ctx, issue, "")

			So(ok, ShouldBeFalse)
		})
	})
}

func TestRepoFromURL(t *testing.T) {
	Convey("Given API repository URLs", t, func() {
		So(repoFromURL("https://api.github.com/repos/owner/repo"), ShouldEqual, "owner/repo")
		So(repoFromURL("https://api.github.com/repos/onlyowner"), ShouldEqual, "")
		So(repoFromURL("https://example.com/repos/deep/owner/repo"), ShouldEqual, "deep/owner/repo")
		So(repoFromURL("garbage"), ShouldEqual, "")
		So(repoFromURL(""), ShouldEqual, "")
	})
}

func TestSplitRepo(t *testing.T) {
	Convey("Given repository full names", t, func() {
		Convey("When the name is well-formed", func() {
			owner, name, ok := splitRepo("golang/go")
			So(ok, ShouldBeTrue)
			So(owner, ShouldEqual, "golang")
			So(name, ShouldEqual, "go")
		})

		Convey("When the name is malformed", func() {
			for _, bad := range []string{"", "justone", "a/b/c", "/repo", "owner/"} {
				_, _, ok := splitRepo(bad)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestFormatTime(t *testing.T) {
	Convey("Given timestamps", t, func() {
		Convey("When the time is zero", func() {
			So(formatTime(time.Time{}), ShouldEqual, "")
		})

		Convey("When the time carries a zone", func() {
			loc := time.FixedZone("plus2", 2*3600)
			ts := time.Date(2026, 1, 1, 14, 0, 0, 0, loc)

			So(formatTime(ts), ShouldEqual, "2026-01-01T12:00:00Z")
		})
	})
}

func TestWrapAPIError(t *testing.T) {
	Convey("Given upstream API failures", t, func() {
		Convey("When the platform rate limits", func() {
			err := wrapAPIError("op", &gh.RateLimitError{})

			So(errors.Is(err, ErrRateLimited), ShouldBeTrue)
		})

		Convey("When the platform reports abuse throttling", func() {
			err := wrapAPIError("op", &gh.AbuseRateLimitError{})

			So(errors.Is(err, ErrRateLimited), ShouldBeTrue)
		})

		Convey("When the resource does not exist", func() {
			err := wrapAPIError("op", &gh.ErrorResponse{
				Response: &http.Response{StatusCode: http.StatusNotFound},
			})

			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("When the failure is something else", func() {
			cause := errors.New("network down")
			err := wrapAPIError("op", cause)

			So(errors.Is(err, cause), ShouldBeTrue)
			So(errors.Is(err, ErrNotFound), ShouldBeFalse)
		})

		Convey("When failures are wrapped", func() {
			_ = wrapAPIError("op", errors.New("network down"))
			_ = wrapAPIError("op", &gh.RateLimitError{})

			Convey("Then they are counted per error kind", func() {
				kinds := componentErrorKinds("github")
				So(kinds["upstream"], ShouldBeTrue)
				So(kinds["rate_limited"], ShouldBeTrue)
			})
		})
	})
}

// componentErrorKinds collects the error_type label values recorded for
// one component on the shared registry.
func componentErrorKinds(component string) map[string]bool {
	kinds := map[string]bool{}
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		return kinds
	}
	for _, f := range families {
		if f.GetName() != "skillissue_matcher_errors_by_component_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			got, errorType := "", ""
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "component":
					got = l.GetValue()
				case "error_type":
					errorType = l.GetValue()
				}
			}
			if got == component {
				kinds[errorType] = true
			}
		}
	}
	return kinds
}
