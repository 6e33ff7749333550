package experience_test

import (
	"testing"

	experience "github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/experience"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimate(t *testing.T) {
	Convey("Given the experience estimator", t, func() {
		Convey("When all signals are at their weakest", func() {
			tier := experience.Estimate(0, 0, 0, 0)

			Convey("Then the tier is beginner", func() {
				So(tier, ShouldEqual, model.TierBeginner)
			})
		})

		Convey("When all signals are at their strongest", func() {
			// 3 (age) + 3 (repos) + 2 (followers) + 2 (activity) = 10
			tier := experience.Estimate(10, 200, 500, 8)

			Convey("Then the tier is expert", func() {
				So(tier, ShouldEqual, model.TierExpert)
			})
		})

		Convey("When the score lands exactly on the expert threshold", func() {
			// 3 (age >= 5) + 3 (repos >= 50) + 1 (followers >= 20) + 1 (active >= 2) = 8
			tier := experience.Estimate(6, 60, 30, 2)

			So(tier, ShouldEqual, model.TierExpert)
		})

		Convey("When the score lands in the advanced band", func() {
			// 2 (age >= 2) + 2 (repos >= 20) + 1 (followers >= 20) + 1 (active >= 2) = 6
			tier := experience.Estimate(3, 25, 25, 2)

			So(tier, ShouldEqual, model.TierAdvanced)
		})

		Convey("When the score lands in the intermediate band", func() {
			// 1 (age >= 1) + 1 (repos >= 5) = 2
			tier := experience.Estimate(1.5, 6, 0, 0)

			So(tier, ShouldEqual, model.TierIntermediate)
		})

		Convey("When the score falls just short of intermediate", func() {
			// 1 (age >= 1) only
			tier := experience.Estimate(1, 2, 5, 1)

			So(tier, ShouldEqual, model.TierBeginner)
		})

		Convey("When a single signal dominates", func() {
			Convey("Then account age alone cannot pass beginner+", func() {
				// 3 points from age alone is intermediate, never advanced
				So(experience.Estimate(20, 0, 0, 0), ShouldEqual, model.TierIntermediate)
			})

			Convey("Then repository count alone cannot reach expert", func() {
				So(experience.Estimate(0, 1000, 0, 0), ShouldEqual, model.TierIntermediate)
			})
		})

		Convey("When activity sits on its thresholds", func() {
			// Base of 2 from age >= 2 keeps the activity delta observable.
			So(experience.Estimate(2, 0, 0, 1), ShouldEqual, model.TierIntermediate) // 2 + 0
			So(experience.Estimate(2, 0, 0, 2), ShouldEqual, model.TierIntermediate) // 2 + 1
			So(experience.Estimate(2, 0, 0, 5), ShouldEqual, model.TierIntermediate) // 2 + 2
			So(experience.Estimate(5, 20, 0, 5), ShouldEqual, model.TierAdvanced)    // 3 + 2 + 2
		})
	})
}
