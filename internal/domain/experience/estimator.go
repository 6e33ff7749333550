// Package experience derives a discrete experience tier from platform
// activity signals.
package experience

import (
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

// Signal thresholds for the additive point scale. No single factor can
// dominate the total.
const (
	accountAgeSenior = 5.0
	accountAgeMid    = 2.0
	accountAgeJunior = 1.0

	repoCountHigh = 50
	repoCountMid  = 20
	repoCountLow  = 5

	followersHigh = 100
	followersLow  = 20

	activeReposHigh = 5
	activeReposLow  = 2

	scoreExpert       = 8
	scoreAdvanced     = 5
	scoreIntermediate = 2
)

// Estimate converts account age, repository count, follower count, and
// recent-activity signals into an experience tier.
//
// Recently active repositories are those updated within the last 365 days,
// counted over the most-recent 10 repositories considered by the caller.
func Estimate(accountAgeYears float64, publicRepoCount, followerCount, recentlyActiveRepoCount int) model.Tier {
	score := 0

	switch {
	case accountAgeYears >= accountAgeSenior:
		score += 3
	case accountAgeYears >= accountAgeMid:
		score += 2
	case accountAgeYears >= accountAgeJunior:
		score++
	}

	switch {
	case publicRepoCount >= repoCountHigh:
		score += 3
	case publicRepoCount >= repoCountMid:
		score += 2
	case publicRepoCount >= repoCountLow:
		score++
	}

	switch {
	case followerCount >= followersHigh:
		score += 2
	case followerCount >= followersLow:
		score++
	}

	switch {
	case recentlyActiveRepoCount >= activeReposHigh:
		score += 2
	case recentlyActiveRepoCount >= activeReposLow:
		score++
	}

	switch {
	case score >= scoreExpert:
		return model.TierExpert
	case score >= scoreAdvanced:
		return model.TierAdvanced
	case score >= scoreIntermediate:
		return model.TierIntermediate
	default:
		return model.TierBeginner
	}
}
