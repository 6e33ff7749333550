// Package model contains domain models passed between layers.
package model

// Tier is a discrete experience level derived from platform activity.
type Tier string

// Experience tiers, weakest to strongest.
const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierExpert       Tier = "expert"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced, TierExpert:
		return true
	}
	return false
}

// Difficulty is the estimated difficulty classification of an issue.
type Difficulty string

// Issue difficulty levels. Issues that cannot be classified default to
// intermediate.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
)

// SkillsProfile is the aggregated language/technology/experience summary
// for one user or one explicit request. Languages and Technologies are
// disjoint tag namespaces: a tag classified as a language never also
// appears as a technology. The profile is immutable after construction
// and owned exclusively by the request that produced it.
type SkillsProfile struct {
	Languages       []string           `json:"languages"`
	Technologies    []string           `json:"technologies"`
	ExperienceLevel Tier               `json:"experience_level"`
	ProfileStats    map[string]float64 `json:"github_stats,omitempty"`
}

// CandidateIssue is one open issue fetched from the platform, prior to or
// during scoring. Identity is the platform-unique ID: two instances with
// equal ID are duplicates regardless of other fields.
//
// SourceSkills records which skill queries produced the candidate at
// retrieval time; MatchedSkills is rebuilt by the scorer from substring
// matches over title+body. The two are deliberately separate fields.
type CandidateIssue struct {
	ID             int64      `json:"id"`
	Number         int        `json:"number"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	URL            string     `json:"url"`
	RepositoryName string     `json:"repository_name"`
	RepositoryURL  string     `json:"repository_url"`
	Labels         []string   `json:"labels"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
	Difficulty     Difficulty `json:"difficulty"`
	MatchedSkills  []string   `json:"matched_skills"`
	SourceSkills   []string   `json:"source_skills,omitempty"`
	RelevanceScore float64    `json:"relevance_score"`
}
