// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/app"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// MatchHandler handles issue matching requests.
type MatchHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps, logger: logger.Named("api")}
}

// skillMatchRequest mirrors the JSON schema for POST /match-issues-by-skills.
type skillMatchRequest struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	IssueTypes      []string `json:"issue_types,omitempty"`
	MaxResults      int      `json:"max_results,omitempty"`
}

// usernameMatchRequest mirrors the JSON schema for POST /match-issues-by-username.
type usernameMatchRequest struct {
	Username   string   `json:"username"`
	IssueTypes []string `json:"issue_types,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// issueMatchResponse mirrors the JSON schema shared by both match routes.
type issueMatchResponse struct {
	Success    bool                   `json:"success"`
	Issues     []model.CandidateIssue `json:"issues"`
	TotalFound int                    `json:"total_found"`
	UserSkills *model.SkillsProfile   `json:"user_skills,omitempty"`
	Message    string                 `json:"message"`
}

// HandleMatchBySkills handles POST /match-issues-by-skills requests.
func (h *MatchHandler) HandleMatchBySkills(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_by_skills"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req skillMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.MatchBySkills(r.Context(), app.MatchRequest{
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		IssueTypes:      req.IssueTypes,
		MaxResults:      req.MaxResults,
	})
	if err != nil {
		h.writeMatchError(w, r, op, err)
		return
	}

	writeJSON(w, http.StatusOK, issueMatchResponse{
		Success:    true,
		Issues:     nonNilIssues(result.Issues),
		TotalFound: result.TotalFound,
		Message:    fmt.Sprintf("Found %d matching issues", result.TotalFound),
	})
}

// HandleMatchByUsername handles POST /match-issues-by-username requests.
func (h *MatchHandler) HandleMatchByUsername(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_by_username"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req usernameMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, app.ErrEmptyUsername))
		return
	}

	result, err := h.deps.MatchByUsername(r.Context(), req.Username, app.MatchRequest{
		IssueTypes: req.IssueTypes,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		h.writeMatchError(w, r, op, err)
		return
	}

	writeJSON(w, http.StatusOK, issueMatchResponse{
		Success:    true,
		Issues:     nonNilIssues(result.Issues),
		TotalFound: result.TotalFound,
		UserSkills: result.Profile,
		Message:    fmt.Sprintf("Found %d matching issues for @%s", result.TotalFound, req.Username),
	})
}

// writeMatchError translates service errors into HTTP semantics: empty
// input is the caller's fault, a failed analysis is a 404, anything else
// is a 500 with a generic message and full context logged server-side.
func (h *MatchHandler) writeMatchError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, app.ErrEmptySkills) || errors.Is(err, app.ErrEmptyUsername):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, app.ErrAnalysisFailed):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		metrics.RecordErrorByComponent("api", "internal")
		h.logger.Error(r.Context(), "match request failed",
			logger.String("op", op),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrInternal))
	}
}

// nonNilIssues keeps the issues array present (not null) in responses.
func nonNilIssues(issues []model.CandidateIssue) []model.CandidateIssue {
	if issues == nil {
		return []model.CandidateIssue{}
	}
	return issues
}
