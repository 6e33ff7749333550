// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/app"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// AnalyzeHandler handles user analysis requests.
type AnalyzeHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps, logger: logger.Named("api")}
}

type analyzeResponse struct {
	Success  bool                 `json:"success"`
	Username string               `json:"username"`
	Skills   *model.SkillsProfile `json:"skills"`
	Message  string               `json:"message"`
}

// HandleAnalyzeUser handles GET /analyze-user/{username} requests.
func (h *AnalyzeHandler) HandleAnalyzeUser(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_user"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	username := strings.TrimPrefix(r.URL.Path, "/analyze-user/")
	if username == "" || strings.Contains(username, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	prof, err := h.deps.AnalyzeUser(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyUsername):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		case errors.Is(err, app.ErrAnalysisFailed):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			metrics.RecordErrorByComponent("api", "internal")
			h.logger.Error(r.Context(), "user analysis failed",
				logger.String("username", username),
				logger.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrInternal))
		}
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:  true,
		Username: username,
		Skills:   prof,
		Message:  fmt.Sprintf("Successfully analyzed skills for @%s", username),
	})
}
