// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/app"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

// Service identity reported by the descriptor and health endpoints.
const (
	ServiceName        = "skillissue-finder"
	ServiceVersion     = "1.0.0"
	ServiceDescription = "Match users with relevant GitHub issues based on skills"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	MatchBySkills(ctx context.Context, req app.MatchRequest) (app.MatchResult, error)
	MatchByUsername(ctx context.Context, username string, req app.MatchRequest) (app.MatchResult, error)
	AnalyzeUser(ctx context.Context, username string) (*model.SkillsProfile, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	matchHandler   *MatchHandler
	analyzeHandler *AnalyzeHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	rootHandler    *RootHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		matchHandler:   NewMatchHandler(deps),
		analyzeHandler: NewAnalyzeHandler(deps),
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		rootHandler:    NewRootHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/match-issues-by-skills", wrapHandler(s.matchHandler.HandleMatchBySkills, "match_by_skills"))
	mux.HandleFunc("/match-issues-by-username", wrapHandler(s.matchHandler.HandleMatchByUsername, "match_by_username"))
	mux.HandleFunc("/analyze-user/", wrapHandler(s.analyzeHandler.HandleAnalyzeUser, "analyze_user"))
	mux.HandleFunc("/health", wrapHandler(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", wrapHandler(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/", wrapHandler(s.rootHandler.HandleRoot, "root"))
}

// wrapHandler applies the standard middleware chain to one route.
func wrapHandler(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(next, endpoint))
}

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Success: false, Code: code, Message: msg})
}
