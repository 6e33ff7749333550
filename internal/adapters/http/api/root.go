// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RootHandler serves the service descriptor.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type descriptorResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// HandleRoot handles GET / requests. Any other path falling through the
// mux is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, descriptorResponse{
		Name:        ServiceName,
		Version:     ServiceVersion,
		Description: ServiceDescription,
	})
}
