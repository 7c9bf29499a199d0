package handler

import (
	"net/http"
)

// ListTemplates handles GET /templates.
// A template file that is missing or unreadable is the normal "no templates
// available" case: the error is logged and an empty list is served, per the
// degrade-to-empty contract of the template source.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.Load()
	if err != nil {
		s.log.Warn("template load failed, serving empty list", "error", err)
	}
	s.writeJSON(w, http.StatusOK, templates)
}
