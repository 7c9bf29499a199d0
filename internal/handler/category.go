package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lossophy/packattack/internal/domain"
)

// categoryRequest is the JSON body for creating or renaming a category.
type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /trips/{tripID}/categories.
// The new category is appended to the end of the trip's category list.
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.categories.Create(r.Context(), domain.Category{TripID: tripID, Name: req.Name})
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// RenameCategory handles PUT /trips/{tripID}/categories/{categoryID}.
// An empty or whitespace-only name is rejected and the stored name is kept.
func (s *Server) RenameCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	renamed, err := s.categories.Rename(r.Context(), tripID, categoryID, req.Name)
	if err != nil {
		s.writeErr(w, err, "category not found")
		return
	}
	s.writeJSON(w, http.StatusOK, renamed)
}

// DeleteCategory handles DELETE /trips/{tripID}/categories/{categoryID}.
// All items in the category are deleted with it.
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}

	if err := s.categories.Delete(r.Context(), tripID, categoryID); err != nil {
		s.writeErr(w, err, "category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
