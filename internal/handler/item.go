package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lossophy/packattack/internal/domain"
)

// itemRequest is the JSON body for creating or updating an item.
// Quantity below 1 is coerced, not rejected — form input is messy.
type itemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

// CreateItem handles POST /trips/{tripID}/categories/{categoryID}/items.
// The new item is appended to the end of the category's item list.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	item := domain.Item{
		CategoryID: categoryID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Packed:     req.Packed,
	}
	created, err := s.items.Create(r.Context(), tripID, item)
	if err != nil {
		s.writeErr(w, err, "category not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// UpdateItem handles PUT /trips/{tripID}/categories/{categoryID}/items/{itemID}.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.pathUUID(w, r, "tripID"); !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	item := domain.Item{
		ID:         itemID,
		CategoryID: categoryID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Packed:     req.Packed,
	}
	updated, err := s.items.Update(r.Context(), item)
	if err != nil {
		s.writeErr(w, err, "item not found")
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// ToggleItem handles POST /trips/{tripID}/categories/{categoryID}/items/{itemID}/toggle.
// Flips the packed flag unconditionally and returns the updated item.
func (s *Server) ToggleItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.pathUUID(w, r, "tripID"); !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	toggled, err := s.items.TogglePacked(r.Context(), categoryID, itemID)
	if err != nil {
		s.writeErr(w, err, "item not found")
		return
	}
	s.writeJSON(w, http.StatusOK, toggled)
}

// DeleteItem handles DELETE /trips/{tripID}/categories/{categoryID}/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.pathUUID(w, r, "tripID"); !ok {
		return
	}
	categoryID, ok := s.pathUUID(w, r, "categoryID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	if err := s.items.Delete(r.Context(), categoryID, itemID); err != nil {
		s.writeErr(w, err, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
