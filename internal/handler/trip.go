package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/lossophy/packattack/internal/domain"
)

// tripRequest is the JSON body for creating or updating a trip.
// Dates are date-only strings ("2006-01-02"); anything else fails decoding
// before a trip is ever constructed.
type tripRequest struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Description string             `json:"description,omitempty"`

	// TemplateID optionally seeds the new trip from a packing-list template.
	// Only honored on create.
	TemplateID string `json:"template_id,omitempty"`
}

// tripResponse is the JSON shape of a trip without its categories.
type tripResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Destination string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// progressResponse is the JSON shape of a packed/total pair with its
// percentage, recomputed for every response.
type progressResponse struct {
	Packed  int     `json:"packed"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// tripSummaryResponse is one entry in the trip list: the trip plus its
// overall packing progress.
type tripSummaryResponse struct {
	tripResponse
	Progress progressResponse `json:"progress"`
}

// categoryDetailResponse is a category with its items and per-category progress.
type categoryDetailResponse struct {
	ID        uuid.UUID        `json:"id"`
	TripID    uuid.UUID        `json:"trip_id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Items     []domain.Item    `json:"items"`
	Progress  progressResponse `json:"progress"`
}

// tripDetailResponse is the full trip view: trip fields, categories with
// items, and progress at both levels.
type tripDetailResponse struct {
	tripResponse
	Categories []categoryDetailResponse `json:"categories"`
	Progress   progressResponse         `json:"progress"`
}

// CreateTrip handles POST /trips.
// An optional template_id seeds the new trip's categories and items from a
// packing-list template, with quantities derived from the trip's date range.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	var tmpl domain.Template
	if req.TemplateID != "" {
		t, ok := s.templates.Find(req.TemplateID)
		if !ok {
			s.writeNotFound(w, "template not found")
			return
		}
		tmpl = t
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(req))
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}

	if req.TemplateID != "" {
		if err := s.trips.ApplyTemplate(r.Context(), created.ID, tmpl); err != nil {
			s.writeErr(w, err, "trip not found")
			return
		}
	}

	detail, err := s.trips.GetDetail(r.Context(), created.ID)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, detailToResponse(detail))
}

// ListTrips handles GET /trips.
// Each entry carries the trip's overall progress so a list view can render
// percentages without a request per trip.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	details, err := s.trips.ListDetails(r.Context())
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}

	out := make([]tripSummaryResponse, len(details))
	for i, d := range details {
		out[i] = tripSummaryResponse{
			tripResponse: tripToResponse(d.Trip),
			Progress:     progressToResponse(d.Progress()),
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetTrip handles GET /trips/{tripID}.
// Returns the trip with all categories, items, and progress at both levels.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	detail, err := s.trips.GetDetail(r.Context(), id)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, detailToResponse(detail))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}

	trip := requestToTrip(req)
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
// Categories and items are deleted along with the trip.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyTemplate handles POST /trips/{tripID}/template.
// Appends fresh categories and items from the named template to an existing
// trip; applying the same template twice yields two independent copies.
func (s *Server) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	var req struct {
		TemplateID string `json:"template_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidation(w, "invalid request body: "+err.Error())
		return
	}
	if req.TemplateID == "" {
		s.writeValidation(w, "template_id is required")
		return
	}

	tmpl, found := s.templates.Find(req.TemplateID)
	if !found {
		s.writeNotFound(w, "template not found")
		return
	}

	if err := s.trips.ApplyTemplate(r.Context(), id, tmpl); err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}

	detail, err := s.trips.GetDetail(r.Context(), id)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, detailToResponse(detail))
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a request body into a domain.Trip.
// Validation happens in the service — this only maps fields.
func requestToTrip(req tripRequest) domain.Trip {
	return domain.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		Description: req.Description,
	}
}

// tripToResponse converts a domain.Trip into its JSON shape.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// detailToResponse converts a domain.TripDetail into the full trip view,
// recomputing progress at category and trip level.
func detailToResponse(d domain.TripDetail) tripDetailResponse {
	resp := tripDetailResponse{
		tripResponse: tripToResponse(d.Trip),
		Categories:   make([]categoryDetailResponse, len(d.Categories)),
		Progress:     progressToResponse(d.Progress()),
	}
	for i, c := range d.Categories {
		items := c.Items
		if items == nil {
			items = []domain.Item{}
		}
		resp.Categories[i] = categoryDetailResponse{
			ID:        c.ID,
			TripID:    c.TripID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			Items:     items,
			Progress:  progressToResponse(c.Progress()),
		}
	}
	return resp
}

// progressToResponse attaches the rounded percentage to a packed/total pair.
func progressToResponse(p domain.Progress) progressResponse {
	return progressResponse{Packed: p.Packed, Total: p.Total, Percent: p.Percent()}
}
