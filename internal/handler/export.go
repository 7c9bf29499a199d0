package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lossophy/packattack/internal/domain"
)

// ExportTrip handles GET /trips/{tripID}/export.
// Returns the trip as an interchange record without identifiers, suitable
// for re-import here or elsewhere.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	record, err := s.export.Export(r.Context(), id)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// ImportTrip handles POST /trips/import.
// A malformed record surfaces a failure message to the caller; existing data
// is never touched, and import always creates a trip under a fresh ID.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	var record domain.TripExport
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.writeValidation(w, "invalid interchange record: "+err.Error())
		return
	}

	created, err := s.export.Import(r.Context(), record)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}

	detail, err := s.trips.GetDetail(r.Context(), created.ID)
	if err != nil {
		s.writeErr(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, detailToResponse(detail))
}
