// Package handler implements the HTTP handlers for the PackAttack API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, category.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lossophy/packattack/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetDetail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error)
	List(ctx context.Context) ([]domain.Trip, error)
	ListDetails(ctx context.Context) ([]domain.TripDetail, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyTemplate(ctx context.Context, tripID uuid.UUID, tmpl domain.Template) error
}

// CategoryServicer defines the business operations the category handlers depend on.
type CategoryServicer interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error)
	Delete(ctx context.Context, tripID, categoryID uuid.UUID) error
}

// ItemServicer defines the business operations the item handlers depend on.
type ItemServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)
	Delete(ctx context.Context, categoryID, itemID uuid.UUID) error
}

// TemplateSource defines the template read operations the handlers depend on.
type TemplateSource interface {
	Load() ([]domain.Template, error)
	Find(id string) (domain.Template, bool)
}

// ExportServicer defines the export/import operations the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) (domain.TripExport, error)
	Import(ctx context.Context, record domain.TripExport) (domain.Trip, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips      TripServicer
	categories CategoryServicer
	items      ItemServicer
	templates  TemplateSource
	export     ExportServicer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, categories CategoryServicer, items ItemServicer, templates TemplateSource, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:      trips,
		categories: categories,
		items:      items,
		templates:  templates,
		export:     export,
		log:        log,
	}
}

// Routes returns the chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Post("/import", s.ImportTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/export", s.ExportTrip)
			r.Post("/template", s.ApplyTemplate)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", s.CreateCategory)

				r.Route("/{categoryID}", func(r chi.Router) {
					r.Put("/", s.RenameCategory)
					r.Delete("/", s.DeleteCategory)

					r.Route("/items", func(r chi.Router) {
						r.Post("/", s.CreateItem)
						r.Put("/{itemID}", s.UpdateItem)
						r.Post("/{itemID}/toggle", s.ToggleItem)
						r.Delete("/{itemID}", s.DeleteItem)
					})
				})
			})
		})
	})

	r.Get("/templates", s.ListTemplates)

	return r
}

// pathUUID extracts and parses a UUID URL parameter.
// ok=false means a response has already been written.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		s.writeValidation(w, "invalid "+name)
		return uuid.UUID{}, false
	}
	return id, true
}
