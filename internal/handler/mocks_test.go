package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lossophy/packattack/internal/domain"
	"github.com/lossophy/packattack/internal/handler"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs; calling an unset field panics and flags the unexpected call.

type mockTripServicer struct {
	create        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getDetail     func(ctx context.Context, id uuid.UUID) (domain.TripDetail, error)
	list          func(ctx context.Context) ([]domain.Trip, error)
	listDetails   func(ctx context.Context) ([]domain.TripDetail, error)
	update        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete        func(ctx context.Context, id uuid.UUID) error
	applyTemplate func(ctx context.Context, tripID uuid.UUID, tmpl domain.Template) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetDetail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error) {
	return m.getDetail(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) ListDetails(ctx context.Context) ([]domain.TripDetail, error) {
	return m.listDetails(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) ApplyTemplate(ctx context.Context, tripID uuid.UUID, tmpl domain.Template) error {
	return m.applyTemplate(ctx, tripID, tmpl)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockCategoryServicer struct {
	create func(ctx context.Context, category domain.Category) (domain.Category, error)
	rename func(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error)
	delete func(ctx context.Context, tripID, categoryID uuid.UUID) error
}

func (m *mockCategoryServicer) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	return m.create(ctx, c)
}
func (m *mockCategoryServicer) Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error) {
	return m.rename(ctx, tripID, categoryID, name)
}
func (m *mockCategoryServicer) Delete(ctx context.Context, tripID, categoryID uuid.UUID) error {
	return m.delete(ctx, tripID, categoryID)
}

var _ handler.CategoryServicer = (*mockCategoryServicer)(nil)

type mockItemServicer struct {
	create       func(ctx context.Context, tripID uuid.UUID, item domain.Item) (domain.Item, error)
	update       func(ctx context.Context, item domain.Item) (domain.Item, error)
	togglePacked func(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)
	delete       func(ctx context.Context, categoryID, itemID uuid.UUID) error
}

func (m *mockItemServicer) Create(ctx context.Context, tripID uuid.UUID, it domain.Item) (domain.Item, error) {
	return m.create(ctx, tripID, it)
}
func (m *mockItemServicer) Update(ctx context.Context, it domain.Item) (domain.Item, error) {
	return m.update(ctx, it)
}
func (m *mockItemServicer) TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	return m.togglePacked(ctx, categoryID, itemID)
}
func (m *mockItemServicer) Delete(ctx context.Context, categoryID, itemID uuid.UUID) error {
	return m.delete(ctx, categoryID, itemID)
}

var _ handler.ItemServicer = (*mockItemServicer)(nil)

type mockTemplateSource struct {
	load func() ([]domain.Template, error)
	find func(id string) (domain.Template, bool)
}

func (m *mockTemplateSource) Load() ([]domain.Template, error)       { return m.load() }
func (m *mockTemplateSource) Find(id string) (domain.Template, bool) { return m.find(id) }

var _ handler.TemplateSource = (*mockTemplateSource)(nil)

type mockExportServicer struct {
	exportTrip func(ctx context.Context, tripID uuid.UUID) (domain.TripExport, error)
	importTrip func(ctx context.Context, record domain.TripExport) (domain.Trip, error)
}

func (m *mockExportServicer) Export(ctx context.Context, tripID uuid.UUID) (domain.TripExport, error) {
	return m.exportTrip(ctx, tripID)
}
func (m *mockExportServicer) Import(ctx context.Context, record domain.TripExport) (domain.Trip, error) {
	return m.importTrip(ctx, record)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// serverDeps bundles the five dependency slots so each test only fills what
// it uses.
type serverDeps struct {
	trips      handler.TripServicer
	categories handler.CategoryServicer
	items      handler.ItemServicer
	templates  handler.TemplateSource
	export     handler.ExportServicer
}

// newTestRouter wires a Server exactly the way main.go does and returns its
// router.
func newTestRouter(deps serverDeps) http.Handler {
	return handler.NewServer(deps.trips, deps.categories, deps.items, deps.templates, deps.export, nil).Routes()
}

// do runs one request through the router and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// errorCode extracts the machine-readable code from an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[handler.ErrorResponse](t, rec).Error.Code
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Name:        "Summer in Lisbon",
		Destination: "Lisbon",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}
