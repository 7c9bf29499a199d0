package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lossophy/packattack/internal/domain"
)

// CategoryRepo defines the persistence operations for Categories.
// All single-row operations are scoped by tripID to enforce ownership.
type CategoryRepo interface {
	// Create inserts a new category at the end of the trip's category list
	// and returns the persisted record.
	Create(ctx context.Context, category domain.Category) (domain.Category, error)

	// GetByID retrieves a single category by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no category with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, categoryID uuid.UUID) (domain.Category, error)

	// ListByTripID returns all categories for a trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Category, error)

	// Rename updates the category name, scoped to the given tripID.
	// Returns domain.ErrNotFound if no category with that ID exists under that trip.
	Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error)

	// Delete removes a category by ID, cascading to its items.
	// Returns domain.ErrNotFound if no category with that ID exists under that trip.
	Delete(ctx context.Context, tripID, categoryID uuid.UUID) error
}

// pgCategoryRepo is the Postgres implementation of CategoryRepo.
type pgCategoryRepo struct {
	db db
}

// NewCategoryRepo constructs a CategoryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCategoryRepo(db db) CategoryRepo {
	return &pgCategoryRepo{db: db}
}

func (r *pgCategoryRepo) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	const q = `
		INSERT INTO categories (trip_id, name)
		VALUES (@trip_id, @name)
		RETURNING id, trip_id, name, created_at`

	args := pgx.NamedArgs{
		"trip_id": category.TripID,
		"name":    category.Name,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCategoryRepo) GetByID(ctx context.Context, tripID, categoryID uuid.UUID) (domain.Category, error) {
	const q = `
		SELECT id, trip_id, name, created_at
		FROM categories
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": categoryID, "trip_id": tripID})
	result, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns a trip's categories ordered by the monotonic seq
// column, i.e. exactly the order the user added them.
func (r *pgCategoryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Category, error) {
	const q = `
		SELECT id, trip_id, name, created_at
		FROM categories
		WHERE trip_id = @trip_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CategoryRepo.ListByTripID: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.ListByTripID: rows: %w", err)
	}

	return categories, nil
}

func (r *pgCategoryRepo) Rename(ctx context.Context, tripID, categoryID uuid.UUID, name string) (domain.Category, error) {
	const q = `
		UPDATE categories
		SET name = @name
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": categoryID, "trip_id": tripID, "name": name})
	result, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.Rename: %w", err)
	}
	return result, nil
}

// Delete removes a category by primary key. Its items go with it via the
// ON DELETE CASCADE foreign key.
func (r *pgCategoryRepo) Delete(ctx context.Context, tripID, categoryID uuid.UUID) error {
	const q = `DELETE FROM categories WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": categoryID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.CategoryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CategoryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCategory maps a single database row into a domain.Category.
func scanCategory(s scanner) (domain.Category, error) {
	var (
		c      domain.Category
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.TripID = uuid.UUID(tripID.Bytes)

	return c, nil
}
