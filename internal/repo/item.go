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

// ItemRepo defines the persistence operations for Items.
// All single-row operations are scoped by categoryID to enforce ownership.
type ItemRepo interface {
	// Create inserts a new item at the end of the category's item list
	// and returns the persisted record.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)

	// GetByID retrieves a single item by its UUID, scoped to the given categoryID.
	// Returns domain.ErrNotFound if no item with that ID exists under that category.
	GetByID(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)

	// ListByCategoryID returns all items for a category in insertion order.
	ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error)

	// Update overwrites the mutable fields (name, quantity, packed) of an item,
	// scoped to the given categoryID.
	// Returns domain.ErrNotFound if no item with that ID exists under that category.
	Update(ctx context.Context, item domain.Item) (domain.Item, error)

	// TogglePacked flips the packed flag and returns the updated item.
	// Returns domain.ErrNotFound if no item with that ID exists under that category.
	TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error)

	// Delete removes an item by ID, scoped to the given categoryID.
	// Returns domain.ErrNotFound if no item with that ID exists under that category.
	Delete(ctx context.Context, categoryID, itemID uuid.UUID) error
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

func (r *pgItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		INSERT INTO items (category_id, name, quantity, packed)
		VALUES (@category_id, @name, @quantity, @packed)
		RETURNING id, category_id, name, quantity, packed, created_at`

	args := pgx.NamedArgs{
		"category_id": item.CategoryID,
		"name":        item.Name,
		"quantity":    item.Quantity,
		"packed":      item.Packed,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) GetByID(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	const q = `
		SELECT id, category_id, name, quantity, packed, created_at
		FROM items
		WHERE id = @id AND category_id = @category_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "category_id": categoryID})
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByCategoryID returns a category's items ordered by the monotonic seq
// column, i.e. exactly the order the user added them.
func (r *pgItemRepo) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error) {
	const q = `
		SELECT id, category_id, name, quantity, packed, created_at
		FROM items
		WHERE category_id = @category_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"category_id": categoryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByCategoryID: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListByCategoryID: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByCategoryID: rows: %w", err)
	}

	return items, nil
}

func (r *pgItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE items
		SET name     = @name,
		    quantity = @quantity,
		    packed   = @packed
		WHERE id = @id AND category_id = @category_id
		RETURNING id, category_id, name, quantity, packed, created_at`

	args := pgx.NamedArgs{
		"id":          item.ID,
		"category_id": item.CategoryID,
		"name":        item.Name,
		"quantity":    item.Quantity,
		"packed":      item.Packed,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", err)
	}
	return result, nil
}

// TogglePacked flips the packed flag in a single statement so the read and
// the write cannot interleave with another request's toggle.
func (r *pgItemRepo) TogglePacked(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Item, error) {
	const q = `
		UPDATE items
		SET packed = NOT packed
		WHERE id = @id AND category_id = @category_id
		RETURNING id, category_id, name, quantity, packed, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "category_id": categoryID})
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.TogglePacked: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) Delete(ctx context.Context, categoryID, itemID uuid.UUID) error {
	const q = `DELETE FROM items WHERE id = @id AND category_id = @category_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "category_id": categoryID})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItem maps a single database row into a domain.Item.
func scanItem(s scanner) (domain.Item, error) {
	var (
		it         domain.Item
		id         pgtype.UUID
		categoryID pgtype.UUID
	)

	err := s.Scan(&id, &categoryID, &it.Name, &it.Quantity, &it.Packed, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.CategoryID = uuid.UUID(categoryID.Bytes)

	return it, nil
}
