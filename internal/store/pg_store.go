package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const selectProduct = `SELECT id::text, name, description, price, category, image_url, image_id, is_active, created_at, updated_at FROM products`

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id string) (*domain.Record, error) {
	return p.queryOne(ctx, selectProduct+` WHERE id = $1`, id)
}

// FindActiveByName retrieves the active product with the given name.
// Returns ErrProductNotFound if there is none.
func (p *PgStore) FindActiveByName(ctx context.Context, name, excludeID string) (*domain.Record, error) {
	if excludeID == "" {
		return p.queryOne(ctx, selectProduct+` WHERE name = $1 AND is_active LIMIT 1`, name)
	}
	return p.queryOne(ctx, selectProduct+` WHERE name = $1 AND is_active AND id <> $2 LIMIT 1`, name, excludeID)
}

func (p *PgStore) queryOne(ctx context.Context, sql string, args ...any) (*domain.Record, error) {
	record, err := scanRecord(p.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return record, nil
}

// Find retrieves the products matching the filter, newest first.
// It returns a slice of products, which may be empty if nothing matches.
func (p *PgStore) Find(ctx context.Context, filter Filter) ([]domain.Record, error) {
	var (
		where []string
		args  []any
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+escapeLike(*filter.Search)+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%[1]d OR description ILIKE $%[1]d)", len(args)))
	}

	sql := selectProduct
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return records, nil
}

// Insert adds a new product.
// Returns ErrDuplicateName if the partial unique index on active names rejects it.
func (p *PgStore) Insert(ctx context.Context, r domain.Record) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO products (id, name, description, price, category, image_url, image_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.Name, r.Description, r.Price, r.Category, r.ImageURL, r.ImageID, r.IsActive, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert product %q: %w", r.Name, perrors.ErrDuplicateName)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update sets the mutable fields of an existing product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, r domain.Record) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, category = $5, image_url = $6, image_id = $7, updated_at = $8
		 WHERE id = $1`,
		r.ID, r.Name, r.Description, r.Price, r.Category, r.ImageURL, r.ImageID, r.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to update product %q: %w", r.Name, perrors.ErrDuplicateName)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// Deactivate marks an active product inactive, writing only is_active and updated_at.
// Returns ErrAlreadyInactive if no active product exists with the given ID.
func (p *PgStore) Deactivate(ctx context.Context, id string, updatedAt time.Time) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active`,
		id, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrAlreadyInactive
	}
	return nil
}

// DeleteAll removes every product.
func (p *PgStore) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var r domain.Record
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Price, &r.Category,
		&r.ImageURL, &r.ImageID, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return &r, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
