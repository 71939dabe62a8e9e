package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/jmoiron/sqlx"
)

const selectDistributor = `SELECT id, name, contact_email, region FROM distributor`

// DistributorRepository implements [models.Repository] for [models.Distributor].
type DistributorRepository struct {
	store *Store
}

// NewDistributorRepository creates a new DistributorRepository with the given database connection
func NewDistributorRepository(db *sqlx.DB) *DistributorRepository {
	return NewStore(db).Distributors()
}

// Create inserts a distributor and returns a copy carrying the store-assigned ID
func (r *DistributorRepository) Create(ctx context.Context, distributor models.Distributor) (models.Distributor, error) {
	query := `
		INSERT INTO distributor (name, contact_email, region)
		VALUES (?, ?, ?)
	`

	var id int64
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query, distributor.Name, distributor.ContactEmail, distributor.Region)
		if err != nil {
			return fmt.Errorf("failed to insert distributor: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get distributor id: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Distributor{}, err
	}

	return distributor.WithID(id), nil
}

// GetByID retrieves a distributor by ID, returning nil when no row matches
func (r *DistributorRepository) GetByID(ctx context.Context, id int64) (*models.Distributor, error) {
	var (
		distributor models.Distributor
		found       bool
	)

	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, q, &distributor, selectDistributor+" WHERE id = ?", id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query distributor: %w", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &distributor, nil
}

// ListAll retrieves every distributor ordered by ID
func (r *DistributorRepository) ListAll(ctx context.Context) ([]models.Distributor, error) {
	distributors := []models.Distributor{}

	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		if err := sqlx.SelectContext(ctx, q, &distributors, selectDistributor+" ORDER BY id ASC"); err != nil {
			return fmt.Errorf("failed to query distributors: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return distributors, nil
}

// Update replaces name, contact_email and region of the row with distributor.ID
func (r *DistributorRepository) Update(ctx context.Context, distributor models.Distributor) (bool, error) {
	query := `
		UPDATE distributor
		SET name = ?, contact_email = ?, region = ?
		WHERE id = ?
	`

	var updated bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query, distributor.Name, distributor.ContactEmail, distributor.Region, distributor.ID)
		if err != nil {
			return fmt.Errorf("failed to update distributor: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		updated = affectedOne(rows)
		return nil
	})

	return updated, err
}

// Delete removes the distributor with the given ID
func (r *DistributorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, "DELETE FROM distributor WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete distributor: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		deleted = affectedOne(rows)
		return nil
	})

	return deleted, err
}
