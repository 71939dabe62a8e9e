package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/jmoiron/sqlx"
)

const selectLicense = `SELECT id, content_id, distributor_id, start_date, end_date, terms FROM license_xref`

// LicenseRepository implements [models.Repository] for [models.LicenseXref].
//
// content_id and distributor_id are stored as given; the repository does not check that they resolve.
type LicenseRepository struct {
	store *Store
}

// NewLicenseRepository creates a new LicenseRepository with the given database connection
func NewLicenseRepository(db *sqlx.DB) *LicenseRepository {
	return NewStore(db).Licenses()
}

// Create inserts a license and returns a copy carrying the store-assigned ID
func (r *LicenseRepository) Create(ctx context.Context, license models.LicenseXref) (models.LicenseXref, error) {
	query := `
		INSERT INTO license_xref (content_id, distributor_id, start_date, end_date, terms)
		VALUES (?, ?, ?, ?, ?)
	`

	var id int64
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query,
			license.ContentID,
			license.DistributorID,
			license.StartDate,
			license.EndDate,
			license.Terms,
		)
		if err != nil {
			return fmt.Errorf("failed to insert license: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get license id: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.LicenseXref{}, err
	}

	return license.WithID(id), nil
}

// GetByID retrieves a license by ID, returning nil when no row matches
func (r *LicenseRepository) GetByID(ctx context.Context, id int64) (*models.LicenseXref, error) {
	var (
		license models.LicenseXref
		found   bool
	)

	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, q, &license, selectLicense+" WHERE id = ?", id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query license: %w", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &license, nil
}

// ListAll retrieves every license ordered by ID
func (r *LicenseRepository) ListAll(ctx context.Context) ([]models.LicenseXref, error) {
	return r.list(ctx, "")
}

// ListByContent retrieves the licenses granted for one content item, ordered by ID
func (r *LicenseRepository) ListByContent(ctx context.Context, contentID int64) ([]models.LicenseXref, error) {
	return r.list(ctx, "WHERE content_id = ?", contentID)
}

// ListByDistributor retrieves the licenses held by one distributor, ordered by ID
func (r *LicenseRepository) ListByDistributor(ctx context.Context, distributorID int64) ([]models.LicenseXref, error) {
	return r.list(ctx, "WHERE distributor_id = ?", distributorID)
}

func (r *LicenseRepository) list(ctx context.Context, where string, args ...any) ([]models.LicenseXref, error) {
	query := selectLicense
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY id ASC"

	licenses := []models.LicenseXref{}
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		if err := sqlx.SelectContext(ctx, q, &licenses, query, args...); err != nil {
			return fmt.Errorf("failed to query licenses: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return licenses, nil
}

// Update replaces every non-identity column of the row with license.ID
func (r *LicenseRepository) Update(ctx context.Context, license models.LicenseXref) (bool, error) {
	query := `
		UPDATE license_xref
		SET content_id = ?, distributor_id = ?, start_date = ?, end_date = ?, terms = ?
		WHERE id = ?
	`

	var updated bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query,
			license.ContentID,
			license.DistributorID,
			license.StartDate,
			license.EndDate,
			license.Terms,
			license.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update license: %w", err)
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

// Delete removes the license with the given ID
func (r *LicenseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, "DELETE FROM license_xref WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete license: %w", err)
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
