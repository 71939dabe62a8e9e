package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/jmoiron/sqlx"
)

const selectContent = `SELECT id, title, genre, content_type, release_year, notes FROM content`

// ContentRepository implements [models.Repository] for [models.Content].
type ContentRepository struct {
	store *Store
}

// NewContentRepository creates a new ContentRepository with the given database connection
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return NewStore(db).Contents()
}

// Create inserts content and returns a copy carrying the store-assigned ID. The argument is not modified.
func (r *ContentRepository) Create(ctx context.Context, content models.Content) (models.Content, error) {
	query := `
		INSERT INTO content (title, genre, content_type, release_year, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	var id int64
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query,
			content.Title,
			content.Genre,
			content.ContentType,
			content.ReleaseYear,
			content.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert content: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get content id: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Content{}, err
	}

	return content.WithID(id), nil
}

// GetByID retrieves content by ID, returning nil when no row matches
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	var (
		content models.Content
		found   bool
	)

	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, q, &content, selectContent+" WHERE id = ?", id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query content: %w", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &content, nil
}

// ListAll retrieves every content row ordered by ID
func (r *ContentRepository) ListAll(ctx context.Context) ([]models.Content, error) {
	contents := []models.Content{}

	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		if err := sqlx.SelectContext(ctx, q, &contents, selectContent+" ORDER BY id ASC"); err != nil {
			return fmt.Errorf("failed to query content: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contents, nil
}

// Update replaces every non-identity column of the row with content.ID.
// Returns false when no row has that ID.
func (r *ContentRepository) Update(ctx context.Context, content models.Content) (bool, error) {
	query := `
		UPDATE content
		SET title = ?, genre = ?, content_type = ?, release_year = ?, notes = ?
		WHERE id = ?
	`

	var updated bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, query,
			content.Title,
			content.Genre,
			content.ContentType,
			content.ReleaseYear,
			content.Notes,
			content.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update content: %w", err)
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

// Delete removes the content row with the given ID. Returns false when no row was removed.
func (r *ContentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.store.exec(ctx, func(q sqlx.ExtContext) error {
		result, err := q.ExecContext(ctx, "DELETE FROM content WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete content: %w", err)
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
