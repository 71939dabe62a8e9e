// package repositories provides persistence layer implementations for all model types.
//
// Each repository implements models.Repository[T] for a specific entity type.
package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/jmoiron/sqlx"
)

// Store is an explicitly constructed handle to the relational store.
//
// A Store built with [NewStore] opens a transaction per operation. The Store passed to an [Store.Atomic]
// callback is bound to that callback's transaction.
type Store struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

// NewStore creates a new Store over the given database connection pool
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Contents returns a [ContentRepository] bound to this store
func (s *Store) Contents() *ContentRepository {
	return &ContentRepository{store: s}
}

// Distributors returns a [DistributorRepository] bound to this store
func (s *Store) Distributors() *DistributorRepository {
	return &DistributorRepository{store: s}
}

// Licenses returns a [LicenseRepository] bound to this store
func (s *Store) Licenses() *LicenseRepository {
	return &LicenseRepository{store: s}
}

// Atomic runs fn against a Store bound to a single transaction.
//
// The transaction commits when fn returns nil and rolls back otherwise. Calling Atomic on a Store that is
// already bound joins the existing transaction.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{db: s.db, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// exec runs a single statement through fn inside a scoped or bound transaction
func (s *Store) exec(ctx context.Context, fn func(q sqlx.ExtContext) error) error {
	return s.Atomic(ctx, func(tx *Store) error {
		return fn(tx.tx)
	})
}

// affectedOne reports whether a write touched exactly one row
func affectedOne(rows int64) bool {
	return rows == 1
}

var (
	_ models.Repository[models.Content]     = (*ContentRepository)(nil)
	_ models.Repository[models.Distributor] = (*DistributorRepository)(nil)
	_ models.Repository[models.LicenseXref] = (*LicenseRepository)(nil)
)
