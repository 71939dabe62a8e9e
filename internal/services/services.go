// package services defines the uniform service contract and the validation rules for every entity
package services

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/repositories"
	"github.com/desertthunder/mediarights/internal/shared"
)

// EntityService defines the operations every entity service exposes besides its Add.
type EntityService[T any] interface {
	// Get returns the record with id, or nil when it does not exist or id is not positive.
	Get(ctx context.Context, id int64) (*T, error)

	// List returns every record ordered by ID.
	List(ctx context.Context) ([]T, error)

	// Update replaces the stored record with the same ID.
	// Returns false when no such record exists.
	Update(ctx context.Context, record T) (bool, error)

	// Delete removes the record with id.
	// Returns false when no such record exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

var (
	_ EntityService[models.Content]     = (*ContentService)(nil)
	_ EntityService[models.Distributor] = (*DistributorService)(nil)
	_ EntityService[models.LicenseXref] = (*LicenseService)(nil)
)

// Catalog bundles the three entity services built over one store.
type Catalog struct {
	Contents     *ContentService
	Distributors *DistributorService
	Licenses     *LicenseService
}

// NewCatalog creates every service over store, sharing logger
func NewCatalog(store *repositories.Store, logger *log.Logger) *Catalog {
	return &Catalog{
		Contents:     NewContentService(store.Contents(), logger),
		Distributors: NewDistributorService(store.Distributors(), logger),
		Licenses:     NewLicenseService(store, logger),
	}
}

func serviceLogger(logger *log.Logger, entity string) *log.Logger {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return shared.WithLogger(logger, "service", entity)
}
