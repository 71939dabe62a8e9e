package services

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/repositories"
	"github.com/desertthunder/mediarights/internal/shared"
)

// NewLicense holds the caller input for [LicenseService.Add].
//
// StartDate and EndDate are opaque text and are stored verbatim.
type NewLicense struct {
	ContentID     int64
	DistributorID int64
	StartDate     *string
	EndDate       *string
	Terms         *string
}

// LicenseService validates licenses against the content and distributor tables.
//
// It needs the whole [repositories.Store] so reference checks and writes share a transaction.
type LicenseService struct {
	store  *repositories.Store
	logger *log.Logger
}

// NewLicenseService creates a LicenseService over store
func NewLicenseService(store *repositories.Store, logger *log.Logger) *LicenseService {
	return &LicenseService{store: store, logger: serviceLogger(logger, "license")}
}

// Add records that a distributor holds rights to a content item.
//
// Fails with a [models.ValidationError] when either id is not positive or when the referenced
// content or distributor does not exist. Content is checked first.
func (s *LicenseService) Add(ctx context.Context, in NewLicense) (models.LicenseXref, error) {
	license := normalizeLicense(models.LicenseXref{
		ContentID:     in.ContentID,
		DistributorID: in.DistributorID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Terms:         in.Terms,
	})

	if err := license.Validate(); err != nil {
		return models.LicenseXref{}, err
	}

	var saved models.LicenseXref
	err := s.store.Atomic(ctx, func(tx *repositories.Store) error {
		if err := checkReferences(ctx, tx, license); err != nil {
			return err
		}

		created, err := tx.Licenses().Create(ctx, license)
		if err != nil {
			return err
		}
		saved = created
		return nil
	})
	if err != nil {
		return models.LicenseXref{}, err
	}

	s.logger.Debug("created license", "id", saved.ID, "content", saved.ContentID, "distributor", saved.DistributorID)
	return saved, nil
}

// Get returns the license with id, or nil for missing or non-positive ids
func (s *LicenseService) Get(ctx context.Context, id int64) (*models.LicenseXref, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.store.Licenses().GetByID(ctx, id)
}

// List returns all licenses ordered by ID
func (s *LicenseService) List(ctx context.Context) ([]models.LicenseXref, error) {
	return s.store.Licenses().ListAll(ctx)
}

// ListByContent returns the licenses granted for one content item
func (s *LicenseService) ListByContent(ctx context.Context, contentID int64) ([]models.LicenseXref, error) {
	if contentID <= 0 {
		return []models.LicenseXref{}, nil
	}
	return s.store.Licenses().ListByContent(ctx, contentID)
}

// ListByDistributor returns the licenses held by one distributor
func (s *LicenseService) ListByDistributor(ctx context.Context, distributorID int64) ([]models.LicenseXref, error) {
	if distributorID <= 0 {
		return []models.LicenseXref{}, nil
	}
	return s.store.Licenses().ListByDistributor(ctx, distributorID)
}

// Update replaces a stored license after re-checking both references.
//
// A missing license returns false. A missing reference is a [models.ValidationError] and leaves
// the stored license unchanged.
func (s *LicenseService) Update(ctx context.Context, license models.LicenseXref) (bool, error) {
	if license.ID <= 0 {
		return false, nil
	}

	license = normalizeLicense(license)
	if err := license.Validate(); err != nil {
		return false, err
	}

	var updated bool
	err := s.store.Atomic(ctx, func(tx *repositories.Store) error {
		existing, err := tx.Licenses().GetByID(ctx, license.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}

		if err := checkReferences(ctx, tx, license); err != nil {
			return err
		}

		updated, err = tx.Licenses().Update(ctx, license)
		return err
	})
	if err != nil {
		return false, err
	}

	s.logger.Debug("update license", "id", license.ID, "updated", updated)
	return updated, nil
}

// Delete removes the license with id
func (s *LicenseService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.store.Licenses().Delete(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Debug("delete license", "id", id, "deleted", deleted)
	return deleted, nil
}

func checkReferences(ctx context.Context, tx *repositories.Store, license models.LicenseXref) error {
	content, err := tx.Contents().GetByID(ctx, license.ContentID)
	if err != nil {
		return err
	}
	if content == nil {
		return models.NewValidationError("ContentID", "No content found with id %d.", license.ContentID)
	}

	distributor, err := tx.Distributors().GetByID(ctx, license.DistributorID)
	if err != nil {
		return err
	}
	if distributor == nil {
		return models.NewValidationError("DistributorID", "No distributor found with id %d.", license.DistributorID)
	}
	return nil
}

func normalizeLicense(l models.LicenseXref) models.LicenseXref {
	l.Terms = shared.TrimOptional(l.Terms)
	return l
}
