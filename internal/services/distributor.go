package services

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
)

// NewDistributor holds the caller input for [DistributorService.Add].
type NewDistributor struct {
	Name         string
	ContactEmail *string
	Region       *string
}

// DistributorService validates distributor input and delegates storage to a repository.
type DistributorService struct {
	repo   models.Repository[models.Distributor]
	logger *log.Logger
}

// NewDistributorService creates a DistributorService over repo
func NewDistributorService(repo models.Repository[models.Distributor], logger *log.Logger) *DistributorService {
	return &DistributorService{repo: repo, logger: serviceLogger(logger, "distributor")}
}

// Add validates input and stores a new distributor.
//
// The name is required and a contact email, when given, must contain '@'.
func (s *DistributorService) Add(ctx context.Context, in NewDistributor) (models.Distributor, error) {
	distributor := normalizeDistributor(models.Distributor{
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		Region:       in.Region,
	})

	if err := distributor.Validate(); err != nil {
		return models.Distributor{}, err
	}

	saved, err := s.repo.Create(ctx, distributor)
	if err != nil {
		return models.Distributor{}, err
	}

	s.logger.Debug("created distributor", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// Get returns the distributor with id, or nil for missing or non-positive ids
func (s *DistributorService) Get(ctx context.Context, id int64) (*models.Distributor, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all distributors ordered by ID
func (s *DistributorService) List(ctx context.Context) ([]models.Distributor, error) {
	return s.repo.ListAll(ctx)
}

// Update applies the Add rules to distributor and replaces the stored record
func (s *DistributorService) Update(ctx context.Context, distributor models.Distributor) (bool, error) {
	if distributor.ID <= 0 {
		return false, nil
	}

	distributor = normalizeDistributor(distributor)
	if err := distributor.Validate(); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, distributor)
	if err != nil {
		return false, err
	}

	s.logger.Debug("update distributor", "id", distributor.ID, "updated", updated)
	return updated, nil
}

// Delete removes the distributor with id
func (s *DistributorService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Debug("delete distributor", "id", id, "deleted", deleted)
	return deleted, nil
}

func normalizeDistributor(d models.Distributor) models.Distributor {
	d.Name = strings.TrimSpace(d.Name)
	d.ContactEmail = shared.TrimOptional(d.ContactEmail)
	d.Region = shared.TrimOptional(d.Region)
	return d
}
