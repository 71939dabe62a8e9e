package services

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
)

// NewContent holds the caller input for [ContentService.Add].
type NewContent struct {
	Title       string
	Genre       *string
	ContentType *string
	ReleaseYear *int
	Notes       *string
}

// ContentService validates content input and delegates storage to a repository.
type ContentService struct {
	repo   models.Repository[models.Content]
	logger *log.Logger
}

// NewContentService creates a ContentService over repo. A nil logger discards output.
func NewContentService(repo models.Repository[models.Content], logger *log.Logger) *ContentService {
	return &ContentService{repo: repo, logger: serviceLogger(logger, "content")}
}

// Add validates input and stores a new content item.
//
// Fails with a [models.ValidationError] when the title is empty after trimming.
func (s *ContentService) Add(ctx context.Context, in NewContent) (models.Content, error) {
	content := normalizeContent(models.Content{
		Title:       in.Title,
		Genre:       in.Genre,
		ContentType: in.ContentType,
		ReleaseYear: in.ReleaseYear,
		Notes:       in.Notes,
	})

	if err := content.Validate(); err != nil {
		return models.Content{}, err
	}

	saved, err := s.repo.Create(ctx, content)
	if err != nil {
		return models.Content{}, err
	}

	s.logger.Debug("created content", "id", saved.ID, "title", saved.Title)
	return saved, nil
}

// Get returns the content with id. Non-positive ids return nil without querying the store.
func (s *ContentService) Get(ctx context.Context, id int64) (*models.Content, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all content ordered by ID
func (s *ContentService) List(ctx context.Context) ([]models.Content, error) {
	return s.repo.ListAll(ctx)
}

// Update normalizes and validates content like Add, then replaces the stored record.
func (s *ContentService) Update(ctx context.Context, content models.Content) (bool, error) {
	if content.ID <= 0 {
		return false, nil
	}

	content = normalizeContent(content)
	if err := content.Validate(); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, content)
	if err != nil {
		return false, err
	}

	s.logger.Debug("update content", "id", content.ID, "updated", updated)
	return updated, nil
}

// Delete removes the content with id. Licenses referencing it are left in place.
func (s *ContentService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Debug("delete content", "id", id, "deleted", deleted)
	return deleted, nil
}

func normalizeContent(c models.Content) models.Content {
	c.Title = strings.TrimSpace(c.Title)
	c.Genre = shared.TrimOptional(c.Genre)
	c.ContentType = shared.TrimOptional(c.ContentType)
	c.Notes = shared.TrimOptional(c.Notes)
	return c
}
