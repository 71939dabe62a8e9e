package models

import (
	"fmt"
	"strings"
)

// Content is a licensable media item.
type Content struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title" validate:"required"`
	Genre       *string `db:"genre" json:"genre,omitempty"`
	ContentType *string `db:"content_type" json:"content_type,omitempty"`
	ReleaseYear *int    `db:"release_year" json:"release_year,omitempty"`
	Notes       *string `db:"notes" json:"notes,omitempty"`
}

var contentMessages = map[string]string{
	"Title.required": "Title is required for content.",
}

// Validate checks the record rules; the title must be set.
func (c Content) Validate() error {
	return validateRecord(c, contentMessages)
}

// WithID returns a copy of c carrying id
func (c Content) WithID(id int64) Content {
	c.ID = id
	return c
}

// String renders "id: title [genre] (year)", omitting absent parts.
func (c Content) String() string {
	parts := []string{fmt.Sprintf("%d: %s", c.ID, c.Title)}
	if c.Genre != nil && *c.Genre != "" {
		parts = append(parts, fmt.Sprintf("[%s]", *c.Genre))
	}
	if c.ReleaseYear != nil && *c.ReleaseYear != 0 {
		parts = append(parts, fmt.Sprintf("(%d)", *c.ReleaseYear))
	}
	return strings.Join(parts, " ")
}

// ToMap converts c to a generic field map. Absent optionals map to nil.
func (c Content) ToMap() map[string]any {
	return map[string]any{
		"id":           c.ID,
		"title":        c.Title,
		"genre":        optionalValue(c.Genre),
		"content_type": optionalValue(c.ContentType),
		"release_year": optionalValue(c.ReleaseYear),
		"notes":        optionalValue(c.Notes),
	}
}

// ContentFromMap builds a [Content] from a field map produced by [Content.ToMap] or decoded JSON.
//
// id and title are required.
func ContentFromMap(data map[string]any) (Content, error) {
	id, err := requiredInt(data, "id")
	if err != nil {
		return Content{}, err
	}
	title, err := requiredString(data, "title")
	if err != nil {
		return Content{}, err
	}
	genre, err := stringField(data, "genre")
	if err != nil {
		return Content{}, err
	}
	contentType, err := stringField(data, "content_type")
	if err != nil {
		return Content{}, err
	}
	year, err := optionalInt(data, "release_year")
	if err != nil {
		return Content{}, err
	}
	notes, err := stringField(data, "notes")
	if err != nil {
		return Content{}, err
	}

	return Content{
		ID:          id,
		Title:       title,
		Genre:       genre,
		ContentType: contentType,
		ReleaseYear: year,
		Notes:       notes,
	}, nil
}
