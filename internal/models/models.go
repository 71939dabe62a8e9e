// package models defines the data model for the media rights licensing service
package models

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Repository defines the data access operations shared by every entity store.
//
// Not-found is never an error: GetByID returns a nil record, Update and Delete return false.
type Repository[T any] interface {
	Create(ctx context.Context, record T) (T, error)    // Create inserts record and returns a copy carrying the assigned ID
	GetByID(ctx context.Context, id int64) (*T, error)  // GetByID returns nil when no row matches
	ListAll(ctx context.Context) ([]T, error)           // ListAll returns every row ordered by ascending ID
	Update(ctx context.Context, record T) (bool, error) // Update replaces all non-identity fields of the row with record's ID
	Delete(ctx context.Context, id int64) (bool, error) // Delete removes the row with the given ID
}

// ValidationError reports a caller input that breaks a record rule.
//
// It matches [shared.ErrInvalidInput] with [errors.Is].
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a [ValidationError] with a formatted message
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return shared.ErrInvalidInput }

// IsValidationError reports whether err is or wraps a [ValidationError]
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// validateRecord runs the struct-tag rules on record and converts the first failure into a [ValidationError].
//
// messages is keyed by "Field.tag".
func validateRecord(record any, messages map[string]string) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate record: %w", err)
	}

	fe := fieldErrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return NewValidationError(fe.Field(), "%s does not satisfy rule %q.", fe.Field(), fe.Tag())
}

// intField reads an integer value from a field map.
//
// JSON decoding yields float64 and form input yields strings, so both are accepted.
func intField(data map[string]any, key string) (int64, bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, false, fmt.Errorf("%w: %s must be a whole number, got %v", shared.ErrInvalidInput, key, v)
		}
		return int64(v), true, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s must be a whole number, got %q", shared.ErrInvalidInput, key, v)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s has unsupported type %T", shared.ErrInvalidInput, key, raw)
	}
}

func requiredInt(data map[string]any, key string) (int64, error) {
	n, ok, err := intField(data, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: missing field %s", shared.ErrInvalidInput, key)
	}
	return n, nil
}

func optionalInt(data map[string]any, key string) (*int, error) {
	n, ok, err := intField(data, key)
	if err != nil || !ok {
		return nil, err
	}
	v := int(n)
	return &v, nil
}

func stringField(data map[string]any, key string) (*string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case string:
		return &v, nil
	case *string:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string, got %T", shared.ErrInvalidInput, key, raw)
	}
}

func requiredString(data map[string]any, key string) (string, error) {
	s, err := stringField(data, key)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("%w: missing field %s", shared.ErrInvalidInput, key)
	}
	return *s, nil
}

// optionalValue flattens a pointer into a field map value, nil when absent
func optionalValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
