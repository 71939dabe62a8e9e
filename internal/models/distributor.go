package models

import (
	"fmt"
	"strings"
)

// Distributor is a party that can be granted licenses.
type Distributor struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name" validate:"required"`
	ContactEmail *string `db:"contact_email" json:"contact_email,omitempty" validate:"omitempty,contains=@"`
	Region       *string `db:"region" json:"region,omitempty"`
}

var distributorMessages = map[string]string{
	"Name.required":         "Distributor name is required.",
	"ContactEmail.contains": "Contact email must contain '@' if provided.",
}

// Validate checks the record rules: a name is required and a contact email, when set, contains '@'.
func (d Distributor) Validate() error {
	return validateRecord(d, distributorMessages)
}

// WithID returns a copy of d carrying id
func (d Distributor) WithID(id int64) Distributor {
	d.ID = id
	return d
}

func (d Distributor) String() string {
	parts := []string{fmt.Sprintf("%d: %s", d.ID, d.Name)}
	if d.ContactEmail != nil && *d.ContactEmail != "" {
		parts = append(parts, fmt.Sprintf("<%s>", *d.ContactEmail))
	}
	if d.Region != nil && *d.Region != "" {
		parts = append(parts, fmt.Sprintf("[%s]", *d.Region))
	}
	return strings.Join(parts, " ")
}

// ToMap converts d to a generic field map.
func (d Distributor) ToMap() map[string]any {
	return map[string]any{
		"id":            d.ID,
		"name":          d.Name,
		"contact_email": optionalValue(d.ContactEmail),
		"region":        optionalValue(d.Region),
	}
}

// DistributorFromMap builds a [Distributor] from a field map. id and name are required.
func DistributorFromMap(data map[string]any) (Distributor, error) {
	id, err := requiredInt(data, "id")
	if err != nil {
		return Distributor{}, err
	}
	name, err := requiredString(data, "name")
	if err != nil {
		return Distributor{}, err
	}
	email, err := stringField(data, "contact_email")
	if err != nil {
		return Distributor{}, err
	}
	region, err := stringField(data, "region")
	if err != nil {
		return Distributor{}, err
	}

	return Distributor{ID: id, Name: name, ContactEmail: email, Region: region}, nil
}
