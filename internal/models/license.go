package models

import "fmt"

// LicenseXref grants a distributor rights to a content item.
//
// StartDate and EndDate are stored as given; no date format is enforced.
type LicenseXref struct {
	ID            int64   `db:"id" json:"id"`
	ContentID     int64   `db:"content_id" json:"content_id" validate:"gt=0"`
	DistributorID int64   `db:"distributor_id" json:"distributor_id" validate:"gt=0"`
	StartDate     *string `db:"start_date" json:"start_date,omitempty"`
	EndDate       *string `db:"end_date" json:"end_date,omitempty"`
	Terms         *string `db:"terms" json:"terms,omitempty"`
}

var licenseMessages = map[string]string{
	"ContentID.gt":     "Content id and distributor id must be positive integers.",
	"DistributorID.gt": "Content id and distributor id must be positive integers.",
}

// Validate checks that both references are positive ids. Whether they exist is checked by the service layer.
func (l LicenseXref) Validate() error {
	return validateRecord(l, licenseMessages)
}

// WithID returns a copy of l carrying id
func (l LicenseXref) WithID(id int64) LicenseXref {
	l.ID = id
	return l
}

func (l LicenseXref) String() string {
	return fmt.Sprintf("License %d: Content %d -> Distributor %d", l.ID, l.ContentID, l.DistributorID)
}

// ToMap converts l to a generic field map.
func (l LicenseXref) ToMap() map[string]any {
	return map[string]any{
		"id":             l.ID,
		"content_id":     l.ContentID,
		"distributor_id": l.DistributorID,
		"start_date":     optionalValue(l.StartDate),
		"end_date":       optionalValue(l.EndDate),
		"terms":          optionalValue(l.Terms),
	}
}

// LicenseFromMap builds a [LicenseXref] from a field map. id, content_id and distributor_id are required.
func LicenseFromMap(data map[string]any) (LicenseXref, error) {
	id, err := requiredInt(data, "id")
	if err != nil {
		return LicenseXref{}, err
	}
	contentID, err := requiredInt(data, "content_id")
	if err != nil {
		return LicenseXref{}, err
	}
	distributorID, err := requiredInt(data, "distributor_id")
	if err != nil {
		return LicenseXref{}, err
	}
	start, err := stringField(data, "start_date")
	if err != nil {
		return LicenseXref{}, err
	}
	end, err := stringField(data, "end_date")
	if err != nil {
		return LicenseXref{}, err
	}
	terms, err := stringField(data, "terms")
	if err != nil {
		return LicenseXref{}, err
	}

	return LicenseXref{
		ID:            id,
		ContentID:     contentID,
		DistributorID: distributorID,
		StartDate:     start,
		EndDate:       end,
		Terms:         terms,
	}, nil
}
