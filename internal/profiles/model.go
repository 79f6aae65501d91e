package profiles

import "time"

// Profile is a shopper's style profile.
type Profile struct {
	UserID           string    `json:"userId"`
	DisplayName      string    `json:"displayName"`
	StylePersonality string    `json:"stylePersonality,omitempty"`
	PreferredColors  []string  `json:"preferredColors"`
	PreferredSizes   []string  `json:"preferredSizes"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Address is one entry in a shopper's address book.
type Address struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Label      string    `json:"label"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	Region     string    `json:"region"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate checks the address's required fields.
func (a Address) Validate() error {
	switch {
	case a.Line1 == "":
		return &ValidationError{Field: "line1"}
	case a.City == "":
		return &ValidationError{Field: "city"}
	case a.PostalCode == "":
		return &ValidationError{Field: "postalCode"}
	case a.Country == "":
		return &ValidationError{Field: "country"}
	}
	return nil
}

// ValidationError names the missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
