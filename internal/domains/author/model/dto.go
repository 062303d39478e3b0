package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const birthDateLayout = "2006-01-02"

// AuthorRequest is the payload for both author registration and update.
type AuthorRequest struct {
	Name      string      `json:"name"`
	BirthDate string      `json:"birth_date"`
	Books     []uuid.UUID `json:"books"`
}

// Validate performs syntactic validation only. Cross-entity checks belong to
// the validation services.
func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&r.BirthDate, validation.Required, validation.Date(birthDateLayout)),
	)
}

// ParseBirthDate converts the YYYY-MM-DD string into a time.Time.
func (r AuthorRequest) ParseBirthDate() (time.Time, error) {
	return time.Parse(birthDateLayout, r.BirthDate)
}

type AuthorResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	BirthDate string      `json:"birth_date"`
	Books     []uuid.UUID `json:"books"`
}

// RegisteredAuthorResponse carries the store-assigned identifier back to the
// caller after a successful registration.
type RegisteredAuthorResponse struct {
	AuthorID uuid.UUID `json:"author_id"`
}

// ToResponse converts an Author to its API representation.
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate.Format(birthDateLayout),
		Books:     a.Books(),
	}
}
