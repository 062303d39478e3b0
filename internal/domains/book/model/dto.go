package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookRequest is the payload for both book registration and update.
type BookRequest struct {
	Title   string          `json:"title"`
	Price   decimal.Decimal `json:"price"`
	Status  string          `json:"publication_status"`
	Authors []uuid.UUID     `json:"authors"`
}

// Validate performs syntactic validation only. A book request must always
// name at least one author; existence of those authors is checked by the
// validation services.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&r.Price, validation.By(priceNotNegative)),
		validation.Field(&r.Status, validation.Required, validation.In(
			string(PublicationStatusPublished),
			string(PublicationStatusUnpublished),
		)),
		validation.Field(&r.Authors, validation.Required),
	)
}

func priceNotNegative(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

type BookResponse struct {
	ID      uuid.UUID         `json:"id"`
	Title   string            `json:"title"`
	Price   decimal.Decimal   `json:"price"`
	Status  PublicationStatus `json:"publication_status"`
	Authors []uuid.UUID       `json:"authors"`
}

// RegisteredBookResponse carries the store-assigned identifier back to the
// caller after a successful registration.
type RegisteredBookResponse struct {
	BookID uuid.UUID `json:"book_id"`
}

// AuthorInfo is the resolved author record embedded in a book listing.
type AuthorInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
}

// BookWithAuthorsResponse is a book with its author id list resolved into
// full author records, in association order.
type BookWithAuthorsResponse struct {
	ID      uuid.UUID         `json:"id"`
	Title   string            `json:"title"`
	Price   decimal.Decimal   `json:"price"`
	Status  PublicationStatus `json:"publication_status"`
	Authors []AuthorInfo      `json:"authors"`
}

// ToResponse converts a Book to its API representation.
func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Price:   b.Price,
		Status:  b.Status,
		Authors: b.Authors(),
	}
}
