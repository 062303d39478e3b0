package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PublicationStatus is the publication state of a book. Once a book is
// published it can never go back to unpublished.
type PublicationStatus string

const (
	PublicationStatusPublished   PublicationStatus = "PUBLISHED"
	PublicationStatusUnpublished PublicationStatus = "UNPUBLISHED"
)

// ParsePublicationStatus converts the wire representation into a
// PublicationStatus.
func ParsePublicationStatus(s string) (PublicationStatus, error) {
	switch PublicationStatus(s) {
	case PublicationStatusPublished:
		return PublicationStatusPublished, nil
	case PublicationStatusUnpublished:
		return PublicationStatusUnpublished, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Valid reports whether the status is one of the known states.
func (s PublicationStatus) Valid() bool {
	return s == PublicationStatusPublished || s == PublicationStatusUnpublished
}

// Book is an immutable snapshot of a book together with the authors it is
// associated with. Same value semantics as Author: association helpers
// return a new value rather than mutating shared state.
type Book struct {
	ID      uuid.UUID
	Title   string
	Price   decimal.Decimal
	Status  PublicationStatus
	authors []uuid.UUID
}

// NewBook builds a Book without an identifier. Price must be non-negative and
// the status must be a known state.
func NewBook(title string, price decimal.Decimal, status PublicationStatus) (Book, error) {
	if price.IsNegative() {
		return Book{}, ErrNegativePrice
	}
	if !status.Valid() {
		return Book{}, ErrInvalidStatus
	}

	return Book{
		Title:  title,
		Price:  price,
		Status: status,
	}, nil
}

// WithID binds the book to an existing identifier.
func (b Book) WithID(id uuid.UUID) Book {
	b.ID = id
	return b
}

// WithAuthors appends author identifiers to the association list.
func (b Book) WithAuthors(authorIDs []uuid.UUID) Book {
	merged := make([]uuid.UUID, 0, len(b.authors)+len(authorIDs))
	merged = append(merged, b.authors...)
	merged = append(merged, authorIDs...)
	b.authors = merged
	return b
}

// ReplaceAuthors discards the current association list and sets it to
// authorIDs. An empty replacement clears all associations.
func (b Book) ReplaceAuthors(authorIDs []uuid.UUID) Book {
	if len(authorIDs) == 0 {
		b.authors = nil
		return b
	}
	b.authors = append([]uuid.UUID(nil), authorIDs...)
	return b
}

// Authors returns a copy of the associated author identifiers in the order
// they were attached.
func (b Book) Authors() []uuid.UUID {
	return append([]uuid.UUID(nil), b.authors...)
}
