package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is an immutable snapshot of an author together with the books it is
// associated with. The association helpers return a new value instead of
// mutating in place, so an Author can never be aliased between requests.
type Author struct {
	ID        uuid.UUID
	Name      string
	BirthDate time.Time
	books     []uuid.UUID
}

// NewAuthor builds an Author without an identifier. The store assigns the ID
// on insert. The birth date must be strictly before today; violating that is a
// construction error, not a recoverable validation result.
func NewAuthor(name string, birthDate time.Time) (Author, error) {
	if !dateBefore(birthDate, time.Now()) {
		return Author{}, ErrBirthDateNotPast
	}

	return Author{
		Name:      name,
		BirthDate: birthDate,
	}, nil
}

// WithID binds the author to an existing identifier. Used when building the
// replacement entity for an update.
func (a Author) WithID(id uuid.UUID) Author {
	a.ID = id
	return a
}

// WithBooks appends book identifiers to the association list. Used at
// registration time.
func (a Author) WithBooks(bookIDs []uuid.UUID) Author {
	merged := make([]uuid.UUID, 0, len(a.books)+len(bookIDs))
	merged = append(merged, a.books...)
	merged = append(merged, bookIDs...)
	a.books = merged
	return a
}

// ReplaceBooks discards the current association list and sets it to bookIDs.
// An empty or nil replacement clears all associations.
func (a Author) ReplaceBooks(bookIDs []uuid.UUID) Author {
	if len(bookIDs) == 0 {
		a.books = nil
		return a
	}
	a.books = append([]uuid.UUID(nil), bookIDs...)
	return a
}

// Books returns a copy of the associated book identifiers in the order they
// were attached.
func (a Author) Books() []uuid.UUID {
	return append([]uuid.UUID(nil), a.books...)
}

// dateBefore compares two timestamps at calendar-date precision.
func dateBefore(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty < ry
	}
	if tm != rm {
		return tm < rm
	}
	return td < rd
}
