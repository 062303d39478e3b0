package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/author/model"
	bookmodel "book-manager-api/internal/domains/book/model"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks

// ValidationInterface holds the stateless checks over the author repository
// port. All checks are side-effect-free.
type ValidationInterface interface {
	// CheckAllAuthorsExist fails with model.ErrInvalidAuthorID if an id is
	// blank and with model.ErrAuthorsNotRegistered if any lookup misses.
	CheckAllAuthorsExist(ctx context.Context, authorIDs []uuid.UUID) error

	// CheckAuthorExists reports whether a lookup for the id succeeds.
	CheckAuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error)

	// CheckBookRelationPreservable fails with bookmodel.ErrBookNeedsAuthor if
	// replacing the author's book list with newBookIDs would leave any
	// currently associated book without authors.
	CheckBookRelationPreservable(ctx context.Context, authorID uuid.UUID, newBookIDs []uuid.UUID) error
}

// CommandInterface orchestrates validation, entity mutation and persistence
// for author writes. Each call is one atomic unit of work. UpdateAuthor takes
// the raw attributes and builds the replacement entity itself, after the
// target-existence and relation checks, so a missing target is reported
// ahead of a construction failure.
type CommandInterface interface {
	RegisterAuthor(ctx context.Context, author model.Author, bookIDs []uuid.UUID) (*model.Author, error)
	UpdateAuthor(ctx context.Context, authorID uuid.UUID, name string, birthDate time.Time, bookIDs []uuid.UUID) error
}

// QueryInterface is the read side, a thin pass-through to the repository.
type QueryInterface interface {
	FindAuthorByID(ctx context.Context, authorID uuid.UUID) (*model.Author, error)
}

// BookChecker is the narrow capability this domain needs from book
// validation. Consumer-side interface keeps the two validation services from
// referencing each other directly.
type BookChecker interface {
	CheckAllBooksExist(ctx context.Context, bookIDs []uuid.UUID) error
}

// BookQuery is the narrow read capability this domain needs from the book
// side to verify that an update preserves every book's minimum author count.
type BookQuery interface {
	ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]bookmodel.Book, error)
}
