package service

import (
	"context"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/book/model"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks

// ValidationInterface holds the stateless checks over the book repository
// port. All checks are side-effect-free.
type ValidationInterface interface {
	// CheckAllBooksExist fails with model.ErrInvalidBookID if an id is blank
	// and with model.ErrBooksNotRegistered if any lookup misses.
	CheckAllBooksExist(ctx context.Context, bookIDs []uuid.UUID) error

	// CheckBookExists reports whether a lookup for the id succeeds.
	CheckBookExists(ctx context.Context, bookID uuid.UUID) (bool, error)

	// ValidatePublicationStatusChange fails with model.ErrPublishedImmutable
	// when a published book would be set back to unpublished. Every other
	// transition is allowed.
	ValidatePublicationStatusChange(current *model.Book, proposed model.PublicationStatus) error
}

// CommandInterface orchestrates validation, entity mutation and persistence
// for book writes. Each call is one atomic unit of work.
type CommandInterface interface {
	RegisterBook(ctx context.Context, book model.Book, authorIDs []uuid.UUID) (*model.Book, error)
	UpdateBook(ctx context.Context, bookID uuid.UUID, replacement model.Book, authorIDs []uuid.UUID) error
}

// QueryInterface is the read side, a thin pass-through to the repository.
type QueryInterface interface {
	FindBookByID(ctx context.Context, bookID uuid.UUID) (*model.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
}

// AuthorChecker is the narrow capability this domain needs from author
// validation. Consumer-side interface keeps the two validation services from
// referencing each other directly.
type AuthorChecker interface {
	CheckAllAuthorsExist(ctx context.Context, authorIDs []uuid.UUID) error
}
