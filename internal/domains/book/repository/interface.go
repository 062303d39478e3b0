package repository

import (
	"context"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/book/model"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// RepositoryInterface is the persistence port for books. Implementations
// persist the association list as join rows and resolve it on read.
type RepositoryInterface interface {
	// FindByID returns the book with its author associations, or
	// model.ErrBookNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Insert persists a new book plus its association rows and returns the
	// stored book carrying the generated identifier.
	Insert(ctx context.Context, b model.Book) (*model.Book, error)

	// Update rewrites the book row and recreates its association rows
	// wholesale, all in one transaction.
	Update(ctx context.Context, b model.Book) error

	// FindByAuthorID lists the books associated with an author, each with its
	// own author id list populated, in association order.
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
}
