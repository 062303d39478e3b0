package repository

import (
	"context"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/author/model"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// RepositoryInterface is the persistence port for authors. Implementations
// persist the association list as join rows and resolve it on read; the
// services only ever see authors with the list already populated.
type RepositoryInterface interface {
	// FindByID returns the author with its book associations, or
	// model.ErrAuthorNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Insert persists a new author plus its association rows and returns the
	// stored author carrying the generated identifier.
	Insert(ctx context.Context, a model.Author) (*model.Author, error)

	// Update rewrites the author row and recreates its association rows
	// wholesale, all in one transaction.
	Update(ctx context.Context, a model.Author) error
}
