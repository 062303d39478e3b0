package service

import (
	"context"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/book/model"
	"book-manager-api/internal/domains/book/repository"
)

// queryService implements QueryInterface. No business logic lives here.
type queryService struct {
	repo repository.RepositoryInterface
}

// NewQueryService creates the book query service.
func NewQueryService(repo repository.RepositoryInterface) QueryInterface {
	return &queryService{repo: repo}
}

func (s *queryService) FindBookByID(ctx context.Context, bookID uuid.UUID) (*model.Book, error) {
	if bookID == uuid.Nil {
		return nil, model.ErrBookNotFound
	}

	return s.repo.FindByID(ctx, bookID)
}

func (s *queryService) ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return s.repo.FindByAuthorID(ctx, authorID)
}
