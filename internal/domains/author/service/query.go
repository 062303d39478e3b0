package service

import (
	"context"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/author/repository"
)

// queryService implements QueryInterface. No business logic lives here.
type queryService struct {
	repo repository.RepositoryInterface
}

// NewQueryService creates the author query service.
func NewQueryService(repo repository.RepositoryInterface) QueryInterface {
	return &queryService{repo: repo}
}

func (s *queryService) FindAuthorByID(ctx context.Context, authorID uuid.UUID) (*model.Author, error) {
	if authorID == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	return s.repo.FindByID(ctx, authorID)
}
