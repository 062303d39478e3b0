package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/book/model"
	"book-manager-api/internal/domains/book/repository"
)

// validationService implements ValidationInterface.
type validationService struct {
	repo repository.RepositoryInterface
}

// NewValidationService creates the book validation service.
func NewValidationService(repo repository.RepositoryInterface) ValidationInterface {
	return &validationService{repo: repo}
}

func (s *validationService) CheckAllBooksExist(ctx context.Context, bookIDs []uuid.UUID) error {
	for _, id := range bookIDs {
		if id == uuid.Nil {
			return model.ErrInvalidBookID
		}

		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, model.ErrBookNotFound) {
				return model.ErrBooksNotRegistered
			}
			return err
		}
	}

	return nil
}

func (s *validationService) CheckBookExists(ctx context.Context, bookID uuid.UUID) (bool, error) {
	if bookID == uuid.Nil {
		return false, model.ErrInvalidBookID
	}

	if _, err := s.repo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *validationService) ValidatePublicationStatusChange(current *model.Book, proposed model.PublicationStatus) error {
	if current.Status == model.PublicationStatusPublished && proposed == model.PublicationStatusUnpublished {
		return model.ErrPublishedImmutable
	}

	return nil
}
