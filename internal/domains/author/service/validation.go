package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/author/repository"
	bookmodel "book-manager-api/internal/domains/book/model"
)

// validationService implements ValidationInterface.
type validationService struct {
	repo  repository.RepositoryInterface
	books BookQuery
}

// NewValidationService creates the author validation service. books supplies
// the book-side reads needed by CheckBookRelationPreservable.
func NewValidationService(repo repository.RepositoryInterface, books BookQuery) ValidationInterface {
	return &validationService{
		repo:  repo,
		books: books,
	}
}

func (s *validationService) CheckAllAuthorsExist(ctx context.Context, authorIDs []uuid.UUID) error {
	for _, id := range authorIDs {
		if id == uuid.Nil {
			return model.ErrInvalidAuthorID
		}

		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, model.ErrAuthorNotFound) {
				return model.ErrAuthorsNotRegistered
			}
			return err
		}
	}

	return nil
}

func (s *validationService) CheckAuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error) {
	if authorID == uuid.Nil {
		return false, model.ErrInvalidAuthorID
	}

	if _, err := s.repo.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *validationService) CheckBookRelationPreservable(ctx context.Context, authorID uuid.UUID, newBookIDs []uuid.UUID) error {
	books, err := s.books.ListBooksByAuthor(ctx, authorID)
	if err != nil {
		return err
	}

	kept := make(map[uuid.UUID]struct{}, len(newBookIDs))
	for _, id := range newBookIDs {
		kept[id] = struct{}{}
	}

	// Every book about to lose this author must keep at least one other.
	for _, book := range books {
		if _, ok := kept[book.ID]; ok {
			continue
		}

		remaining := 0
		for _, id := range book.Authors() {
			if id != authorID {
				remaining++
			}
		}
		if remaining == 0 {
			return fmt.Errorf("%w: book %s", bookmodel.ErrBookNeedsAuthor, book.ID)
		}
	}

	return nil
}
