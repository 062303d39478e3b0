package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-manager-api/internal/domains/book/model"
	"book-manager-api/internal/domains/book/repository"
)

// commandService implements CommandInterface.
type commandService struct {
	repo       repository.RepositoryInterface
	validation ValidationInterface
	authors    AuthorChecker
}

// NewCommandService creates the book command service. authors supplies the
// author-existence check for the ids a register/update names.
func NewCommandService(repo repository.RepositoryInterface, validation ValidationInterface, authors AuthorChecker) CommandInterface {
	return &commandService{
		repo:       repo,
		validation: validation,
		authors:    authors,
	}
}

func (s *commandService) RegisterBook(ctx context.Context, book model.Book, authorIDs []uuid.UUID) (*model.Book, error) {
	authorIDs = uniqueIDs(authorIDs)

	if err := s.authors.CheckAllAuthorsExist(ctx, authorIDs); err != nil {
		return nil, err
	}

	book = book.WithAuthors(authorIDs)

	registered, err := s.repo.Insert(ctx, book)
	if err != nil {
		return nil, err
	}
	if registered == nil {
		return nil, model.ErrBookRegisterFailed
	}

	log.Info().
		Str("book_id", registered.ID.String()).
		Str("status", string(registered.Status)).
		Int("authors", len(authorIDs)).
		Msg("book registered")

	return registered, nil
}

func (s *commandService) UpdateBook(ctx context.Context, bookID uuid.UUID, replacement model.Book, authorIDs []uuid.UUID) error {
	if bookID == uuid.Nil {
		return model.ErrBookNotFound
	}

	authorIDs = uniqueIDs(authorIDs)

	current, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return err
	}

	// Status check comes before any further checks or mutation.
	if err := s.validation.ValidatePublicationStatusChange(current, replacement.Status); err != nil {
		return err
	}

	if err := s.authors.CheckAllAuthorsExist(ctx, authorIDs); err != nil {
		return err
	}

	replacement = replacement.WithID(bookID).ReplaceAuthors(authorIDs)

	if err := s.repo.Update(ctx, replacement); err != nil {
		return err
	}

	log.Info().
		Str("book_id", bookID.String()).
		Str("status", string(replacement.Status)).
		Int("authors", len(authorIDs)).
		Msg("book updated")

	return nil
}

// uniqueIDs drops duplicate ids while preserving first-occurrence order, so a
// repeated id in a request cannot trip the join table's uniqueness constraint.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

