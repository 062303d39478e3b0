package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/author/repository"
)

// commandService implements CommandInterface.
type commandService struct {
	repo       repository.RepositoryInterface
	validation ValidationInterface
	books      BookChecker
}

// NewCommandService creates the author command service. books supplies the
// book-existence check used when a register/update names book ids.
func NewCommandService(repo repository.RepositoryInterface, validation ValidationInterface, books BookChecker) CommandInterface {
	return &commandService{
		repo:       repo,
		validation: validation,
		books:      books,
	}
}

func (s *commandService) RegisterAuthor(ctx context.Context, author model.Author, bookIDs []uuid.UUID) (*model.Author, error) {
	bookIDs = uniqueIDs(bookIDs)

	// A registration without book ids persists the author as-is.
	if len(bookIDs) > 0 {
		if err := s.books.CheckAllBooksExist(ctx, bookIDs); err != nil {
			return nil, err
		}
		author = author.WithBooks(bookIDs)
	}

	registered, err := s.repo.Insert(ctx, author)
	if err != nil {
		return nil, err
	}
	if registered == nil {
		return nil, model.ErrAuthorRegisterFailed
	}

	log.Info().
		Str("author_id", registered.ID.String()).
		Int("books", len(bookIDs)).
		Msg("author registered")

	return registered, nil
}

func (s *commandService) UpdateAuthor(ctx context.Context, authorID uuid.UUID, name string, birthDate time.Time, bookIDs []uuid.UUID) error {
	if authorID == uuid.Nil {
		return model.ErrInvalidAuthorID
	}

	bookIDs = uniqueIDs(bookIDs)

	// The update target must exist before any other failure can surface.
	if _, err := s.repo.FindByID(ctx, authorID); err != nil {
		return err
	}

	// Refuse the whole update if dropping a book would leave it authorless.
	if err := s.validation.CheckBookRelationPreservable(ctx, authorID, bookIDs); err != nil {
		return err
	}

	// The replacement entity is built only after the target and relation
	// checks pass, so a construction failure never masks a missing target.
	replacement, err := model.NewAuthor(name, birthDate)
	if err != nil {
		return err
	}
	replacement = replacement.WithID(authorID)

	if len(bookIDs) == 0 {
		replacement = replacement.ReplaceBooks(nil)
		return s.update(ctx, replacement)
	}

	if err := s.books.CheckAllBooksExist(ctx, bookIDs); err != nil {
		return err
	}
	replacement = replacement.ReplaceBooks(bookIDs)

	return s.update(ctx, replacement)
}

func (s *commandService) update(ctx context.Context, a model.Author) error {
	if err := s.repo.Update(ctx, a); err != nil {
		return err
	}

	log.Info().
		Str("author_id", a.ID.String()).
		Int("books", len(a.Books())).
		Msg("author updated")

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
