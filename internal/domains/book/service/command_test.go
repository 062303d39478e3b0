package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	authormodel "book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/book/model"
	repomocks "book-manager-api/internal/domains/book/repository/mocks"
	svcmocks "book-manager-api/internal/domains/book/service/mocks"
)

type commandMocks struct {
	repo       *repomocks.MockRepositoryInterface
	validation *svcmocks.MockValidationInterface
	authors    *svcmocks.MockAuthorChecker
}

func initCommandTest(t *testing.T) (context.Context, commandMocks, CommandInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := commandMocks{
		repo:       repomocks.NewMockRepositoryInterface(ctrl),
		validation: svcmocks.NewMockValidationInterface(ctrl),
		authors:    svcmocks.NewMockAuthorChecker(ctrl),
	}
	return context.Background(), m, NewCommandService(m.repo, m.validation, m.authors)
}

func newBook(t *testing.T, status model.PublicationStatus) model.Book {
	t.Helper()
	b, err := model.NewBook("Snow Country", decimal.NewFromInt(1200), status)
	require.NoError(t, err)
	return b
}

func TestRegisterBook(t *testing.T) {
	t.Parallel()

	authorIDs := []uuid.UUID{uuid.New()}

	t.Run("registers with author associations", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		assigned := uuid.New()

		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).Return(nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input model.Book) (*model.Book, error) {
				require.Equal(t, authorIDs, input.Authors())
				stored := input.WithID(assigned)
				return &stored, nil
			})

		registered, err := s.RegisterBook(ctx, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.NoError(t, err)
		require.Equal(t, assigned, registered.ID)
		require.Equal(t, authorIDs, registered.Authors())
	})

	t.Run("repeated author ids collapse to one association", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		authorID := uuid.New()
		deduped := []uuid.UUID{authorID}

		m.authors.EXPECT().CheckAllAuthorsExist(ctx, deduped).Return(nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input model.Book) (*model.Book, error) {
				require.Equal(t, deduped, input.Authors())
				stored := input.WithID(uuid.New())
				return &stored, nil
			})

		_, err := s.RegisterBook(ctx, newBook(t, model.PublicationStatusUnpublished), []uuid.UUID{authorID, authorID})
		require.NoError(t, err)
	})

	t.Run("unregistered author means nothing is written", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).
			Return(authormodel.ErrAuthorsNotRegistered)

		registered, err := s.RegisterBook(ctx, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.ErrorIs(t, err, authormodel.ErrAuthorsNotRegistered)
		require.Nil(t, registered)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).Return(nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil, errInternal)

		registered, err := s.RegisterBook(ctx, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.ErrorIs(t, err, errInternal)
		require.Nil(t, registered)
	})

	t.Run("insert returning nothing is a registration failure", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).Return(nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil, nil)

		registered, err := s.RegisterBook(ctx, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.ErrorIs(t, err, model.ErrBookRegisterFailed)
		require.Nil(t, registered)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	bookID := uuid.New()
	authorIDs := []uuid.UUID{uuid.New()}

	t.Run("blank id", func(t *testing.T) {
		t.Parallel()
		ctx, _, s := initCommandTest(t)

		err := s.UpdateBook(ctx, uuid.Nil, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.ErrorIs(t, err, model.ErrBookNotFound)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		m.repo.EXPECT().FindByID(ctx, bookID).Return(nil, model.ErrBookNotFound)

		err := s.UpdateBook(ctx, bookID, newBook(t, model.PublicationStatusUnpublished), authorIDs)
		require.ErrorIs(t, err, model.ErrBookNotFound)
	})

	t.Run("status check runs before author checks", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		current := storedBook(t, bookID, model.PublicationStatusPublished)
		replacement := newBook(t, model.PublicationStatusUnpublished)

		m.repo.EXPECT().FindByID(ctx, bookID).Return(current, nil)
		m.validation.EXPECT().ValidatePublicationStatusChange(current, replacement.Status).
			Return(model.ErrPublishedImmutable)

		err := s.UpdateBook(ctx, bookID, replacement, authorIDs)
		require.ErrorIs(t, err, model.ErrPublishedImmutable)
	})

	t.Run("unregistered author blocks the update", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		current := storedBook(t, bookID, model.PublicationStatusUnpublished)
		replacement := newBook(t, model.PublicationStatusUnpublished)

		m.repo.EXPECT().FindByID(ctx, bookID).Return(current, nil)
		m.validation.EXPECT().ValidatePublicationStatusChange(current, replacement.Status).Return(nil)
		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).
			Return(authormodel.ErrAuthorsNotRegistered)

		err := s.UpdateBook(ctx, bookID, replacement, authorIDs)
		require.ErrorIs(t, err, authormodel.ErrAuthorsNotRegistered)
	})

	t.Run("author list is replaced wholesale", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		current := storedBook(t, bookID, model.PublicationStatusUnpublished)
		replacement := newBook(t, model.PublicationStatusPublished)

		m.repo.EXPECT().FindByID(ctx, bookID).Return(current, nil)
		m.validation.EXPECT().ValidatePublicationStatusChange(current, replacement.Status).Return(nil)
		m.authors.EXPECT().CheckAllAuthorsExist(ctx, authorIDs).Return(nil)
		m.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b model.Book) error {
				require.Equal(t, bookID, b.ID)
				require.Equal(t, authorIDs, b.Authors())
				require.Equal(t, model.PublicationStatusPublished, b.Status)
				return nil
			})

		err := s.UpdateBook(ctx, bookID, replacement, authorIDs)
		require.NoError(t, err)
	})

	t.Run("repeated author ids collapse to one association", func(t *testing.T) {
		t.Parallel()
		ctx, m, s := initCommandTest(t)

		authorID := uuid.New()
		deduped := []uuid.UUID{authorID}

		current := storedBook(t, bookID, model.PublicationStatusUnpublished)
		replacement := newBook(t, model.PublicationStatusUnpublished)

		m.repo.EXPECT().FindByID(ctx, bookID).Return(current, nil)
		m.validation.EXPECT().ValidatePublicationStatusChange(current, replacement.Status).Return(nil)
		m.authors.EXPECT().CheckAllAuthorsExist(ctx, deduped).Return(nil)
		m.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b model.Book) error {
				require.Equal(t, deduped, b.Authors())
				return nil
			})

		err := s.UpdateBook(ctx, bookID, replacement, []uuid.UUID{authorID, authorID})
		require.NoError(t, err)
	})
}
