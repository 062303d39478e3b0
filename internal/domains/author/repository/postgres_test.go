package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"book-manager-api/internal/domains/author/model"
)

var errInternal = errors.New("internal error")

func initRepoTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, RepositoryInterface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return context.Background(), mock, NewPostgresRepository(mock)
}

func testAuthor(t *testing.T, bookIDs ...uuid.UUID) model.Author {
	t.Helper()
	a, err := model.NewAuthor("Osamu Dazai", time.Date(1909, 6, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return a.WithBooks(bookIDs)
}

func TestAuthorFindByID(t *testing.T) {
	t.Parallel()

	t.Run("found with associations", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		authorID := uuid.New()
		firstBook := uuid.New()
		secondBook := uuid.New()
		birthDate := time.Date(1909, 6, 19, 0, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, birth_date").
			WithArgs(authorID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "birth_date"}).
				AddRow(authorID, "Osamu Dazai", birthDate))
		mock.ExpectQuery("SELECT book_id").
			WithArgs(authorID).
			WillReturnRows(pgxmock.NewRows([]string{"book_id"}).
				AddRow(firstBook).
				AddRow(secondBook))
		mock.ExpectCommit()

		author, err := repo.FindByID(ctx, authorID)
		require.NoError(t, err)
		require.Equal(t, authorID, author.ID)
		require.Equal(t, "Osamu Dazai", author.Name)
		require.Equal(t, []uuid.UUID{firstBook, secondBook}, author.Books())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		authorID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, birth_date").
			WithArgs(authorID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "birth_date"}))
		mock.ExpectRollback()

		author, err := repo.FindByID(ctx, authorID)
		require.ErrorIs(t, err, model.ErrAuthorNotFound)
		require.Nil(t, author)
	})
}

func TestAuthorInsert(t *testing.T) {
	t.Parallel()

	t.Run("author row plus association rows", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		assigned := uuid.New()
		bookID := uuid.New()
		author := testAuthor(t, bookID)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO authors").
			WithArgs(author.Name, author.BirthDate).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(assigned))
		mock.ExpectExec("INSERT INTO author_books").
			WithArgs(assigned, bookID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		stored, err := repo.Insert(ctx, author)
		require.NoError(t, err)
		require.Equal(t, assigned, stored.ID)
		require.Equal(t, []uuid.UUID{bookID}, stored.Books())
	})

	t.Run("association failure rolls everything back", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		assigned := uuid.New()
		bookID := uuid.New()
		author := testAuthor(t, bookID)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO authors").
			WithArgs(author.Name, author.BirthDate).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(assigned))
		mock.ExpectExec("INSERT INTO author_books").
			WithArgs(assigned, bookID).
			WillReturnError(errInternal)
		mock.ExpectRollback()

		stored, err := repo.Insert(ctx, author)
		require.ErrorIs(t, err, errInternal)
		require.Nil(t, stored)
	})
}

func TestAuthorUpdate(t *testing.T) {
	t.Parallel()

	t.Run("rewrites the row and the associations", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		authorID := uuid.New()
		bookID := uuid.New()
		author := testAuthor(t, bookID).WithID(authorID)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE authors").
			WithArgs(author.Name, author.BirthDate, authorID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("DELETE FROM author_books").
			WithArgs(authorID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("INSERT INTO author_books").
			WithArgs(authorID, bookID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Update(ctx, author))
	})

	t.Run("zero rows affected means the author is gone", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		authorID := uuid.New()
		author := testAuthor(t).WithID(authorID)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE authors").
			WithArgs(author.Name, author.BirthDate, authorID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.Update(ctx, author), model.ErrAuthorNotFound)
	})
}
