package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"book-manager-api/internal/domains/author/model"
	bookmodel "book-manager-api/internal/domains/book/model"
	"book-manager-api/pkg/database"
)

const pgForeignKeyViolation = "23503"

// postgresRepository implements RepositoryInterface over pgx. Every write runs
// the entity row and the association rows in a single transaction.
type postgresRepository struct {
	db database.Beginner
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(db database.Beginner) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Author, error) {
		const query = `
        SELECT id, name, birth_date
        FROM authors
        WHERE id = $1
    `

		var a model.Author
		err := tx.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BirthDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrAuthorNotFound
			}
			return nil, fmt.Errorf("failed to get author by id: %w", err)
		}

		bookIDs, err := associatedBookIDs(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		a = a.WithBooks(bookIDs)
		return &a, nil
	})
}

func (r *postgresRepository) Insert(ctx context.Context, a model.Author) (*model.Author, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Author, error) {
		const query = `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING id
    `

		var id uuid.UUID
		if err := tx.QueryRow(ctx, query, a.Name, a.BirthDate).Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to insert author: %w", err)
		}

		if err := insertAssociations(ctx, tx, id, a.Books()); err != nil {
			return nil, err
		}

		stored := a.WithID(id)
		return &stored, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, a model.Author) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		const query = `
        UPDATE authors
        SET name = $1, birth_date = $2, updated_at = NOW()
        WHERE id = $3
    `

		tag, err := tx.Exec(ctx, query, a.Name, a.BirthDate, a.ID)
		if err != nil {
			return fmt.Errorf("failed to update author: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrAuthorNotFound
		}

		// Association rewrite is delete-all-then-reinsert, not diffed.
		if _, err := tx.Exec(ctx, `DELETE FROM author_books WHERE author_id = $1`, a.ID); err != nil {
			return fmt.Errorf("failed to clear author associations: %w", err)
		}

		return insertAssociations(ctx, tx, a.ID, a.Books())
	})
}

func insertAssociations(ctx context.Context, tx pgx.Tx, authorID uuid.UUID, bookIDs []uuid.UUID) error {
	const query = `
        INSERT INTO author_books (author_id, book_id)
        VALUES ($1, $2)
    `

	for _, bookID := range bookIDs {
		if _, err := tx.Exec(ctx, query, authorID, bookID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return fmt.Errorf("%w: book %s", bookmodel.ErrBooksNotRegistered, bookID)
			}
			return fmt.Errorf("failed to link book %s: %w", bookID, err)
		}
	}

	return nil
}

func associatedBookIDs(ctx context.Context, tx pgx.Tx, authorID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
        SELECT book_id
        FROM author_books
        WHERE author_id = $1
        ORDER BY id
    `

	rows, err := tx.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author associations: %w", err)
	}
	defer rows.Close()

	var bookIDs []uuid.UUID
	for rows.Next() {
		var bookID uuid.UUID
		if err := rows.Scan(&bookID); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		bookIDs = append(bookIDs, bookID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating associations: %w", err)
	}

	return bookIDs, nil
}
