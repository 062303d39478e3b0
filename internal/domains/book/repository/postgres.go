package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	authormodel "book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/book/model"
	"book-manager-api/pkg/database"
)

const pgForeignKeyViolation = "23503"

// postgresRepository implements RepositoryInterface over pgx. Every write runs
// the entity row and the association rows in a single transaction.
type postgresRepository struct {
	db database.Beginner
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(db database.Beginner) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Book, error) {
		b, err := scanBook(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

func (r *postgresRepository) Insert(ctx context.Context, b model.Book) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Book, error) {
		const query = `
        INSERT INTO books (title, price, status)
        VALUES ($1, $2, $3)
        RETURNING id
    `

		var id uuid.UUID
		if err := tx.QueryRow(ctx, query, b.Title, b.Price, string(b.Status)).Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to insert book: %w", err)
		}

		if err := insertAssociations(ctx, tx, id, b.Authors()); err != nil {
			return nil, err
		}

		stored := b.WithID(id)
		return &stored, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, b model.Book) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		const query = `
        UPDATE books
        SET title = $1, price = $2, status = $3, updated_at = NOW()
        WHERE id = $4
    `

		tag, err := tx.Exec(ctx, query, b.Title, b.Price, string(b.Status), b.ID)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}

		// Association rewrite is delete-all-then-reinsert, not diffed.
		if _, err := tx.Exec(ctx, `DELETE FROM author_books WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to clear book associations: %w", err)
		}

		return insertAssociations(ctx, tx, b.ID, b.Authors())
	})
}

func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) ([]model.Book, error) {
		const query = `
        SELECT b.id
        FROM books b
        JOIN author_books ab ON ab.book_id = b.id
        WHERE ab.author_id = $1
        ORDER BY ab.id
    `

		rows, err := tx.Query(ctx, query, authorID)
		if err != nil {
			return nil, fmt.Errorf("failed to query books by author: %w", err)
		}

		var bookIDs []uuid.UUID
		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan book id: %w", err)
			}
			bookIDs = append(bookIDs, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating books: %w", err)
		}

		books := make([]model.Book, 0, len(bookIDs))
		for _, id := range bookIDs {
			b, err := scanBook(ctx, tx, id)
			if err != nil {
				return nil, err
			}
			books = append(books, *b)
		}

		return books, nil
	})
}

// scanBook loads one book row and its author associations inside tx.
func scanBook(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Book, error) {
	const query = `
        SELECT id, title, price, status
        FROM books
        WHERE id = $1
    `

	var b model.Book
	var status string
	err := tx.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Price, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	b.Status = model.PublicationStatus(status)

	authorIDs, err := associatedAuthorIDs(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	b = b.WithAuthors(authorIDs)
	return &b, nil
}

func insertAssociations(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, authorIDs []uuid.UUID) error {
	const query = `
        INSERT INTO author_books (author_id, book_id)
        VALUES ($1, $2)
    `

	for _, authorID := range authorIDs {
		if _, err := tx.Exec(ctx, query, authorID, bookID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return fmt.Errorf("%w: author %s", authormodel.ErrAuthorsNotRegistered, authorID)
			}
			return fmt.Errorf("failed to link author %s: %w", authorID, err)
		}
	}

	return nil
}

func associatedAuthorIDs(ctx context.Context, tx pgx.Tx, bookID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
        SELECT author_id
        FROM author_books
        WHERE book_id = $1
        ORDER BY id
    `

	rows, err := tx.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book associations: %w", err)
	}
	defer rows.Close()

	var authorIDs []uuid.UUID
	for rows.Next() {
		var authorID uuid.UUID
		if err := rows.Scan(&authorID); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		authorIDs = append(authorIDs, authorID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating associations: %w", err)
	}

	return authorIDs, nil
}
