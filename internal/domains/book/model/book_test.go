package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		price      decimal.Decimal
		status     PublicationStatus
		errRequire error
	}{
		{
			name:       "unpublished with positive price",
			price:      decimal.NewFromInt(1500),
			status:     PublicationStatusUnpublished,
			errRequire: nil,
		},
		{
			name:       "published with zero price",
			price:      decimal.Zero,
			status:     PublicationStatusPublished,
			errRequire: nil,
		},
		{
			name:       "negative price",
			price:      decimal.NewFromInt(-1),
			status:     PublicationStatusUnpublished,
			errRequire: ErrNegativePrice,
		},
		{
			name:       "unknown status",
			price:      decimal.NewFromInt(100),
			status:     PublicationStatus("DRAFT"),
			errRequire: ErrInvalidStatus,
		},
		{
			name:       "empty status",
			price:      decimal.NewFromInt(100),
			status:     "",
			errRequire: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			book, err := NewBook("Kokoro", tt.price, tt.status)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, book)
				return
			}

			require.Equal(t, "Kokoro", book.Title)
			require.True(t, tt.price.Equal(book.Price))
			require.Equal(t, tt.status, book.Status)
			require.Empty(t, book.Authors())
		})
	}
}

func TestParsePublicationStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		want       PublicationStatus
		errRequire error
	}{
		{input: "PUBLISHED", want: PublicationStatusPublished},
		{input: "UNPUBLISHED", want: PublicationStatusUnpublished},
		{input: "published", errRequire: ErrInvalidStatus},
		{input: "", errRequire: ErrInvalidStatus},
		{input: "ARCHIVED", errRequire: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePublicationStatus(tt.input)
			require.ErrorIs(t, err, tt.errRequire)
			if err == nil {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBookWithAuthorsDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base, err := NewBook("b", decimal.NewFromInt(100), PublicationStatusUnpublished)
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()

	withOne := base.WithAuthors([]uuid.UUID{first})
	withTwo := withOne.WithAuthors([]uuid.UUID{second})

	require.Empty(t, base.Authors())
	require.Equal(t, []uuid.UUID{first}, withOne.Authors())
	require.Equal(t, []uuid.UUID{first, second}, withTwo.Authors())
}

func TestBookReplaceAuthors(t *testing.T) {
	t.Parallel()

	base, err := NewBook("b", decimal.NewFromInt(100), PublicationStatusUnpublished)
	require.NoError(t, err)

	original := []uuid.UUID{uuid.New(), uuid.New()}
	replacement := []uuid.UUID{uuid.New()}

	populated := base.WithAuthors(original)

	replaced := populated.ReplaceAuthors(replacement)
	require.Equal(t, replacement, replaced.Authors())
	require.Equal(t, original, populated.Authors())

	cleared := populated.ReplaceAuthors(nil)
	require.Empty(t, cleared.Authors())
}
