package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name       string
		birthDate  time.Time
		errRequire error
	}{
		{
			name:       "date in the past",
			birthDate:  now.AddDate(0, 0, -1),
			errRequire: nil,
		},
		{
			name:       "date far in the past",
			birthDate:  time.Date(1920, 3, 14, 0, 0, 0, 0, time.UTC),
			errRequire: nil,
		},
		{
			name:       "today is not in the past",
			birthDate:  now,
			errRequire: ErrBirthDateNotPast,
		},
		{
			name:       "date in the future",
			birthDate:  now.AddDate(0, 0, 1),
			errRequire: ErrBirthDateNotPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			author, err := NewAuthor("Natsume Soseki", tt.birthDate)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, author)
				return
			}

			require.Equal(t, "Natsume Soseki", author.Name)
			require.Equal(t, uuid.Nil, author.ID)
			require.Empty(t, author.Books())
		})
	}
}

func TestAuthorTodayMidnightRejected(t *testing.T) {
	t.Parallel()

	// Even the very start of today fails; only strictly earlier calendar
	// dates are accepted.
	y, m, d := time.Now().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	_, err := NewAuthor("x", midnight)
	require.ErrorIs(t, err, ErrBirthDateNotPast)
}

func TestAuthorWithBooksDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base, err := NewAuthor("a", time.Now().AddDate(-30, 0, 0))
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()

	withOne := base.WithBooks([]uuid.UUID{first})
	withTwo := withOne.WithBooks([]uuid.UUID{second})

	require.Empty(t, base.Books())
	require.Equal(t, []uuid.UUID{first}, withOne.Books())
	require.Equal(t, []uuid.UUID{first, second}, withTwo.Books())
}

func TestAuthorReplaceBooks(t *testing.T) {
	t.Parallel()

	base, err := NewAuthor("a", time.Now().AddDate(-30, 0, 0))
	require.NoError(t, err)

	original := []uuid.UUID{uuid.New(), uuid.New()}
	replacement := []uuid.UUID{uuid.New()}

	populated := base.WithBooks(original)

	replaced := populated.ReplaceBooks(replacement)
	require.Equal(t, replacement, replaced.Books())
	require.Equal(t, original, populated.Books())

	cleared := populated.ReplaceBooks(nil)
	require.Empty(t, cleared.Books())
}

func TestAuthorBooksReturnsCopy(t *testing.T) {
	t.Parallel()

	base, err := NewAuthor("a", time.Now().AddDate(-30, 0, 0))
	require.NoError(t, err)

	id := uuid.New()
	populated := base.WithBooks([]uuid.UUID{id})

	leaked := populated.Books()
	leaked[0] = uuid.New()

	require.Equal(t, []uuid.UUID{id}, populated.Books())
}

func TestAuthorWithID(t *testing.T) {
	t.Parallel()

	base, err := NewAuthor("a", time.Now().AddDate(-30, 0, 0))
	require.NoError(t, err)

	id := uuid.New()
	bound := base.WithID(id)

	require.Equal(t, id, bound.ID)
	require.Equal(t, uuid.Nil, base.ID)
}
