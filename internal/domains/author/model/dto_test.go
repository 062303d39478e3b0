package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthorRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request AuthorRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: AuthorRequest{Name: "Haruki Murakami", BirthDate: "1949-01-12"},
			wantErr: false,
		},
		{
			name:    "name at maximum length",
			request: AuthorRequest{Name: strings.Repeat("a", 500), BirthDate: "1949-01-12"},
			wantErr: false,
		},
		{
			name:    "name missing",
			request: AuthorRequest{BirthDate: "1949-01-12"},
			wantErr: true,
		},
		{
			name:    "name too long",
			request: AuthorRequest{Name: strings.Repeat("a", 501), BirthDate: "1949-01-12"},
			wantErr: true,
		},
		{
			name:    "birth date missing",
			request: AuthorRequest{Name: "Haruki Murakami"},
			wantErr: true,
		},
		{
			name:    "birth date malformed",
			request: AuthorRequest{Name: "Haruki Murakami", BirthDate: "12-01-1949"},
			wantErr: true,
		},
		{
			name:    "birth date not a date",
			request: AuthorRequest{Name: "Haruki Murakami", BirthDate: "not-a-date"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthorRequestParseBirthDate(t *testing.T) {
	t.Parallel()

	r := AuthorRequest{BirthDate: "1949-01-12"}
	parsed, err := r.ParseBirthDate()
	require.NoError(t, err)
	require.Equal(t, time.Date(1949, 1, 12, 0, 0, 0, 0, time.UTC), parsed)
}

func TestAuthorToResponse(t *testing.T) {
	t.Parallel()

	author, err := NewAuthor("Yasunari Kawabata", time.Date(1899, 6, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	resp := author.ToResponse()
	require.Equal(t, "Yasunari Kawabata", resp.Name)
	require.Equal(t, "1899-06-14", resp.BirthDate)
	require.Empty(t, resp.Books)
}
