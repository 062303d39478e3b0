package model

import "errors"

var (
	// Construction errors
	ErrBirthDateNotPast = errors.New("birth date must be before the current date")

	// Validation errors
	ErrInvalidAuthorID      = errors.New("author id is blank")
	ErrAuthorsNotRegistered = errors.New("author list contains unregistered entries")

	// Business rule / persistence errors
	ErrAuthorNotFound       = errors.New("author not found")
	ErrAuthorRegisterFailed = errors.New("author registration returned no record")
)

// ToErrorCode converts an author domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrBirthDateNotPast):
		return "INVALID_BIRTH_DATE"
	case errors.Is(err, ErrInvalidAuthorID):
		return "INVALID_AUTHOR_ID"
	case errors.Is(err, ErrAuthorsNotRegistered):
		return "UNREGISTERED_AUTHORS"
	default:
		return "INTERNAL_ERROR"
	}
}
