package model

import "errors"

var (
	// Construction errors
	ErrNegativePrice = errors.New("price must be zero or positive")
	ErrInvalidStatus = errors.New("publication status is invalid")

	// Validation errors
	ErrInvalidBookID      = errors.New("book id is blank")
	ErrBooksNotRegistered = errors.New("book list contains unregistered entries")
	ErrPublishedImmutable = errors.New("published book cannot be set back to unpublished")
	ErrBookNeedsAuthor    = errors.New("book must keep at least one author")

	// Business rule / persistence errors
	ErrBookNotFound       = errors.New("book not found")
	ErrBookRegisterFailed = errors.New("book registration returned no record")
)

// ToErrorCode converts a book domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrPublishedImmutable):
		return "ILLEGAL_STATUS_TRANSITION"
	case errors.Is(err, ErrBookNeedsAuthor):
		return "MINIMUM_ONE_AUTHOR"
	case errors.Is(err, ErrBooksNotRegistered):
		return "UNREGISTERED_BOOKS"
	case errors.Is(err, ErrInvalidBookID):
		return "INVALID_BOOK_ID"
	case errors.Is(err, ErrNegativePrice), errors.Is(err, ErrInvalidStatus):
		return "INVALID_BOOK"
	default:
		return "INTERNAL_ERROR"
	}
}
