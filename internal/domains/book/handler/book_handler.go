package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/book/model"
	"book-manager-api/internal/domains/book/service"
	"book-manager-api/internal/shared/response"
)

// AuthorResolver resolves an author id into its full record when shaping a
// book listing.
type AuthorResolver interface {
	FindAuthorByID(ctx context.Context, authorID uuid.UUID) (*authormodel.Author, error)
}

type BookHandler struct {
	command service.CommandInterface
	query   service.QueryInterface
	authors AuthorResolver
}

func NewBookHandler(command service.CommandInterface, query service.QueryInterface, authors AuthorResolver) *BookHandler {
	return &BookHandler{
		command: command,
		query:   query,
		authors: authors,
	}
}

// Register handles POST /v1/books.
func (h *BookHandler) Register(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid book payload", err)
		return
	}

	book, err := model.NewBook(req.Title, req.Price, model.PublicationStatus(req.Status))
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	registered, err := h.command.RegisterBook(c.Request.Context(), book, req.Authors)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Book registered successfully",
		model.RegisteredBookResponse{BookID: registered.ID})
}

// Update handles PUT /v1/books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid book payload", err)
		return
	}

	replacement, err := model.NewBook(req.Title, req.Price, model.PublicationStatus(req.Status))
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	if err := h.command.UpdateBook(c.Request.Context(), id, replacement, req.Authors); err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully",
		model.RegisteredBookResponse{BookID: id})
}

// GetByID handles GET /v1/books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	book, err := h.query.FindBookByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", book.ToResponse())
}

// ListByAuthor handles GET /v1/authors/:id/books. Each book's author id list
// is resolved into full author records, one at a time, in association order.
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	books, err := h.query.ListBooksByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	result := make([]model.BookWithAuthorsResponse, 0, len(books))
	for _, book := range books {
		infos := make([]model.AuthorInfo, 0, len(book.Authors()))
		for _, id := range book.Authors() {
			author, err := h.authors.FindAuthorByID(c.Request.Context(), id)
			if err != nil {
				// A referenced author that cannot be resolved means the
				// referential-integrity invariants were broken; this is a
				// server-side failure, not a caller error.
				log.Error().
					Err(err).
					Str("book_id", book.ID.String()).
					Str("author_id", id.String()).
					Msg("referenced author could not be resolved")
				response.InternalServerError(c, "book references an unknown author")
				return
			}
			infos = append(infos, model.AuthorInfo{
				ID:        author.ID,
				Name:      author.Name,
				BirthDate: author.BirthDate.Format("2006-01-02"),
			})
		}

		result = append(result, model.BookWithAuthorsResponse{
			ID:      book.ID,
			Title:   book.Title,
			Price:   book.Price,
			Status:  book.Status,
			Authors: infos,
		})
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", result)
}

// statusFor maps domain errors to HTTP status codes. The update target not
// existing is a 404; a referenced entity not existing is a caller error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNegativePrice),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidBookID),
		errors.Is(err, model.ErrPublishedImmutable),
		errors.Is(err, authormodel.ErrInvalidAuthorID),
		errors.Is(err, authormodel.ErrAuthorsNotRegistered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) string {
	if code := model.ToErrorCode(err); code != "INTERNAL_ERROR" {
		return code
	}
	return authormodel.ToErrorCode(err)
}
