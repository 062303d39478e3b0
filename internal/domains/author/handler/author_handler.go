package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"book-manager-api/internal/domains/author/model"
	"book-manager-api/internal/domains/author/service"
	bookmodel "book-manager-api/internal/domains/book/model"
	"book-manager-api/internal/shared/response"
)

type AuthorHandler struct {
	command service.CommandInterface
	query   service.QueryInterface
}

func NewAuthorHandler(command service.CommandInterface, query service.QueryInterface) *AuthorHandler {
	return &AuthorHandler{
		command: command,
		query:   query,
	}
}

// Register handles POST /v1/authors.
func (h *AuthorHandler) Register(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid author payload", err)
		return
	}

	birthDate, err := req.ParseBirthDate()
	if err != nil {
		response.BadRequest(c, "birth_date must be formatted as YYYY-MM-DD")
		return
	}

	author, err := model.NewAuthor(req.Name, birthDate)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	registered, err := h.command.RegisterAuthor(c.Request.Context(), author, req.Books)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Author registered successfully",
		model.RegisteredAuthorResponse{AuthorID: registered.ID})
}

// Update handles PUT /v1/authors/:id.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid author payload", err)
		return
	}

	birthDate, err := req.ParseBirthDate()
	if err != nil {
		response.BadRequest(c, "birth_date must be formatted as YYYY-MM-DD")
		return
	}

	if err := h.command.UpdateAuthor(c.Request.Context(), id, req.Name, birthDate, req.Books); err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Author updated successfully",
		model.RegisteredAuthorResponse{AuthorID: id})
}

// GetByID handles GET /v1/authors/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	author, err := h.query.FindAuthorByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), codeFor(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved successfully", author.ToResponse())
}

// statusFor maps domain errors to HTTP status codes. The update target not
// existing is a 404; a referenced entity not existing is a caller error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrBirthDateNotPast),
		errors.Is(err, model.ErrInvalidAuthorID),
		errors.Is(err, bookmodel.ErrInvalidBookID),
		errors.Is(err, bookmodel.ErrBooksNotRegistered),
		errors.Is(err, bookmodel.ErrBookNeedsAuthor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) string {
	if code := model.ToErrorCode(err); code != "INTERNAL_ERROR" {
		return code
	}
	return bookmodel.ToErrorCode(err)
}
