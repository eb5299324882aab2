package http

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the opaque error format for infrastructure failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MsgResponse carries the short human-readable message mutating
// operations answer with.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// ValidationResponse aggregates all field violations of a request.
type ValidationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// --- Error Response Helpers ---

// respondNotFound sends a 404 with a message.
func respondNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, MsgResponse{Msg: msg})
}

// respondValidationErrors sends a 400 listing every violation.
func respondValidationErrors(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, ValidationResponse{Errors: errs})
}

// respondRuleViolation sends a 400 for a single business-rule violation.
// Unlike field validation these never aggregate: the first failing check
// determines the reported error.
func respondRuleViolation(c *gin.Context, msg string) {
	respondValidationErrors(c, []validation.FieldError{{Msg: msg}})
}

// respondInternalError logs the error and sends an opaque 500. The actual
// error is never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondDomainError maps repository errors to HTTP responses: missing
// resources are 404s, business-rule violations are 400s, anything else is
// an opaque 500.
func respondDomainError(c *gin.Context, err error, context string) {
	switch err {
	case database.ErrBookNotFound, database.ErrUserNotFound, database.ErrBorrowNotFound:
		respondNotFound(c, err.Error())
	case database.ErrDuplicateBorrow, database.ErrBorrowLimit,
		database.ErrBookBorrowed, database.ErrNotPending, database.ErrDuplicateISBN:
		respondRuleViolation(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondMsg sends a 200 OK with a message.
func respondMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MsgResponse{Msg: msg})
}

// respondDeleted sends a 200 OK for a completed removal.
func respondDeleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondRuleViolation(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseDate parses the wire date format used for return dates.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
