package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayayoy/lendhub/internal/audit"
	"github.com/ayayoy/lendhub/internal/database/borrows"
	"github.com/ayayoy/lendhub/internal/entities"
)

// BorrowStore defines the borrow workflow operations.
type BorrowStore interface {
	Submit(bookID, userID uint) (*entities.Borrow, error)
	Accept(id uint, returnDate time.Time) error
	Reject(id uint) error
	ListPending() ([]borrows.PendingRequest, error)
	ListAcceptedBooks(userID uint) ([]entities.Book, error)
}

type BorrowsController struct {
	store        BorrowStore
	auditor      *audit.Recorder
	resourcePort int32
}

func NewBorrowsController(store BorrowStore, auditor *audit.Recorder, resourcePort int32) *BorrowsController {
	return &BorrowsController{store: store, auditor: auditor, resourcePort: resourcePort}
}

type submitBorrowRequest struct {
	BookID uint `json:"book_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
}

// Submit files a borrow request. Both ids travel in the body; checks are
// evaluated in order and the first failure determines the reported error.
// POST /borrow
func (bc *BorrowsController) Submit(c *gin.Context) {
	var req submitBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondRuleViolation(c, "book_id and user_id are required")
		return
	}

	borrow, err := bc.store.Submit(req.BookID, req.UserID)
	if err != nil {
		respondDomainError(c, err, "submit borrow request")
		return
	}

	bc.auditor.Record("submit", "borrow", borrow.ID, req)
	respondMsg(c, "Borrow request sent successfully!")
}

// ListPending returns all pending requests enriched with user and book
// data for operator review.
// GET /books/borrow
func (bc *BorrowsController) ListPending(c *gin.Context) {
	requests, err := bc.store.ListPending()
	if err != nil {
		respondInternalError(c, err, "list borrow requests")
		return
	}
	if len(requests) == 0 {
		respondNotFound(c, "Borrow requests not found!")
		return
	}
	c.JSON(http.StatusOK, requests)
}

type acceptBorrowRequest struct {
	ReturnDate string `json:"return_date" binding:"required"`
}

// Accept turns a pending request into a loan.
// PUT /books/borrow/:id/accept
func (bc *BorrowsController) Accept(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req acceptBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondRuleViolation(c, "return_date is required")
		return
	}
	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		respondRuleViolation(c, "return_date must be a valid date")
		return
	}

	if err := bc.store.Accept(id, returnDate); err != nil {
		respondDomainError(c, err, "accept borrow request")
		return
	}

	bc.auditor.Record("accept", "borrow", id, req)
	respondMsg(c, "Borrow request accepted successfully")
}

// Reject removes a pending request.
// DELETE /books/borrow/:id/reject
func (bc *BorrowsController) Reject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.Reject(id); err != nil {
		respondDomainError(c, err, "reject borrow request")
		return
	}

	bc.auditor.Record("reject", "borrow", id, nil)
	respondDeleted(c, "borrow request rejected successfully")
}

// ListBorrowedBooks returns the books currently on loan to a user.
// GET /books/borrowedBooks/:user_id
func (bc *BorrowsController) ListBorrowedBooks(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	loaned, err := bc.store.ListAcceptedBooks(userID)
	if err != nil {
		respondInternalError(c, err, "list borrowed books")
		return
	}
	if len(loaned) == 0 {
		respondNotFound(c, "there is no borrowed books!")
		return
	}
	c.JSON(http.StatusOK, withImageURLs(c, bc.resourcePort, loaned))
}
