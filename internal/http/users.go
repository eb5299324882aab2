package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayayoy/lendhub/internal/audit"
	"github.com/ayayoy/lendhub/internal/entities"
)

// AccountStore defines database operations for account management.
type AccountStore interface {
	ListPending() ([]entities.User, error)
	Approve(id uint, returnDate time.Time) error
	Reject(id uint) error
}

type AccountsController struct {
	store   AccountStore
	auditor *audit.Recorder
}

func NewAccountsController(store AccountStore, auditor *audit.Recorder) *AccountsController {
	return &AccountsController{store: store, auditor: auditor}
}

// ListPending returns accounts awaiting approval.
// GET /books/users
func (ac *AccountsController) ListPending(c *gin.Context) {
	pending, err := ac.store.ListPending()
	if err != nil {
		respondInternalError(c, err, "list pending users")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":   "these are users who registered",
		"users": pending,
	})
}

type approveUserRequest struct {
	ReturnDate string `json:"return_date" binding:"required"`
}

// Approve activates a pending account and records the return date.
// PUT /books/users/:id
func (ac *AccountsController) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req approveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondRuleViolation(c, "return_date is required")
		return
	}
	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		respondRuleViolation(c, "return_date must be a valid date")
		return
	}

	if err := ac.store.Approve(id, returnDate); err != nil {
		respondDomainError(c, err, "approve user")
		return
	}

	ac.auditor.Record("approve", "user", id, req)
	respondMsg(c, "user status updated successfully")
}

// Reject permanently removes a pending account.
// DELETE /books/users/:id
func (ac *AccountsController) Reject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.store.Reject(id); err != nil {
		respondDomainError(c, err, "reject user")
		return
	}

	ac.auditor.Record("reject", "user", id, nil)
	respondDeleted(c, "user deleted successfully")
}
