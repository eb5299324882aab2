// Package borrows owns the borrow request lifecycle.
//
// A request is born Pending, and either becomes Accepted (a loan) or is
// rejected, which removes the row. The business rules live in Submit:
// book and user must exist, a (book, user) pair may have at most one
// outstanding row, and a user may not hold more than a configured number
// of pending requests at once. The checks run inside one transaction and
// the unique index on (book_id, user_id) backstops the duplicate check
// against concurrent submissions.
package borrows

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/entities"
)

// DefaultPendingLimit caps simultaneous pending requests per user.
const DefaultPendingLimit = 3

// PendingRequest is a borrow row enriched with the requesting user and the
// requested book for operator review.
type PendingRequest struct {
	ID        uint      `json:"id"`
	BookID    uint      `json:"book_id"`
	UserID    uint      `json:"user_id"`
	Status    int       `json:"status"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// OverdueLoan is an accepted loan whose return date has passed.
type OverdueLoan struct {
	ID         uint      `json:"id"`
	BookID     uint      `json:"book_id"`
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	Title      string    `json:"title"`
	ReturnDate time.Time `json:"return_date"`
}

// Repository handles borrow workflow database operations.
type Repository struct {
	db           *gorm.DB
	pendingLimit int
}

// NewRepository creates a borrow repository. A non-positive limit falls
// back to DefaultPendingLimit.
func NewRepository(db *gorm.DB, pendingLimit int) *Repository {
	if pendingLimit <= 0 {
		pendingLimit = DefaultPendingLimit
	}
	return &Repository{db: db, pendingLimit: pendingLimit}
}

// Submit files a borrow request for the given pair. Checks run in order and
// the first failure wins: book exists, user exists, no outstanding row for
// the pair, pending count below the cap.
func (r *Repository) Submit(bookID, userID uint) (*entities.Borrow, error) {
	borrow := &entities.Borrow{
		BookID: bookID,
		UserID: userID,
		Status: entities.BorrowStatusPending,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entities.Book{}, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrBookNotFound
			}
			return err
		}

		if err := tx.First(&entities.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrUserNotFound
			}
			return err
		}

		var count int64
		err := tx.Model(&entities.Borrow{}).
			Where("book_id = ? AND user_id = ?", bookID, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return database.ErrDuplicateBorrow
		}

		err = tx.Model(&entities.Borrow{}).
			Where("user_id = ? AND status = ?", userID, entities.BorrowStatusPending).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= int64(r.pendingLimit) {
			return database.ErrBorrowLimit
		}

		return tx.Create(borrow).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			// a concurrent submission won the race on the unique index
			return nil, database.ErrDuplicateBorrow
		}
		return nil, err
	}
	return borrow, nil
}

// Accept transitions a pending request to an accepted loan and records the
// agreed return date. Accepting an already accepted loan is a conflict.
func (r *Repository) Accept(id uint, returnDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var borrow entities.Borrow
		if err := tx.First(&borrow, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrBorrowNotFound
			}
			return err
		}
		if borrow.Status != entities.BorrowStatusPending {
			return database.ErrNotPending
		}
		return tx.Model(&borrow).Updates(map[string]any{
			"status":      entities.BorrowStatusAccepted,
			"return_date": returnDate,
		}).Error
	})
}

// Reject removes a pending request. Closing an accepted loan would be a
// "return" transition, which is not modeled, so that case is a conflict.
func (r *Repository) Reject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var borrow entities.Borrow
		if err := tx.First(&borrow, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrBorrowNotFound
			}
			return err
		}
		if borrow.Status != entities.BorrowStatusPending {
			return database.ErrNotPending
		}
		return tx.Delete(&borrow).Error
	})
}

// ListPending returns all pending requests joined with the requesting
// user's email and name and the book title.
func (r *Repository) ListPending() ([]PendingRequest, error) {
	var requests []PendingRequest
	err := r.db.Table("borrow").
		Select("borrow.id, borrow.book_id, borrow.user_id, borrow.status, borrow.created_at, users.email, users.name, books.title").
		Joins("INNER JOIN users ON borrow.user_id = users.id").
		Joins("INNER JOIN books ON borrow.book_id = books.id").
		Where("borrow.status = ?", entities.BorrowStatusPending).
		Order("borrow.created_at ASC").
		Scan(&requests).Error
	return requests, err
}

// ListAcceptedBooks returns the books currently on loan to the user.
func (r *Repository) ListAcceptedBooks(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Model(&entities.Book{}).
		Joins("INNER JOIN borrow ON borrow.book_id = books.id").
		Where("borrow.user_id = ? AND borrow.status = ?", userID, entities.BorrowStatusAccepted).
		Find(&books).Error
	return books, err
}

// ListOverdue returns accepted loans whose return date is before now.
func (r *Repository) ListOverdue(now time.Time) ([]OverdueLoan, error) {
	var loans []OverdueLoan
	err := r.db.Table("borrow").
		Select("borrow.id, borrow.book_id, borrow.user_id, borrow.return_date, users.email, books.title").
		Joins("INNER JOIN users ON borrow.user_id = users.id").
		Joins("INNER JOIN books ON borrow.book_id = books.id").
		Where("borrow.status = ? AND borrow.return_date < ?", entities.BorrowStatusAccepted, now).
		Order("borrow.return_date ASC").
		Scan(&loans).Error
	return loans, err
}
