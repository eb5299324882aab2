package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Business-rule errors surfaced by the repositories. Controllers map these
// to HTTP statuses; anything else coming out of a repository is treated as
// an infrastructure failure and answered with an opaque 500.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrBorrowNotFound = errors.New("borrow request not found")

	// ErrDuplicateBorrow: the (book, user) pair already has an outstanding
	// borrow row, pending or accepted.
	ErrDuplicateBorrow = errors.New("user has already borrowed this book")

	// ErrBorrowLimit: the user is at the pending-request cap.
	ErrBorrowLimit = errors.New("user has exceeded the maximum number of borrow requests")

	// ErrBookBorrowed: the book cannot be deleted while borrow rows reference it.
	ErrBookBorrowed = errors.New("book has active borrow records")

	// ErrNotPending: accept/reject attempted on a request that already left
	// the pending state.
	ErrNotPending = errors.New("borrow request is not pending")

	// ErrDuplicateISBN: the ISBN already identifies another catalog slot.
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
)

// IsDuplicateKey reports whether err is a unique-constraint violation.
// The string fallback covers sqlite errors the gorm translator misses.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
