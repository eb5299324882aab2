package entities

import (
	"time"
)

// User account states. Accounts are created externally (registration) and
// start out pending until an administrator approves them.
const (
	UserStatusPending  = 0
	UserStatusApproved = 1
)

// Borrow states. A rejected request is hard-deleted, so there is no
// terminal "rejected" value stored in the table.
const (
	BorrowStatusPending  = 0
	BorrowStatusAccepted = 1
)

type Book struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"index;size:512" json:"title"`
	Author     string    `gorm:"index;size:256" json:"author"`
	Subject    string    `gorm:"index;size:256" json:"subject"`
	ISBN       string    `gorm:"uniqueIndex;size:20" json:"isbn"`
	RackNumber string    `gorm:"size:50" json:"rack_number"`
	ImageRef   string    `gorm:"size:1024" json:"-"`
	ImageURL   string    `gorm:"-" json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Email      string     `gorm:"uniqueIndex;size:255" json:"email"`
	Name       string     `gorm:"size:256" json:"name"`
	Token      string     `gorm:"index;size:64" json:"-"` // API token, hidden from JSON
	Status     int        `gorm:"index;default:0" json:"status"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Borrow links a user to a book they asked to loan. The composite unique
// index on (book_id, user_id) is the authoritative duplicate guard: two
// concurrent submissions for the same pair cannot both insert.
type Borrow struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	BookID     uint       `gorm:"uniqueIndex:idx_borrow_book_user" json:"book_id"`
	UserID     uint       `gorm:"uniqueIndex:idx_borrow_book_user;index" json:"user_id"`
	Status     int        `gorm:"index;default:0" json:"status"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

func (User) TableName() string {
	return "users"
}

func (Borrow) TableName() string {
	return "borrow"
}
