// Package books provides database operations for the book catalog.
//
// This package implements the CatalogStore interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.CatalogStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(42)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/entities"
)

// Update carries a partial set of book fields. Nil pointers leave the
// existing value untouched.
type Update struct {
	Title      *string
	Author     *string
	Subject    *string
	ISBN       *string
	RackNumber *string
	ImageRef   *string
}

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book and fills in its identity.
func (r *Repository) Create(book *entities.Book) error {
	err := r.db.Create(book).Error
	if err != nil && database.IsDuplicateKey(err) {
		return database.ErrDuplicateISBN
	}
	return err
}

// GetByID retrieves a single book.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ApplyUpdate merges the supplied fields over the stored record. Fields not
// supplied keep their current values. When the image reference is replaced,
// the previous reference is returned so the caller can release the old blob;
// otherwise the returned string is empty.
func (r *Repository) ApplyUpdate(id uint, upd Update) (oldImageRef string, err error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", database.ErrBookNotFound
		}
		return "", err
	}

	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.Subject != nil {
		book.Subject = *upd.Subject
	}
	if upd.ISBN != nil {
		book.ISBN = *upd.ISBN
	}
	if upd.RackNumber != nil {
		book.RackNumber = *upd.RackNumber
	}
	if upd.ImageRef != nil && *upd.ImageRef != book.ImageRef {
		oldImageRef = book.ImageRef
		book.ImageRef = *upd.ImageRef
	}

	if err := r.db.Save(&book).Error; err != nil {
		return "", err
	}
	return oldImageRef, nil
}

// Delete removes a book and returns the deleted record. It refuses to
// delete while borrow rows still reference the book, so accepted loans
// and pending requests never dangle.
func (r *Repository) Delete(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrBookNotFound
			}
			return err
		}

		var active int64
		if err := tx.Model(&entities.Borrow{}).Where("book_id = ?", id).Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return database.ErrBookBorrowed
		}

		return tx.Delete(&entities.Book{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns books matching the search term as a case-insensitive
// substring across title, author, subject and isbn. An empty term
// returns the whole catalog.
func (r *Repository) List(search string) ([]entities.Book, error) {
	var books []entities.Book
	query := r.db
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?) OR isbn LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	err := query.Find(&books).Error
	return books, err
}

// ListSorted returns the whole catalog ordered by isbn then rack number.
func (r *Repository) ListSorted() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("isbn ASC, rack_number ASC").Find(&books).Error
	return books, err
}
