package http

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ayayoy/lendhub/internal/audit"
	"github.com/ayayoy/lendhub/internal/database/books"
	"github.com/ayayoy/lendhub/internal/entities"
	"github.com/ayayoy/lendhub/internal/storage"
	"github.com/ayayoy/lendhub/internal/tasks"
	"github.com/ayayoy/lendhub/internal/validation"
)

// CatalogStore defines database operations for catalog management.
type CatalogStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	ApplyUpdate(id uint, upd books.Update) (oldImageRef string, err error)
	Delete(id uint) (*entities.Book, error)
	List(search string) ([]entities.Book, error)
	ListSorted() ([]entities.Book, error)
}

type CatalogController struct {
	store        CatalogStore
	images       storage.Store
	taskClient   *tasks.Client
	auditor      *audit.Recorder
	resourcePort int32
}

func NewCatalogController(store CatalogStore, images storage.Store, taskClient *tasks.Client, auditor *audit.Recorder, resourcePort int32) *CatalogController {
	return &CatalogController{
		store:        store,
		images:       images,
		taskClient:   taskClient,
		auditor:      auditor,
		resourcePort: resourcePort,
	}
}

type createBookForm struct {
	Title      string `form:"title" binding:"required,min=10"`
	Author     string `form:"author" binding:"required,min=3"`
	Subject    string `form:"subject" binding:"required,min=2"`
	ISBN       string `form:"isbn" binding:"required,numeric,min=13"`
	RackNumber string `form:"rack_number" binding:"required,min=5"`
}

type updateBookForm struct {
	Title      *string `form:"title" binding:"omitempty,min=10"`
	Author     *string `form:"author" binding:"omitempty,min=3"`
	Subject    *string `form:"subject" binding:"omitempty,min=2"`
	ISBN       *string `form:"isbn" binding:"omitempty,numeric,min=13"`
	RackNumber *string `form:"rack_number" binding:"omitempty,min=5"`
}

var bookFieldMessages = map[string]validation.FieldMessages{
	"Title": {
		Param: "title",
		Messages: map[string]string{
			"required": "please enter a valid book title",
			"min":      "book title should be at least 10 characters",
		},
	},
	"Author": {
		Param: "author",
		Messages: map[string]string{
			"required": "please enter a valid author",
			"min":      "author name should be at least 3 characters",
		},
	},
	"Subject": {
		Param: "subject",
		Messages: map[string]string{
			"required": "please enter a valid subject",
			"min":      "subject name should be at least 2 characters",
		},
	},
	"ISBN": {
		Param: "isbn",
		Messages: map[string]string{
			"required": "please enter a valid ISBN",
			"numeric":  "please enter a valid ISBN",
			"min":      "ISBN should be at least 13 characters",
		},
	},
	"RackNumber": {
		Param: "rack_number",
		Messages: map[string]string{
			"required": "please enter a valid rack number",
			"min":      "rack number should be at least 5 characters",
		},
	},
}

// CreateBook adds a book to the catalog.
// POST /books (multipart: fields + image)
func (cc *CatalogController) CreateBook(c *gin.Context) {
	var form createBookForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationErrors(c, validation.Translate(err, bookFieldMessages))
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondValidationErrors(c, []validation.FieldError{{Msg: "Image is Required", Param: "image"}})
		return
	}

	ref := uuid.New().String() + filepath.Ext(file.Filename)
	src, err := file.Open()
	if err != nil {
		respondInternalError(c, err, "open uploaded image")
		return
	}
	defer src.Close()

	if err := cc.images.Save(c.Request.Context(), ref, src); err != nil {
		respondInternalError(c, err, "store book image")
		return
	}

	book := &entities.Book{
		Title:      form.Title,
		Author:     form.Author,
		Subject:    form.Subject,
		ISBN:       form.ISBN,
		RackNumber: form.RackNumber,
		ImageRef:   ref,
	}
	if err := cc.store.Create(book); err != nil {
		cc.enqueueCleanup(ref)
		respondDomainError(c, err, "create book")
		return
	}

	cc.auditor.Record("create", "book", book.ID, book)
	respondMsg(c, "book created successfully!")
}

// UpdateBook merges supplied fields over an existing book. A new image
// replaces the old one; the released blob is cleaned up out-of-band so a
// failing deletion never aborts the update.
// PUT /books/:id (multipart: partial fields, optional image)
func (cc *CatalogController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form updateBookForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationErrors(c, validation.Translate(err, bookFieldMessages))
		return
	}

	upd := books.Update{
		Title:      form.Title,
		Author:     form.Author,
		Subject:    form.Subject,
		ISBN:       form.ISBN,
		RackNumber: form.RackNumber,
	}

	if file, err := c.FormFile("image"); err == nil {
		ref := uuid.New().String() + filepath.Ext(file.Filename)
		src, err := file.Open()
		if err != nil {
			respondInternalError(c, err, "open uploaded image")
			return
		}
		saveErr := cc.images.Save(c.Request.Context(), ref, src)
		src.Close()
		if saveErr != nil {
			respondInternalError(c, saveErr, "store book image")
			return
		}
		upd.ImageRef = &ref
	}

	oldRef, err := cc.store.ApplyUpdate(id, upd)
	if err != nil {
		if upd.ImageRef != nil {
			cc.enqueueCleanup(*upd.ImageRef)
		}
		respondDomainError(c, err, "update book")
		return
	}
	cc.enqueueCleanup(oldRef)

	cc.auditor.Record("update", "book", id, upd)
	respondMsg(c, "book updated successfully")
}

// DeleteBook removes a book that has no borrow rows referencing it.
// DELETE /books/:id
func (cc *CatalogController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := cc.store.Delete(id)
	if err != nil {
		respondDomainError(c, err, "delete book")
		return
	}
	cc.enqueueCleanup(book.ImageRef)

	cc.auditor.Record("delete", "book", id, book)
	respondDeleted(c, "Book deleted successfully")
}

// GetBook returns a single book with its resolved image URL.
// GET /books/:id
func (cc *CatalogController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := cc.store.GetByID(id)
	if err != nil {
		respondDomainError(c, err, "get book")
		return
	}

	book.ImageURL = resolveImageURL(c, cc.resourcePort, book.ImageRef)
	c.JSON(http.StatusOK, book)
}

// ListBooks returns the catalog, optionally filtered by a case-insensitive
// substring across title, author, subject and isbn.
// GET /books?search=term
func (cc *CatalogController) ListBooks(c *gin.Context) {
	found, err := cc.store.List(c.Query("search"))
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, withImageURLs(c, cc.resourcePort, found))
}

// ListBooksSorted returns the catalog ordered by isbn then rack number.
// GET /books/filter
func (cc *CatalogController) ListBooksSorted(c *gin.Context) {
	found, err := cc.store.ListSorted()
	if err != nil {
		respondInternalError(c, err, "list books sorted")
		return
	}
	c.JSON(http.StatusOK, withImageURLs(c, cc.resourcePort, found))
}

// enqueueCleanup schedules best-effort deletion of a released image blob.
func (cc *CatalogController) enqueueCleanup(ref string) {
	if ref == "" || cc.taskClient == nil {
		return
	}
	if _, err := cc.taskClient.Add(tasks.CleanupImageTask{Ref: ref}).Save(); err != nil {
		// the blob leaks until someone removes it by hand; never fail the request
		log.Printf("failed to enqueue cleanup for image %s: %v", ref, err)
	}
}

// resolveImageURL builds the fully-qualified URL under which the external
// resource server exposes the image blob.
func resolveImageURL(c *gin.Context, resourcePort int32, ref string) string {
	if ref == "" {
		return ""
	}
	host := c.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return fmt.Sprintf("http://%s:%d/%s", host, resourcePort, ref)
}

func withImageURLs(c *gin.Context, resourcePort int32, list []entities.Book) []entities.Book {
	for i := range list {
		list[i].ImageURL = resolveImageURL(c, resourcePort, list[i].ImageRef)
	}
	return list
}
