package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayayoy/lendhub/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Every mutating and admin route passes a capability check before its
// handler runs.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	if cfg.MaintenanceMiddleware != nil {
		router.Use(cfg.MaintenanceMiddleware.Handler())
	}
	router.Use(cfg.AuthMiddleware.Handler())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	catalog := NewCatalogController(cfg.CatalogStore, cfg.ImageStore, cfg.TaskClient, cfg.Auditor, cfg.ResourcePort)
	accounts := NewAccountsController(cfg.AccountStore, cfg.Auditor)
	borrowCtrl := NewBorrowsController(cfg.BorrowStore, cfg.Auditor, cfg.ResourcePort)

	m := cfg.AuthMiddleware

	// Catalog browsing
	router.GET("/books", m.Require(auth.CapBrowseCatalog), catalog.ListBooks)
	router.GET("/books/filter", m.Require(auth.CapBrowseCatalog), catalog.ListBooksSorted)
	router.GET("/books/:id", m.Require(auth.CapBrowseCatalog), catalog.GetBook)

	// Catalog management
	router.POST("/books", m.Require(auth.CapManageCatalog), catalog.CreateBook)
	router.PUT("/books/:id", m.Require(auth.CapManageCatalog), catalog.UpdateBook)
	router.DELETE("/books/:id", m.Require(auth.CapManageCatalog), catalog.DeleteBook)

	// Account management
	router.GET("/books/users", m.Require(auth.CapManageAccounts), accounts.ListPending)
	router.PUT("/books/users/:id", m.Require(auth.CapManageAccounts), accounts.Approve)
	router.DELETE("/books/users/:id", m.Require(auth.CapManageAccounts), accounts.Reject)

	// Borrow workflow
	router.POST("/borrow", m.Require(auth.CapBorrow), borrowCtrl.Submit)
	router.GET("/books/borrow", m.Require(auth.CapManageBorrows), borrowCtrl.ListPending)
	router.PUT("/books/borrow/:id/accept", m.Require(auth.CapManageBorrows), borrowCtrl.Accept)
	router.DELETE("/books/borrow/:id/reject", m.Require(auth.CapManageBorrows), borrowCtrl.Reject)
	router.GET("/books/borrowedBooks/:user_id", m.Require(auth.CapBorrow), borrowCtrl.ListBorrowedBooks)

	return router
}
