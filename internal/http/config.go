package http

import (
	"github.com/ayayoy/lendhub/internal/audit"
	"github.com/ayayoy/lendhub/internal/auth"
	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/maintenance"
	"github.com/ayayoy/lendhub/internal/storage"
	"github.com/ayayoy/lendhub/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router. This replaces a long parameter list in
// NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Auditor  *audit.Recorder

	// Stores
	CatalogStore CatalogStore
	AccountStore AccountStore
	BorrowStore  BorrowStore

	// Blob store for book images
	ImageStore storage.Store

	// Authorization
	AuthMiddleware *auth.Middleware

	// Read-only maintenance mode
	MaintenanceMiddleware *maintenance.Middleware

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Port of the external server that serves image blobs
	ResourcePort int32

	// Application info
	Version string
}
