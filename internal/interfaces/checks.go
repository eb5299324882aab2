package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/ayayoy/lendhub/internal/auth"
	"github.com/ayayoy/lendhub/internal/database/books"
	"github.com/ayayoy/lendhub/internal/database/borrows"
	"github.com/ayayoy/lendhub/internal/database/users"
	"github.com/ayayoy/lendhub/internal/http"
	"github.com/ayayoy/lendhub/internal/scheduler"
	"github.com/ayayoy/lendhub/internal/storage"
	"github.com/ayayoy/lendhub/internal/storage/providers/disk"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CatalogStore implementations
var _ http.CatalogStore = (*books.Repository)(nil)

// AccountStore implementations
var _ http.AccountStore = (*users.Repository)(nil)

// BorrowStore implementations
var _ http.BorrowStore = (*borrows.Repository)(nil)

// =============================================================================
// Authentication
// =============================================================================

// Policy implementations
var _ auth.Policy = (*auth.StaticPolicy)(nil)

// UserResolver implementations
var _ auth.UserResolver = (*users.Repository)(nil)

// =============================================================================
// Storage
// =============================================================================

// Store implementations
var _ storage.Store = (*disk.Store)(nil)

// =============================================================================
// Reporting
// =============================================================================

// OverdueLister implementations
var _ scheduler.OverdueLister = (*borrows.Repository)(nil)
