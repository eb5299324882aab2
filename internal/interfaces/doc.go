// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - CatalogStore: Book catalog CRUD and search (internal/http/books.go)
//   - AccountStore: Account approval workflow (internal/http/users.go)
//   - BorrowStore: Borrow request state machine (internal/http/borrows.go)
//
// ## Authorization Interfaces
//
//   - Policy: Maps capabilities to minimum roles (internal/auth/policy.go)
//   - UserResolver: Resolves API tokens to user IDs (internal/auth/middleware.go)
//
// ## Storage Interfaces
//
//   - Store: Blob storage for book images (internal/storage/store.go)
//
// ## Reporting Interfaces
//
//   - OverdueLister: Feeds the scheduled overdue-loan report (internal/scheduler/overdue_report.go)
//
// # Adding a New Storage Provider
//
// To store book images somewhere other than local disk (e.g., S3):
//
//  1. Create a provider in internal/storage/providers/
//
//     type Store struct {
//         bucket string
//         client *s3.Client
//     }
//
//     func (s *Store) Save(ctx context.Context, ref string, content io.Reader) error
//     func (s *Store) Delete(ctx context.Context, ref string) error
//     func (s *Store) Exists(ctx context.Context, ref string) (bool, error)
//
//     var _ storage.Store = (*Store)(nil)
//
//  2. Construct it in entrypoint.go instead of the disk provider
//
// # Adding a New Authorization Policy
//
// To change which role a capability requires:
//
//  1. Implement Policy in internal/auth/ (or build a StaticPolicy table)
//
//     type TenantPolicy struct { ... }
//
//     func (p *TenantPolicy) MinimumRole(c auth.Capability) auth.Role
//
//     var _ auth.Policy = (*TenantPolicy)(nil)
//
//  2. Pass it to auth.NewMiddleware in entrypoint.go
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., reservations):
//
//  1. Create sub-package: internal/database/reservations/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ ReservationStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
