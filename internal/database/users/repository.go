// Package users provides database operations for account management.
//
// This package implements the AccountStore interface defined in
// internal/http/users.go.
package users

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a user. Registration itself happens outside this system;
// this exists for externally driven provisioning and for tests.
func (r *Repository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a single user.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByToken resolves a user by API token.
func (r *Repository) GetByToken(token string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveToken maps an API token to the owning user's ID. Only approved
// accounts resolve; pending accounts cannot authenticate yet.
func (r *Repository) ResolveToken(token string) (uint, error) {
	user, err := r.GetByToken(token)
	if err != nil {
		return 0, err
	}
	if user.Status != entities.UserStatusApproved {
		return 0, database.ErrUserNotFound
	}
	return user.ID, nil
}

// ListPending returns accounts still waiting for approval.
func (r *Repository) ListPending() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where("status = ?", entities.UserStatusPending).Find(&users).Error
	return users, err
}

// Approve flips the account to approved and records the return date.
// Both values are bound explicitly against their own columns.
func (r *Repository) Approve(id uint, returnDate time.Time) error {
	result := r.db.Model(&entities.User{}).Where("id = ?", id).Updates(map[string]any{
		"status":      entities.UserStatusApproved,
		"return_date": returnDate,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrUserNotFound
	}
	return nil
}

// Reject permanently removes the account.
func (r *Repository) Reject(id uint) error {
	result := r.db.Delete(&entities.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrUserNotFound
	}
	return nil
}
