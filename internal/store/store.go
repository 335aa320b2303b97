// Package store holds the credential store behind an interface so handlers
// and eligibility checks can be exercised against an in-memory fake.
package store

import (
	"context"
	"errors"

	"github.com/Abdukarim17/fluentia/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Users interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}
