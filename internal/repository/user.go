package repository

import (
	"context"

	"github.com/azamatb/notekeeper/internal/domain"
)

// UserRepository persists account records. Email uniqueness is enforced by
// the store itself, not by a lookup before insert, so concurrent signups
// with the same email cannot race past each other.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
