package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// UserRepository owns the users document
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Mutate(ctx context.Context, fn func(users *[]entity.User) error) error
}

// RecipientRepository owns the email recipients document
type RecipientRepository interface {
	List(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, fn func(recipients *[]string) error) error
}
