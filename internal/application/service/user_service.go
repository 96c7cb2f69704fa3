package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// UserService manages staff accounts and their PINs
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all staff accounts
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// pinInUse reports whether any user other than excludeID already uses the PIN.
// PINs are stored hashed, so the candidate is compared against every hash.
func pinInUse(users []entity.User, pin, excludeID string) bool {
	for _, u := range users {
		if u.ID == excludeID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(pin)) == nil {
			return true
		}
	}
	return false
}

// CreateUserInput is the input for creating a staff account
type CreateUserInput struct {
	Name string
	Role enum.Role
	PIN  string
}

// Create adds a staff account with a hashed PIN
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError("Name is required")
	}
	if !input.Role.Valid() {
		return nil, apperror.NewValidationError("Role must be admin or staff")
	}
	if !validPIN(input.PIN) {
		return nil, apperror.NewValidationError("PIN must be exactly 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      input.Role,
		PINHash:   string(hash),
		CreatedAt: time.Now().UTC(),
	}

	err = s.userRepo.Mutate(ctx, func(users *[]entity.User) error {
		for _, u := range *users {
			if strings.EqualFold(u.Name, name) {
				return apperror.NewValidationError("A user with this name already exists")
			}
		}
		if pinInUse(*users, input.PIN, "") {
			return apperror.NewValidationError("This PIN is already in use")
		}
		*users = append(*users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserInput is the input for updating a staff account
type UpdateUserInput struct {
	Name *string
	Role *enum.Role
}

// Update modifies a staff account's name or role
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error) {
	var updated entity.User
	err := s.userRepo.Mutate(ctx, func(users *[]entity.User) error {
		for i := range *users {
			if (*users)[i].ID != id {
				continue
			}
			u := &(*users)[i]
			if input.Name != nil {
				name := strings.TrimSpace(*input.Name)
				if name == "" {
					return apperror.NewValidationError("Name is required")
				}
				u.Name = name
			}
			if input.Role != nil {
				if !input.Role.Valid() {
					return apperror.NewValidationError("Role must be admin or staff")
				}
				u.Role = *input.Role
			}
			updated = *u
			return nil
		}
		return apperror.NewNotFoundError("User")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a staff account
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Mutate(ctx, func(users *[]entity.User) error {
		for i := range *users {
			if (*users)[i].ID == id {
				*users = append((*users)[:i], (*users)[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFoundError("User")
	})
}

// ChangePIN sets a new PIN for the user after verifying the current one
func (s *UserService) ChangePIN(ctx context.Context, id, currentPIN, newPIN string) error {
	if !validPIN(newPIN) {
		return apperror.NewValidationError("PIN must be exactly 4 digits")
	}
	return s.userRepo.Mutate(ctx, func(users *[]entity.User) error {
		for i := range *users {
			if (*users)[i].ID != id {
				continue
			}
			u := &(*users)[i]
			if bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(currentPIN)) != nil {
				return apperror.NewValidationError("Current PIN is incorrect")
			}
			if pinInUse(*users, newPIN, id) {
				return apperror.NewValidationError("This PIN is already in use")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u.PINHash = string(hash)
			return nil
		}
		return apperror.NewNotFoundError("User")
	})
}
