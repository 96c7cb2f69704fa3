package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
	"github.com/arpanregmi/cafepos-api/pkg/utils"
)

// AuthService handles PIN login and session token issuance
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// LoginResult is the outcome of a successful PIN login
type LoginResult struct {
	Token string
	User  entity.User
}

// Login finds the user whose PIN hash matches and issues a session token.
// PINs are unique across users, so the first match is the only match.
func (s *AuthService) Login(ctx context.Context, pin string) (*LoginResult, error) {
	if !validPIN(pin) {
		return nil, apperror.NewValidationError("PIN must be exactly 4 digits")
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(pin)) != nil {
			continue
		}
		token, err := s.jwtManager.GenerateAccessToken(u.ID, u.Name, string(u.Role))
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, User: u}, nil
	}

	return nil, apperror.ErrInvalidCredentials
}
