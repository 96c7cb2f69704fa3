package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// WageService records wage payouts to staff
type WageService struct {
	wageRepo repository.WageRepository
	userRepo repository.UserRepository
}

// NewWageService creates a new wage service
func NewWageService(wageRepo repository.WageRepository, userRepo repository.UserRepository) *WageService {
	return &WageService{wageRepo: wageRepo, userRepo: userRepo}
}

// List returns all wage payments
func (s *WageService) List(ctx context.Context) ([]entity.WagePayment, error) {
	return s.wageRepo.List(ctx)
}

// PayInput is the input for recording a wage payout
type PayInput struct {
	UserID string
	Amount int64
	PaidBy string
}

// Pay records a wage payout to the given staff member
func (s *WageService) Pay(ctx context.Context, input PayInput) (*entity.WagePayment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewValidationError("Amount must be greater than zero")
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var user *entity.User
	for i := range users {
		if users[i].ID == input.UserID {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	payment := entity.WagePayment{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		UserName: user.Name,
		Amount:   input.Amount,
		PaidBy:   input.PaidBy,
		PaidAt:   time.Now().UTC(),
	}
	if err := s.wageRepo.Append(ctx, payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
