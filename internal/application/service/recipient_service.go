package service

import (
	"context"
	"strings"

	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// RecipientService manages the day-summary email recipient list
type RecipientService struct {
	recipientRepo repository.RecipientRepository
}

// NewRecipientService creates a new recipient service
func NewRecipientService(recipientRepo repository.RecipientRepository) *RecipientService {
	return &RecipientService{recipientRepo: recipientRepo}
}

// List returns all recipient addresses
func (s *RecipientService) List(ctx context.Context) ([]string, error) {
	return s.recipientRepo.List(ctx)
}

// Add stores a recipient address, lowercased
func (s *RecipientService) Add(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return apperror.NewValidationError("A valid email address is required")
	}
	return s.recipientRepo.Mutate(ctx, func(recipients *[]string) error {
		for _, r := range *recipients {
			if r == email {
				return apperror.NewValidationError("Recipient already exists")
			}
		}
		*recipients = append(*recipients, email)
		return nil
	})
}

// Remove deletes a recipient address
func (s *RecipientService) Remove(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.recipientRepo.Mutate(ctx, func(recipients *[]string) error {
		for i, r := range *recipients {
			if r == email {
				*recipients = append((*recipients)[:i], (*recipients)[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFoundError("Recipient")
	})
}
