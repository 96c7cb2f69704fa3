package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// CreditorService manages creditor records
type CreditorService struct {
	creditorRepo  repository.CreditorRepository
	creditLogRepo repository.CreditLogRepository
}

// NewCreditorService creates a new creditor service
func NewCreditorService(creditorRepo repository.CreditorRepository, creditLogRepo repository.CreditLogRepository) *CreditorService {
	return &CreditorService{creditorRepo: creditorRepo, creditLogRepo: creditLogRepo}
}

// List returns all creditors
func (s *CreditorService) List(ctx context.Context) ([]entity.Creditor, error) {
	return s.creditorRepo.List(ctx)
}

// CreateCreditorInput is the input for adding a creditor
type CreateCreditorInput struct {
	Name      string
	Phone     string
	Notes     string
	CreatedBy string
}

// Create adds a creditor and appends a creditor_added log entry
func (s *CreditorService) Create(ctx context.Context, input CreateCreditorInput) (*entity.Creditor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError("Creditor name is required")
	}

	creditor := entity.Creditor{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     input.Phone,
		Notes:     input.Notes,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}

	err := s.creditorRepo.Mutate(ctx, func(creditors *[]entity.Creditor) error {
		for _, c := range *creditors {
			if strings.EqualFold(c.Name, name) && c.Active {
				return apperror.NewValidationError("A creditor with this name already exists")
			}
		}
		*creditors = append(*creditors, creditor)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditLogRepo.Append(ctx, entity.CreditLogEntry{
		ID:           uuid.New().String(),
		Type:         enum.CreditLogCreditorAdded,
		Timestamp:    time.Now().UTC(),
		CreditorID:   creditor.ID,
		CreditorName: creditor.Name,
		Phone:        creditor.Phone,
		CreatedBy:    input.CreatedBy,
	}); err != nil {
		return nil, err
	}

	return &creditor, nil
}

// UpdateCreditorInput carries the patchable creditor fields
type UpdateCreditorInput struct {
	Name   *string
	Phone  *string
	Notes  *string
	Active *bool
}

// Update patches a creditor record
func (s *CreditorService) Update(ctx context.Context, id string, input UpdateCreditorInput) (*entity.Creditor, error) {
	var updated entity.Creditor
	err := s.creditorRepo.Mutate(ctx, func(creditors *[]entity.Creditor) error {
		for i := range *creditors {
			if (*creditors)[i].ID != id {
				continue
			}
			c := &(*creditors)[i]
			if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
				c.Name = strings.TrimSpace(*input.Name)
			}
			if input.Phone != nil {
				c.Phone = *input.Phone
			}
			if input.Notes != nil {
				c.Notes = *input.Notes
			}
			if input.Active != nil {
				c.Active = *input.Active
			}
			updated = *c
			return nil
		}
		return apperror.NewNotFoundError("Creditor")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a creditor record
func (s *CreditorService) Delete(ctx context.Context, id string) error {
	return s.creditorRepo.Mutate(ctx, func(creditors *[]entity.Creditor) error {
		for i := range *creditors {
			if (*creditors)[i].ID == id {
				*creditors = append((*creditors)[:i], (*creditors)[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFoundError("Creditor")
	})
}
