package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// InventoryService manages inventory purchases and the request workflow
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// Data returns the full inventory ledger
func (s *InventoryService) Data(ctx context.Context) (*entity.InventoryData, error) {
	return s.inventoryRepo.Get(ctx)
}

// AddEntryInput is the input for recording an immediate purchase
type AddEntryInput struct {
	Item       string
	Quantity   float64
	Unit       string
	TotalPrice int64
	PaidVia    enum.PaymentMethod
	AddedBy    string
}

// AddEntry records an immediate inventory purchase
func (s *InventoryService) AddEntry(ctx context.Context, input AddEntryInput) (*entity.InventoryEntry, error) {
	if input.Item == "" {
		return nil, apperror.NewValidationError("Item name is required")
	}
	if input.TotalPrice < 0 {
		return nil, apperror.NewValidationError("Total price cannot be negative")
	}
	if !input.PaidVia.Valid() {
		return nil, apperror.NewValidationError("Paid via must be cash or qr")
	}

	entry := entity.InventoryEntry{
		ID:         uuid.New().String(),
		Item:       input.Item,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		TotalPrice: input.TotalPrice,
		PaidVia:    input.PaidVia,
		AddedBy:    input.AddedBy,
		AddedAt:    time.Now().UTC(),
	}

	err := s.inventoryRepo.Mutate(ctx, func(data *entity.InventoryData) error {
		data.Entries = append(data.Entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateRequestInput is the input for raising a purchase request
type CreateRequestInput struct {
	Item              string
	Quantity          float64
	Unit              string
	Notes             string
	RecommendedPrice  *int64
	RecommendedMethod string
	RequestedBy       string
}

// CreateRequest raises a pending purchase request
func (s *InventoryService) CreateRequest(ctx context.Context, input CreateRequestInput) (*entity.InventoryRequest, error) {
	if input.Item == "" {
		return nil, apperror.NewValidationError("Item name is required")
	}

	request := entity.InventoryRequest{
		ID:                uuid.New().String(),
		Item:              input.Item,
		Quantity:          input.Quantity,
		Unit:              input.Unit,
		Notes:             input.Notes,
		RecommendedPrice:  input.RecommendedPrice,
		RecommendedMethod: input.RecommendedMethod,
		RequestedBy:       input.RequestedBy,
		RequestedAt:       time.Now().UTC(),
		Status:            enum.RequestStatusPending,
	}

	err := s.inventoryRepo.Mutate(ctx, func(data *entity.InventoryData) error {
		data.Requests = append(data.Requests, request)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FulfillRequestInput is the input for fulfilling a request
type FulfillRequestInput struct {
	FulfilledBy string
	TotalPrice  int64
	PaidVia     enum.PaymentMethod
}

// FulfillRequest marks a pending request fulfilled and appends the linked
// inventory entry
func (s *InventoryService) FulfillRequest(ctx context.Context, id string, input FulfillRequestInput) (*entity.InventoryRequest, error) {
	if input.TotalPrice < 0 {
		return nil, apperror.NewValidationError("Total price cannot be negative")
	}
	if !input.PaidVia.Valid() {
		return nil, apperror.NewValidationError("Paid via must be cash or qr")
	}

	var updated entity.InventoryRequest
	err := s.inventoryRepo.Mutate(ctx, func(data *entity.InventoryData) error {
		for i := range data.Requests {
			if data.Requests[i].ID != id {
				continue
			}
			req := &data.Requests[i]
			if req.Status != enum.RequestStatusPending {
				return apperror.NewPreconditionError("Request is already " + string(req.Status))
			}
			now := time.Now().UTC()
			req.Status = enum.RequestStatusFulfilled
			req.FulfilledBy = input.FulfilledBy
			req.FulfilledAt = &now
			req.TotalPrice = &input.TotalPrice
			req.PaidVia = input.PaidVia

			data.Entries = append(data.Entries, entity.InventoryEntry{
				ID:          uuid.New().String(),
				Item:        req.Item,
				Quantity:    req.Quantity,
				Unit:        req.Unit,
				TotalPrice:  input.TotalPrice,
				PaidVia:     input.PaidVia,
				AddedBy:     input.FulfilledBy,
				AddedAt:     now,
				FromRequest: req.ID,
			})
			updated = *req
			return nil
		}
		return apperror.NewNotFoundError("Inventory request")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelRequest marks a pending request cancelled
func (s *InventoryService) CancelRequest(ctx context.Context, id, cancelledBy string) (*entity.InventoryRequest, error) {
	var updated entity.InventoryRequest
	err := s.inventoryRepo.Mutate(ctx, func(data *entity.InventoryData) error {
		for i := range data.Requests {
			if data.Requests[i].ID != id {
				continue
			}
			req := &data.Requests[i]
			if req.Status != enum.RequestStatusPending {
				return apperror.NewPreconditionError("Request is already " + string(req.Status))
			}
			now := time.Now().UTC()
			req.Status = enum.RequestStatusCancelled
			req.CancelledBy = cancelledBy
			req.CancelledAt = &now
			updated = *req
			return nil
		}
		return apperror.NewNotFoundError("Inventory request")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
