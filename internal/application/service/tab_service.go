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

// TabService is the bill/tab ledger: open tabs keyed by table plus the
// completed bills list. Completing a credit or partial bill notifies the
// credit service so the credit log stays consistent.
type TabService struct {
	billRepo  repository.BillRepository
	creditSvc *CreditService
}

// NewTabService creates a new tab service
func NewTabService(billRepo repository.BillRepository, creditSvc *CreditService) *TabService {
	return &TabService{billRepo: billRepo, creditSvc: creditSvc}
}

// Data returns the full bill/tab ledger
func (s *TabService) Data(ctx context.Context) (*entity.BillData, error) {
	return s.billRepo.Get(ctx)
}

// ReplaceData overwrites the full bill/tab ledger
func (s *TabService) ReplaceData(ctx context.Context, data *entity.BillData) error {
	return s.billRepo.Replace(ctx, data)
}

// CreateBill appends an externally-built completed bill and records the
// credit log entry when the bill was settled on credit
func (s *TabService) CreateBill(ctx context.Context, bill entity.Bill) (*entity.Bill, error) {
	if !bill.PaymentMode.Valid() {
		return nil, apperror.NewValidationError("Unknown payment mode")
	}
	if bill.PaymentMode == enum.PaymentModePartial {
		if bill.PartialPayment == nil {
			return nil, apperror.NewValidationError("Partial bill requires a partial payment breakdown")
		}
		if bill.PartialPayment.CreditAmount != bill.Total-bill.PartialPayment.PaidAmount || bill.PartialPayment.CreditAmount <= 0 {
			return nil, apperror.NewValidationError("Partial payment credit amount must equal total minus paid amount and be positive")
		}
	}
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if bill.Timestamp.IsZero() {
		bill.Timestamp = now
	}
	if bill.CompletedAt.IsZero() {
		bill.CompletedAt = now
	}
	if bill.PaymentMode.IsCredit() {
		bill.CreditPaid = false
		bill.CreditCleared = false
	}

	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		data.CompletedBills = append(data.CompletedBills, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditSvc.RecordCreditGiven(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpdateBillInput carries the patchable bill fields
type UpdateBillInput struct {
	CustomerName *string
	CreditName   *string
	CreditorID   *string
}

// UpdateBill patches the editable fields of a completed bill
func (s *TabService) UpdateBill(ctx context.Context, billID string, input UpdateBillInput) (*entity.Bill, error) {
	var updated entity.Bill
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		bill := data.FindBill(billID)
		if bill == nil {
			return apperror.NewNotFoundError("Bill")
		}
		if input.CustomerName != nil {
			bill.CustomerName = *input.CustomerName
		}
		if input.CreditName != nil {
			bill.CreditName = *input.CreditName
		}
		if input.CreditorID != nil {
			bill.CreditorID = *input.CreditorID
		}
		updated = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// OpenTab opens a tab on a table if none exists yet
func (s *TabService) OpenTab(ctx context.Context, table, customerName string) (*entity.Tab, error) {
	var tab entity.Tab
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		if existing, ok := data.OpenTabs[table]; ok && existing != nil {
			tab = *existing
			return nil
		}
		data.OpenTabs[table] = &entity.Tab{Items: []entity.BillItem{}, CustomerName: customerName}
		tab = *data.OpenTabs[table]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tab, nil
}

// AddItem appends an item to a table's tab, opening the tab if needed
func (s *TabService) AddItem(ctx context.Context, table string, item entity.BillItem, user, customerName string) (*entity.Tab, error) {
	if item.Name == "" {
		return nil, apperror.NewValidationError("Item name is required")
	}
	if item.Price < 0 {
		return nil, apperror.NewValidationError("Item price cannot be negative")
	}

	var tab entity.Tab
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		t, ok := data.OpenTabs[table]
		if !ok || t == nil {
			t = &entity.Tab{Items: []entity.BillItem{}, CustomerName: customerName}
			data.OpenTabs[table] = t
		}
		now := time.Now().UTC()
		item.AddedBy = user
		item.AddedAt = &now
		t.Items = append(t.Items, item)
		tab = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tab, nil
}

// RemoveItem removes the item at index from a table's tab
func (s *TabService) RemoveItem(ctx context.Context, table string, index int) (*entity.Tab, error) {
	var tab entity.Tab
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		t, ok := data.OpenTabs[table]
		if !ok || t == nil {
			return apperror.NewNotFoundError("Tab")
		}
		if index < 0 || index >= len(t.Items) {
			return apperror.NewValidationError("Item index out of range")
		}
		t.Items = append(t.Items[:index], t.Items[index+1:]...)
		tab = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tab, nil
}

// SetCustomer updates the customer name on a table's tab
func (s *TabService) SetCustomer(ctx context.Context, table, customerName string) error {
	return s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		t, ok := data.OpenTabs[table]
		if !ok || t == nil {
			return apperror.NewNotFoundError("Tab")
		}
		t.CustomerName = customerName
		return nil
	})
}

// CompleteTabInput is the settlement input for a tab
type CompleteTabInput struct {
	PaymentMode   enum.PaymentMode
	User          string
	CreditName    string
	CreditorID    string
	CashAmount    int64
	QRAmount      int64
	PartialAmount int64
	PartialMethod enum.PaymentMethod
}

// CompleteTab settles a tab into a completed bill, deletes the tab and, for
// credit/partial modes, records the credit given
func (s *TabService) CompleteTab(ctx context.Context, table string, input CompleteTabInput) (*entity.Bill, error) {
	if !input.PaymentMode.Valid() {
		return nil, apperror.NewValidationError("Unknown payment mode")
	}

	var bill entity.Bill
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		tab, ok := data.OpenTabs[table]
		if !ok || tab == nil {
			return apperror.NewNotFoundError("Tab")
		}
		if len(tab.Items) == 0 {
			return apperror.NewValidationError("Tab has no items")
		}

		total := tab.Total()
		now := time.Now().UTC()
		bill = entity.Bill{
			ID:            uuid.New().String(),
			Table:         table,
			Items:         tab.Items,
			Total:         total,
			PaymentMode:   input.PaymentMode,
			CreditPaid:    !input.PaymentMode.IsCredit(),
			CreditCleared: !input.PaymentMode.IsCredit(),
			CustomerName:  tab.CustomerName,
			CompletedBy:   input.User,
			Timestamp:     now,
			CompletedAt:   now,
		}

		switch input.PaymentMode {
		case enum.PaymentModeCash:
			bill.CashAmount = total
		case enum.PaymentModeQR:
			bill.QRAmount = total
		case enum.PaymentModeCashQR:
			if input.CashAmount+input.QRAmount != total {
				return apperror.NewValidationError("Cash and QR amounts must add up to the bill total")
			}
			bill.CashAmount = input.CashAmount
			bill.QRAmount = input.QRAmount
		case enum.PaymentModeCredit:
			if input.CreditName == "" && input.CreditorID == "" {
				return apperror.NewValidationError("Credit bill requires a creditor")
			}
			bill.CreditName = input.CreditName
			bill.CreditorID = input.CreditorID
		case enum.PaymentModePartial:
			if input.CreditName == "" && input.CreditorID == "" {
				return apperror.NewValidationError("Partial bill requires a creditor")
			}
			if input.PartialAmount <= 0 || input.PartialAmount >= total {
				return apperror.NewValidationError("Partial payment must be more than zero and less than the bill total")
			}
			if !input.PartialMethod.Valid() {
				return apperror.NewValidationError("Partial payment method must be cash or qr")
			}
			bill.CreditName = input.CreditName
			bill.CreditorID = input.CreditorID
			bill.PartialPayment = &entity.PartialPayment{
				PaidAmount:   input.PartialAmount,
				PaidMethod:   input.PartialMethod,
				CreditAmount: total - input.PartialAmount,
			}
		}

		data.CompletedBills = append(data.CompletedBills, bill)
		delete(data.OpenTabs, table)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditSvc.RecordCreditGiven(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// CancelTab discards a table's open tab
func (s *TabService) CancelTab(ctx context.Context, table string) error {
	return s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		delete(data.OpenTabs, table)
		return nil
	})
}

// TransferTab moves an open tab to a vacant table
func (s *TabService) TransferTab(ctx context.Context, table, targetTable string) (*entity.Tab, error) {
	var tab entity.Tab
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		src, ok := data.OpenTabs[table]
		if !ok || src == nil || len(src.Items) == 0 {
			return apperror.NewPreconditionError("Source table is empty")
		}
		if target, ok := data.OpenTabs[targetTable]; ok && target != nil && len(target.Items) > 0 {
			return apperror.NewPreconditionError("Target table is not vacant")
		}
		data.OpenTabs[targetTable] = src
		delete(data.OpenTabs, table)
		tab = *src
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tab, nil
}
