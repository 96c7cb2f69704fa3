package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// CreditService is the credit ledger engine. It derives outstanding-credit
// state from bills and their payment history and enforces the
// request -> approve clearance workflow. The credit log is append-only and
// never consulted for current state.
type CreditService struct {
	billRepo      repository.BillRepository
	creditorRepo  repository.CreditorRepository
	creditLogRepo repository.CreditLogRepository
}

// NewCreditService creates a new credit service
func NewCreditService(
	billRepo repository.BillRepository,
	creditorRepo repository.CreditorRepository,
	creditLogRepo repository.CreditLogRepository,
) *CreditService {
	return &CreditService{
		billRepo:      billRepo,
		creditorRepo:  creditorRepo,
		creditLogRepo: creditLogRepo,
	}
}

// matchesCreditor is the two-stage creditor resolver: prefer the explicit
// creditorId link; fall back to a case-insensitive name match only when the
// bill predates creditor records and carries no id.
func matchesCreditor(b entity.Bill, c entity.Creditor) bool {
	if b.CreditorID != "" {
		return b.CreditorID == c.ID
	}
	return b.CreditName != "" && strings.EqualFold(b.CreditName, c.Name)
}

// RecordCreditGiven appends a credit_given log entry for a bill completed
// with mode credit or partial. It does not mutate the bill.
func (s *CreditService) RecordCreditGiven(ctx context.Context, bill entity.Bill) error {
	if !bill.PaymentMode.IsCredit() {
		return nil
	}
	return s.creditLogRepo.Append(ctx, entity.CreditLogEntry{
		ID:              uuid.New().String(),
		Type:            enum.CreditLogCreditGiven,
		Timestamp:       time.Now().UTC(),
		BillID:          bill.ID,
		Table:           bill.Table,
		CreditName:      bill.CreditName,
		CreditorID:      bill.CreditorID,
		Amount:          bill.OriginalCredit(),
		TotalBillAmount: bill.Total,
		CreatedBy:       bill.CompletedBy,
		CustomerName:    bill.CustomerName,
		PaymentMode:     bill.PaymentMode,
		PartialPayment:  bill.PartialPayment,
	})
}

// RecordPaymentInput is the input for recording a payment against credit
type RecordPaymentInput struct {
	Amount     int64
	Method     enum.PaymentMethod
	RecordedBy string
}

// RecordPayment appends a payment to the bill's credit payments. The payment
// must not exceed the remaining balance; exceeding it is rejected, never
// clamped. Recording a payment does not clear the bill even when it zeroes
// the balance: clearance stays a separate, approvable action.
func (s *CreditService) RecordPayment(ctx context.Context, billID string, input RecordPaymentInput) (*entity.Bill, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewValidationError("Payment amount must be greater than zero")
	}
	if !input.Method.Valid() {
		return nil, apperror.NewValidationError("Payment method must be cash or qr")
	}

	var updated entity.Bill
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		bill := data.FindBill(billID)
		if bill == nil {
			return apperror.NewNotFoundError("Bill")
		}
		if !bill.PaymentMode.IsCredit() {
			return apperror.NewValidationError("Bill has no credit balance")
		}
		if bill.IsCleared() {
			return apperror.NewValidationError("Credit on this bill is already cleared")
		}
		if remaining := bill.Remaining(); input.Amount > remaining {
			return apperror.NewValidationError(fmt.Sprintf("Payment of Rs. %d exceeds remaining balance of Rs. %d", input.Amount, remaining))
		}
		bill.CreditPayments = append(bill.CreditPayments, entity.CreditPayment{
			Amount:     input.Amount,
			Method:     input.Method,
			RecordedBy: input.RecordedBy,
			PaidAt:     time.Now().UTC(),
		})
		updated = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditLogRepo.Append(ctx, entity.CreditLogEntry{
		ID:         uuid.New().String(),
		Type:       enum.CreditLogPaymentReceived,
		Timestamp:  time.Now().UTC(),
		BillID:     updated.ID,
		Table:      updated.Table,
		CreditName: updated.CreditName,
		CreditorID: updated.CreditorID,
		Amount:     input.Amount,
		Method:     input.Method,
		RecordedBy: input.RecordedBy,
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// RequestClear flags a bill's credit for clearance approval. Any staff may
// request; the logged amount is the remaining balance at request time.
func (s *CreditService) RequestClear(ctx context.Context, billID, requestedBy string) (*entity.Bill, error) {
	var updated entity.Bill
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		bill := data.FindBill(billID)
		if bill == nil {
			return apperror.NewNotFoundError("Bill")
		}
		if !bill.PaymentMode.IsCredit() {
			return apperror.NewValidationError("Bill has no credit balance")
		}
		if bill.IsCleared() {
			return apperror.NewValidationError("Credit on this bill is already cleared")
		}
		bill.ClearRequested = true
		bill.ClearRequestedBy = requestedBy
		updated = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditLogRepo.Append(ctx, entity.CreditLogEntry{
		ID:          uuid.New().String(),
		Type:        enum.CreditLogClearRequested,
		Timestamp:   time.Now().UTC(),
		BillID:      updated.ID,
		CreditName:  updated.CreditName,
		CreditorID:  updated.CreditorID,
		Amount:      updated.Remaining(),
		RequestedBy: requestedBy,
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// ApproveClear marks a bill's credit as cleared. Clearance is terminal; a
// second approval attempt is rejected.
func (s *CreditService) ApproveClear(ctx context.Context, billID, approvedBy string) (*entity.Bill, error) {
	var updated entity.Bill
	var clearedAmount int64
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		bill := data.FindBill(billID)
		if bill == nil {
			return apperror.NewNotFoundError("Bill")
		}
		if !bill.PaymentMode.IsCredit() {
			return apperror.NewValidationError("Bill has no credit balance")
		}
		if bill.IsCleared() {
			return apperror.NewValidationError("Credit on this bill is already cleared")
		}
		clearedAmount = bill.Remaining()
		now := time.Now().UTC()
		bill.CreditPaid = true
		bill.CreditCleared = true
		bill.ClearRequested = false
		bill.ClearRequestedBy = ""
		bill.ClearedBy = approvedBy
		bill.ClearedAt = &now
		updated = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.creditLogRepo.Append(ctx, entity.CreditLogEntry{
		ID:         uuid.New().String(),
		Type:       enum.CreditLogCreditCleared,
		Timestamp:  time.Now().UTC(),
		BillID:     updated.ID,
		CreditName: updated.CreditName,
		CreditorID: updated.CreditorID,
		Amount:     clearedAmount,
		ApprovedBy: approvedBy,
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// RejectClear drops a pending clearance request without approving it
func (s *CreditService) RejectClear(ctx context.Context, billID string) (*entity.Bill, error) {
	var updated entity.Bill
	err := s.billRepo.Mutate(ctx, func(data *entity.BillData) error {
		bill := data.FindBill(billID)
		if bill == nil {
			return apperror.NewNotFoundError("Bill")
		}
		if bill.IsCleared() {
			return apperror.NewValidationError("Credit on this bill is already cleared")
		}
		bill.ClearRequested = false
		bill.ClearRequestedBy = ""
		updated = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// OutstandingResult is the outstanding-credit view for one creditor
type OutstandingResult struct {
	Creditor entity.Creditor `json:"creditor"`
	Bills    []entity.Bill   `json:"bills"`
	Total    int64           `json:"total"`
}

// GetOutstanding returns all uncleared credit/partial bills attributed to the
// creditor with the sum of their remaining balances
func (s *CreditService) GetOutstanding(ctx context.Context, creditorID string) (*OutstandingResult, error) {
	creditors, err := s.creditorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var creditor *entity.Creditor
	for i := range creditors {
		if creditors[i].ID == creditorID {
			creditor = &creditors[i]
			break
		}
	}
	if creditor == nil {
		return nil, apperror.NewNotFoundError("Creditor")
	}

	data, err := s.billRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	result := &OutstandingResult{Creditor: *creditor, Bills: []entity.Bill{}}
	for _, b := range data.CompletedBills {
		if !b.PaymentMode.IsCredit() || b.IsCleared() {
			continue
		}
		if !matchesCreditor(b, *creditor) {
			continue
		}
		result.Bills = append(result.Bills, b)
		result.Total += b.Remaining()
	}
	return result, nil
}

// ListLogs returns the credit log, optionally limited to the last N days
func (s *CreditService) ListLogs(ctx context.Context, days int) ([]entity.CreditLogEntry, error) {
	logs, err := s.creditLogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return logs, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	filtered := []entity.CreditLogEntry{}
	for _, l := range logs {
		if !l.Timestamp.Before(cutoff) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// RecentLogs returns log entries from today and yesterday
func (s *CreditService) RecentLogs(ctx context.Context) ([]entity.CreditLogEntry, error) {
	logs, err := s.creditLogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := startOfToday.AddDate(0, 0, -1)
	filtered := []entity.CreditLogEntry{}
	for _, l := range logs {
		if !l.Timestamp.Before(cutoff) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}
