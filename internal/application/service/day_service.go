package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// DayNotifier delivers the day-open and day-close summary emails. Delivery
// failures are logged and never fail the day operation.
type DayNotifier interface {
	SendDayStarted(recipients []string, day entity.Day) error
	SendDaySummary(recipients []string, summary *entity.DaySummary) error
}

// DayService is the day accounting engine: it maintains the single-current-day
// lifecycle and computes the end-of-day cash/QR reconciliation.
type DayService struct {
	dayRepo        repository.DayRepository
	billRepo       repository.BillRepository
	inventoryRepo  repository.InventoryRepository
	timesheetRepo  repository.TimesheetRepository
	recipientRepo  repository.RecipientRepository
	notifier       DayNotifier
	dailyRent      int64
	hourlyWageRate int64
}

// NewDayService creates a new day service
func NewDayService(
	dayRepo repository.DayRepository,
	billRepo repository.BillRepository,
	inventoryRepo repository.InventoryRepository,
	timesheetRepo repository.TimesheetRepository,
	recipientRepo repository.RecipientRepository,
	notifier DayNotifier,
	dailyRent, hourlyWageRate int64,
) *DayService {
	return &DayService{
		dayRepo:        dayRepo,
		billRepo:       billRepo,
		inventoryRepo:  inventoryRepo,
		timesheetRepo:  timesheetRepo,
		recipientRepo:  recipientRepo,
		notifier:       notifier,
		dailyRent:      dailyRent,
		hourlyWageRate: hourlyWageRate,
	}
}

// State returns the current day and closed-day history
func (s *DayService) State(ctx context.Context) (*entity.DayState, error) {
	return s.dayRepo.Get(ctx)
}

// StartDayInput is the input for opening a day
type StartDayInput struct {
	StartedBy   entity.ActorRef
	OpeningCash int64
}

// StartDay opens a new accounting day. Rejected when a day is already open.
func (s *DayService) StartDay(ctx context.Context, input StartDayInput) (*entity.Day, error) {
	if input.OpeningCash < 0 {
		return nil, apperror.NewValidationError("Opening cash cannot be negative")
	}

	var day entity.Day
	err := s.dayRepo.Mutate(ctx, func(state *entity.DayState) error {
		if state.CurrentDay != nil {
			return apperror.NewPreconditionError("Day already started")
		}
		day = entity.Day{
			ID:           uuid.New().String(),
			StartedAt:    time.Now().UTC(),
			StartedBy:    input.StartedBy,
			StartingCash: input.OpeningCash,
		}
		state.CurrentDay = &day
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDayStarted(ctx, day)
	return &day, nil
}

// Blockers lists the open tables and clocked-in staff that prevent day close
type Blockers struct {
	OpenTables  []string `json:"openTables"`
	ActiveStaff []string `json:"activeStaff"`
}

// CanClose reports whether nothing blocks the day from closing
func (b Blockers) CanClose() bool {
	return len(b.OpenTables) == 0 && len(b.ActiveStaff) == 0
}

// ActiveBlockers returns the current close blockers without mutating anything
func (s *DayService) ActiveBlockers(ctx context.Context) (*Blockers, error) {
	blockers := &Blockers{OpenTables: []string{}, ActiveStaff: []string{}}

	data, err := s.billRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	for table, tab := range data.OpenTabs {
		if tab != nil && len(tab.Items) > 0 {
			blockers.OpenTables = append(blockers.OpenTables, table)
		}
	}

	entries, err := s.timesheetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Active() {
			blockers.ActiveStaff = append(blockers.ActiveStaff, e.UserName)
		}
	}
	return blockers, nil
}

// EndDayInput is the input for closing a day
type EndDayInput struct {
	EndedBy     entity.ActorRef
	ClosingCash int64
}

// EndDay closes the current day. It fails when no day is open, when tables
// still have open tabs, or when staff remain clocked in; the caller must
// resolve the blockers and retry.
func (s *DayService) EndDay(ctx context.Context, input EndDayInput) (*entity.Day, *entity.DaySummary, error) {
	blockers, err := s.ActiveBlockers(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(blockers.OpenTables) > 0 {
		return nil, nil, apperror.NewPreconditionError("Cannot end day with open tables: " + strings.Join(blockers.OpenTables, ", "))
	}
	if len(blockers.ActiveStaff) > 0 {
		return nil, nil, apperror.NewPreconditionError("Cannot end day while staff are clocked in: " + strings.Join(blockers.ActiveStaff, ", "))
	}

	var ended entity.Day
	var summary *entity.DaySummary
	err = s.dayRepo.Mutate(ctx, func(state *entity.DayState) error {
		if state.CurrentDay == nil {
			return apperror.NewPreconditionError("No day to end")
		}

		var computeErr error
		summary, computeErr = s.ComputeSummary(ctx, *state.CurrentDay)
		if computeErr != nil {
			return computeErr
		}

		now := time.Now().UTC()
		ended = *state.CurrentDay
		ended.EndedAt = &now
		ended.EndedBy = &input.EndedBy
		ended.ClosingCash = &input.ClosingCash
		summary.EndedAt = &now
		summary.EndedBy = &input.EndedBy

		state.History = append(state.History, ended)
		state.CurrentDay = nil
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyDaySummary(ctx, summary)
	return &ended, summary, nil
}

// CurrentSummary computes the reconciliation for the open day
func (s *DayService) CurrentSummary(ctx context.Context) (*entity.DaySummary, error) {
	state, err := s.dayRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if state.CurrentDay == nil {
		return nil, apperror.NewPreconditionError("No day is open")
	}
	return s.ComputeSummary(ctx, *state.CurrentDay)
}

// ComputeSummary aggregates bills, credit collections, inventory spend and
// timesheets for the day's calendar date into the expected-cash/expected-QR
// reconciliation and the P&L summary.
//
// Wages are part of the P&L but are not subtracted from expected cash or QR:
// payouts happen outside the till.
func (s *DayService) ComputeSummary(ctx context.Context, day entity.Day) (*entity.DaySummary, error) {
	data, err := s.billRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.inventoryRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	timesheets, err := s.timesheetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &entity.DaySummary{
		Date:           day.BusinessDate(),
		StartingCash:   day.StartingCash,
		SoldItems:      []entity.SoldItem{},
		InventoryItems: []entity.InventoryEntry{},
		StaffWages:     []entity.StaffWage{},
		Rent:           s.dailyRent,
	}

	// Sales partitioned by payment mode. Credit contributes nothing to cash
	// or QR (money not yet received); partial contributes only the paid part.
	soldIndex := map[string]int{}
	for _, bill := range data.CompletedBills {
		if !day.SameBusinessDate(bill.Timestamp) {
			continue
		}
		summary.BillCount++
		summary.TotalSales += bill.Total

		switch bill.PaymentMode {
		case enum.PaymentModeCash:
			summary.CashFromSales += bill.Total
		case enum.PaymentModeQR:
			summary.QRFromSales += bill.Total
		case enum.PaymentModeCashQR:
			summary.CashFromSales += bill.CashAmount
			summary.QRFromSales += bill.QRAmount
		case enum.PaymentModeCredit:
			summary.CreditGiven += bill.Total
		case enum.PaymentModePartial:
			if bill.PartialPayment != nil {
				if bill.PartialPayment.PaidMethod == enum.PaymentMethodCash {
					summary.CashFromSales += bill.PartialPayment.PaidAmount
				} else {
					summary.QRFromSales += bill.PartialPayment.PaidAmount
				}
				summary.CreditGiven += bill.PartialPayment.CreditAmount
			}
		}

		for _, item := range bill.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			idx, ok := soldIndex[item.Name]
			if !ok {
				idx = len(summary.SoldItems)
				soldIndex[item.Name] = idx
				summary.SoldItems = append(summary.SoldItems, entity.SoldItem{Name: item.Name})
			}
			summary.SoldItems[idx].Quantity += qty
			summary.SoldItems[idx].Total += item.LineTotal()
		}
	}

	// Credit collected today may belong to bills from earlier days, so every
	// bill's payment history is scanned, not just today's bills.
	for _, bill := range data.CompletedBills {
		for _, payment := range bill.CreditPayments {
			if !day.SameBusinessDate(payment.PaidAt) {
				continue
			}
			if payment.Method == enum.PaymentMethodCash {
				summary.CashFromCredit += payment.Amount
			} else {
				summary.QRFromCredit += payment.Amount
			}
		}
	}

	for _, e := range inventory.Entries {
		if !day.SameBusinessDate(e.AddedAt) {
			continue
		}
		summary.InventoryItems = append(summary.InventoryItems, e)
		if e.PaidVia == enum.PaymentMethodQR {
			summary.InventoryQR += e.TotalPrice
		} else {
			summary.InventoryCash += e.TotalPrice
		}
	}
	summary.InventoryTotal = summary.InventoryCash + summary.InventoryQR

	summary.ExpectedCash = summary.StartingCash + summary.CashFromSales + summary.CashFromCredit - summary.InventoryCash
	summary.ExpectedQR = summary.QRFromSales + summary.QRFromCredit - summary.InventoryQR

	for _, t := range timesheets {
		if !day.SameBusinessDate(t.ClockIn) {
			continue
		}
		hours := 0.0
		if t.HoursWorked != nil {
			hours = *t.HoursWorked
		}
		wage := roundHalfUp(hours * float64(s.hourlyWageRate))
		summary.StaffWages = append(summary.StaffWages, entity.StaffWage{
			Name:  t.UserName,
			Hours: hours,
			Wage:  wage,
		})
		summary.TotalWages += wage
	}

	summary.TotalIn = summary.TotalSales
	summary.TotalOut = summary.InventoryTotal + summary.TotalWages + summary.Rent
	summary.NetProfit = summary.TotalIn - summary.TotalOut
	return summary, nil
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

func (s *DayService) notifyDayStarted(ctx context.Context, day entity.Day) {
	recipients, err := s.recipientRepo.List(ctx)
	if err != nil || len(recipients) == 0 {
		log.Warn().Msg("day start email skipped: no recipients")
		return
	}
	if err := s.notifier.SendDayStarted(recipients, day); err != nil {
		log.Error().Err(err).Msg("failed to send day start email")
		return
	}
	log.Info().Str("date", day.BusinessDate()).Msg("day start email sent")
}

func (s *DayService) notifyDaySummary(ctx context.Context, summary *entity.DaySummary) {
	recipients, err := s.recipientRepo.List(ctx)
	if err != nil || len(recipients) == 0 {
		log.Warn().Msg("day end email skipped: no recipients")
		return
	}
	if err := s.notifier.SendDaySummary(recipients, summary); err != nil {
		log.Error().Err(err).Msg("failed to send day end email")
		return
	}
	log.Info().Str("date", summary.Date).Str("net", fmt.Sprintf("%d", summary.NetProfit)).Msg("day end email sent")
}
