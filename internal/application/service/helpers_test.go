package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/repository"
	"github.com/arpanregmi/cafepos-api/pkg/utils"
)

// stubNotifier records notifications instead of sending email
type stubNotifier struct {
	started   []entity.Day
	summaries []*entity.DaySummary
}

func (n *stubNotifier) SendDayStarted(recipients []string, day entity.Day) error {
	n.started = append(n.started, day)
	return nil
}

func (n *stubNotifier) SendDaySummary(recipients []string, summary *entity.DaySummary) error {
	n.summaries = append(n.summaries, summary)
	return nil
}

// testEnv wires every service against a real store in a temp dir
type testEnv struct {
	store     *jsonstore.Store
	notifier  *stubNotifier
	tabs      *TabService
	credit    *CreditService
	creditors *CreditorService
	days      *DayService
	inventory *InventoryService
	sheets    *TimesheetService
	wages     *WageService
	users      *UserService
	auth       *AuthService
	recipients *RecipientService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := jsonstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	billRepo := repository.NewBillRepository(store)
	creditorRepo := repository.NewCreditorRepository(store)
	creditLogRepo := repository.NewCreditLogRepository(store)
	dayRepo := repository.NewDayRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)
	timesheetRepo := repository.NewTimesheetRepository(store)
	wageRepo := repository.NewWageRepository(store)
	userRepo := repository.NewUserRepository(store)
	recipientRepo := repository.NewRecipientRepository(store)

	notifier := &stubNotifier{}
	credit := NewCreditService(billRepo, creditorRepo, creditLogRepo)

	return &testEnv{
		store:     store,
		notifier:  notifier,
		tabs:      NewTabService(billRepo, credit),
		credit:    credit,
		creditors: NewCreditorService(creditorRepo, creditLogRepo),
		days:      NewDayService(dayRepo, billRepo, inventoryRepo, timesheetRepo, recipientRepo, notifier, 800, 70),
		inventory: NewInventoryService(inventoryRepo),
		sheets:    NewTimesheetService(timesheetRepo),
		wages:     NewWageService(wageRepo, userRepo),
		users:      NewUserService(userRepo),
		auth:       NewAuthService(userRepo, utils.NewJWTManager("test-secret", time.Hour)),
		recipients: NewRecipientService(recipientRepo),
	}
}

// creditBill completes a one-item tab on credit and returns the bill
func (e *testEnv) creditBill(t *testing.T, table string, total int64, creditorID, creditorName string) *entity.Bill {
	t.Helper()
	ctx := context.Background()

	if _, err := e.tabs.AddItem(ctx, table, entity.BillItem{Name: "Milk Tea", Price: total, Quantity: 1}, "sita", ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	bill, err := e.tabs.CompleteTab(ctx, table, CompleteTabInput{
		PaymentMode: enum.PaymentModeCredit,
		User:        "sita",
		CreditName:  creditorName,
		CreditorID:  creditorID,
	})
	if err != nil {
		t.Fatalf("complete credit tab: %v", err)
	}
	return bill
}

// cashBill completes a one-item tab paid in cash
func (e *testEnv) cashBill(t *testing.T, table string, total int64) *entity.Bill {
	t.Helper()
	ctx := context.Background()

	if _, err := e.tabs.AddItem(ctx, table, entity.BillItem{Name: "Americano", Price: total, Quantity: 1}, "sita", ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	bill, err := e.tabs.CompleteTab(ctx, table, CompleteTabInput{
		PaymentMode: enum.PaymentModeCash,
		User:        "sita",
	})
	if err != nil {
		t.Fatalf("complete cash tab: %v", err)
	}
	return bill
}

// seedBill injects a completed bill directly, bypassing tab flow, so tests
// can control timestamps
func (e *testEnv) seedBill(t *testing.T, bill entity.Bill) entity.Bill {
	t.Helper()
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CompletedAt.IsZero() {
		bill.CompletedAt = bill.Timestamp
	}
	billRepo := repository.NewBillRepository(e.store)
	err := billRepo.Mutate(context.Background(), func(data *entity.BillData) error {
		data.CompletedBills = append(data.CompletedBills, bill)
		return nil
	})
	if err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	return bill
}

func yesterday() time.Time {
	return time.Now().UTC().AddDate(0, 0, -1)
}
