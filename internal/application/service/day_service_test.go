package service

import (
	"context"
	"testing"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

func TestStartDayRejectsSecondOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy:   entity.ActorRef{UserID: "u1", UserName: "sita"},
		OpeningCash: 1000,
	}); err != nil {
		t.Fatalf("start day: %v", err)
	}

	if _, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy:   entity.ActorRef{UserID: "u2", UserName: "hari"},
		OpeningCash: 500,
	}); err == nil {
		t.Fatal("expected second start to be rejected while a day is open")
	}

	state, err := env.days.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.CurrentDay == nil || state.CurrentDay.StartingCash != 1000 {
		t.Error("current day should be the first opened day")
	}
}

func TestEndDayWithoutOpenDayFails(t *testing.T) {
	env := newTestEnv(t)

	if _, _, err := env.days.EndDay(context.Background(), EndDayInput{
		EndedBy: entity.ActorRef{UserName: "sita"}, ClosingCash: 0,
	}); err == nil {
		t.Fatal("expected end to fail with no open day")
	}
}

func TestEndDayBlockedByOpenTabsAndActiveStaff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy: entity.ActorRef{UserName: "sita"}, OpeningCash: 500,
	}); err != nil {
		t.Fatalf("start day: %v", err)
	}

	if _, err := env.tabs.AddItem(ctx, "T1", entity.BillItem{Name: "Tea", Price: 50, Quantity: 1}, "sita", ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	if _, _, err := env.days.EndDay(ctx, EndDayInput{EndedBy: entity.ActorRef{UserName: "sita"}}); err == nil {
		t.Fatal("expected end to be blocked")
	}

	blockers, err := env.days.ActiveBlockers(ctx)
	if err != nil {
		t.Fatalf("blockers: %v", err)
	}
	if len(blockers.OpenTables) != 1 || blockers.OpenTables[0] != "T1" {
		t.Errorf("open tables = %v, want [T1]", blockers.OpenTables)
	}
	if len(blockers.ActiveStaff) != 1 || blockers.ActiveStaff[0] != "hari" {
		t.Errorf("active staff = %v, want [hari]", blockers.ActiveStaff)
	}
	if blockers.CanClose() {
		t.Error("CanClose must be false with blockers present")
	}

	// resolve both blockers and close
	if err := env.tabs.CancelTab(ctx, "T1"); err != nil {
		t.Fatalf("cancel tab: %v", err)
	}
	if _, err := env.sheets.ClockOut(ctx, "u1"); err != nil {
		t.Fatalf("clock out: %v", err)
	}

	ended, summary, err := env.days.EndDay(ctx, EndDayInput{
		EndedBy: entity.ActorRef{UserName: "sita"}, ClosingCash: 480,
	})
	if err != nil {
		t.Fatalf("end day: %v", err)
	}
	if ended.EndedAt == nil || ended.ClosingCash == nil || *ended.ClosingCash != 480 {
		t.Error("ended day not recorded")
	}
	if summary == nil {
		t.Fatal("summary missing")
	}

	state, err := env.days.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.CurrentDay != nil {
		t.Error("current day should be nil after close")
	}
	if len(state.History) != 1 {
		t.Errorf("history = %d, want 1", len(state.History))
	}
}

func TestComputeSummaryReconciliation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	day, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy: entity.ActorRef{UserName: "sita"}, OpeningCash: 1000,
	})
	if err != nil {
		t.Fatalf("start day: %v", err)
	}

	// cash 500, qr 300, cash_qr split 150/100, credit 400, partial 600 (250 cash + 350 credit)
	env.cashBill(t, "T1", 500)
	if _, err := env.tabs.AddItem(ctx, "T2", entity.BillItem{Name: "Latte", Price: 300, Quantity: 1}, "sita", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := env.tabs.CompleteTab(ctx, "T2", CompleteTabInput{PaymentMode: enum.PaymentModeQR, User: "sita"}); err != nil {
		t.Fatal(err)
	}
	if _, err := env.tabs.AddItem(ctx, "T3", entity.BillItem{Name: "Momo", Price: 250, Quantity: 1}, "sita", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := env.tabs.CompleteTab(ctx, "T3", CompleteTabInput{
		PaymentMode: enum.PaymentModeCashQR, User: "sita", CashAmount: 150, QRAmount: 100,
	}); err != nil {
		t.Fatal(err)
	}
	env.creditBill(t, "T4", 400, "", "Ram Dai")
	if _, err := env.tabs.AddItem(ctx, "T5", entity.BillItem{Name: "Thali", Price: 600, Quantity: 1}, "sita", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := env.tabs.CompleteTab(ctx, "T5", CompleteTabInput{
		PaymentMode: enum.PaymentModePartial, User: "sita", CreditName: "Gita",
		PartialAmount: 250, PartialMethod: enum.PaymentMethodCash,
	}); err != nil {
		t.Fatal(err)
	}

	// yesterday's credit bill, paid today: 200 cash collected against old credit
	oldBill := env.seedBill(t, entity.Bill{
		Table:       "T9",
		Items:       []entity.BillItem{{Name: "Old Tea", Price: 200, Quantity: 1}},
		Total:       200,
		PaymentMode: enum.PaymentModeCredit,
		CreditName:  "Hari",
		Timestamp:   yesterday(),
	})
	if _, err := env.credit.RecordPayment(ctx, oldBill.ID, RecordPaymentInput{
		Amount: 200, Method: enum.PaymentMethodCash, RecordedBy: "sita",
	}); err != nil {
		t.Fatalf("pay old credit: %v", err)
	}

	// inventory: 300 cash, 120 qr
	if _, err := env.inventory.AddEntry(ctx, AddEntryInput{
		Item: "Milk", Quantity: 10, Unit: "l", TotalPrice: 300, PaidVia: enum.PaymentMethodCash, AddedBy: "sita",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := env.inventory.AddEntry(ctx, AddEntryInput{
		Item: "Sugar", Quantity: 5, Unit: "kg", TotalPrice: 120, PaidVia: enum.PaymentMethodQR, AddedBy: "sita",
	}); err != nil {
		t.Fatal(err)
	}

	summary, err := env.days.ComputeSummary(ctx, *day)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}

	if summary.BillCount != 5 {
		t.Errorf("billCount = %d, want 5 (yesterday's bill excluded)", summary.BillCount)
	}
	if summary.TotalSales != 2050 {
		t.Errorf("totalSales = %d, want 2050", summary.TotalSales)
	}
	// cash: 500 + 150 (split) + 250 (partial paid part)
	if summary.CashFromSales != 900 {
		t.Errorf("cashFromSales = %d, want 900", summary.CashFromSales)
	}
	// qr: 300 + 100 (split)
	if summary.QRFromSales != 400 {
		t.Errorf("qrFromSales = %d, want 400", summary.QRFromSales)
	}
	if summary.CreditGiven != 750 {
		t.Errorf("creditGiven = %d, want 750 (400 credit + 350 partial remainder)", summary.CreditGiven)
	}
	if summary.CashFromCredit != 200 {
		t.Errorf("cashFromCredit = %d, want 200", summary.CashFromCredit)
	}
	if summary.InventoryCash != 300 || summary.InventoryQR != 120 {
		t.Errorf("inventory cash/qr = %d/%d, want 300/120", summary.InventoryCash, summary.InventoryQR)
	}

	// expectedCash = 1000 + 900 + 200 - 300
	if summary.ExpectedCash != 1800 {
		t.Errorf("expectedCash = %d, want 1800", summary.ExpectedCash)
	}
	// expectedQR = 400 + 0 - 120
	if summary.ExpectedQR != 280 {
		t.Errorf("expectedQR = %d, want 280", summary.ExpectedQR)
	}

	if summary.Rent != 800 {
		t.Errorf("rent = %d, want 800", summary.Rent)
	}
	// totalOut = inventory 420 + wages 0 + rent 800
	if summary.TotalOut != 1220 {
		t.Errorf("totalOut = %d, want 1220", summary.TotalOut)
	}
	if summary.NetProfit != summary.TotalSales-summary.TotalOut {
		t.Errorf("netProfit = %d, want totalIn - totalOut", summary.NetProfit)
	}
}

func TestComputeSummaryWagesInPnLNotInExpectedCash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	day, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy: entity.ActorRef{UserName: "sita"}, OpeningCash: 500,
	})
	if err != nil {
		t.Fatalf("start day: %v", err)
	}

	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	entry, err := env.sheets.ClockOut(ctx, "u1")
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if entry.HoursWorked == nil {
		t.Fatal("hours not fixed at clock out")
	}

	summary, err := env.days.ComputeSummary(ctx, *day)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	if len(summary.StaffWages) != 1 {
		t.Fatalf("staff wages = %d, want 1", len(summary.StaffWages))
	}
	// wages appear in totalOut but never reduce expected cash
	if summary.ExpectedCash != 500 {
		t.Errorf("expectedCash = %d, want 500 untouched by wages", summary.ExpectedCash)
	}
	if summary.TotalOut != summary.TotalWages+summary.Rent {
		t.Errorf("totalOut = %d, want wages+rent = %d", summary.TotalOut, summary.TotalWages+summary.Rent)
	}
}

func TestEndDayNotifiesSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// recipients are needed for the notifier to be invoked
	if err := env.recipients.Add(ctx, "owner@example.com"); err != nil {
		t.Fatalf("add recipient: %v", err)
	}

	if _, err := env.days.StartDay(ctx, StartDayInput{
		StartedBy: entity.ActorRef{UserName: "sita"}, OpeningCash: 100,
	}); err != nil {
		t.Fatalf("start day: %v", err)
	}
	if len(env.notifier.started) != 1 {
		t.Errorf("day started notifications = %d, want 1", len(env.notifier.started))
	}

	if _, _, err := env.days.EndDay(ctx, EndDayInput{
		EndedBy: entity.ActorRef{UserName: "sita"}, ClosingCash: 100,
	}); err != nil {
		t.Fatalf("end day: %v", err)
	}
	if len(env.notifier.summaries) != 1 {
		t.Errorf("summary notifications = %d, want 1", len(env.notifier.summaries))
	}
}
