package service

import (
	"context"
	"testing"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

func TestAddItemOpensTabAndAccumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tab, err := env.tabs.AddItem(ctx, "T1", entity.BillItem{Name: "Tea", Price: 50, Quantity: 2}, "sita", "Kiran")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if tab.CustomerName != "Kiran" {
		t.Errorf("customerName = %q, want Kiran", tab.CustomerName)
	}

	tab, err = env.tabs.AddItem(ctx, "T1", entity.BillItem{Name: "Sel Roti", Price: 30, Quantity: 1}, "sita", "")
	if err != nil {
		t.Fatalf("add second item: %v", err)
	}
	if len(tab.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(tab.Items))
	}
	if tab.Total() != 130 {
		t.Errorf("total = %d, want 130", tab.Total())
	}
	if tab.Items[0].AddedBy != "sita" || tab.Items[0].AddedAt == nil {
		t.Error("item attribution not stamped")
	}
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.tabs.AddItem(ctx, "T1", entity.BillItem{Name: "", Price: 50}, "sita", ""); err == nil {
		t.Error("expected nameless item to be rejected")
	}
	if _, err := env.tabs.AddItem(ctx, "T1", entity.BillItem{Name: "Tea", Price: -1}, "sita", ""); err == nil {
		t.Error("expected negative price to be rejected")
	}
}

func TestRemoveItemByIndex(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Tea", 50)
	env.mustAddItem(t, "T1", "Coffee", 120)

	tab, err := env.tabs.RemoveItem(ctx, "T1", 0)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if len(tab.Items) != 1 || tab.Items[0].Name != "Coffee" {
		t.Errorf("items after removal = %+v, want only Coffee", tab.Items)
	}

	if _, err := env.tabs.RemoveItem(ctx, "T1", 5); err == nil {
		t.Error("expected out-of-range index to be rejected")
	}
	if _, err := env.tabs.RemoveItem(ctx, "T9", 0); err == nil {
		t.Error("expected missing tab to be rejected")
	}
}

func TestCompleteTabCashDeletesTab(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Tea", 50)
	bill, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModeCash, User: "sita",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if bill.Total != 50 || bill.CashAmount != 50 {
		t.Errorf("bill total/cash = %d/%d, want 50/50", bill.Total, bill.CashAmount)
	}
	if !bill.IsCleared() {
		t.Error("cash bill must not carry credit state")
	}

	data, err := env.tabs.Data(ctx)
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if _, ok := data.OpenTabs["T1"]; ok {
		t.Error("tab must be deleted after completion")
	}
	if len(data.CompletedBills) != 1 {
		t.Errorf("completed bills = %d, want 1", len(data.CompletedBills))
	}
}

func TestCompleteTabRejectsEmptyTab(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.tabs.OpenTab(ctx, "T1", ""); err != nil {
		t.Fatalf("open tab: %v", err)
	}
	if _, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModeCash, User: "sita",
	}); err == nil {
		t.Error("expected empty tab completion to be rejected")
	}
}

func TestCompleteTabCashQRSplitMustMatchTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Thali", 300)
	if _, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModeCashQR, User: "sita", CashAmount: 100, QRAmount: 100,
	}); err == nil {
		t.Fatal("expected split not summing to total to be rejected")
	}

	bill, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModeCashQR, User: "sita", CashAmount: 200, QRAmount: 100,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if bill.CashAmount != 200 || bill.QRAmount != 100 {
		t.Errorf("split = %d/%d, want 200/100", bill.CashAmount, bill.QRAmount)
	}
}

func TestCompleteTabPartialValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Thali", 300)

	cases := []struct {
		name  string
		input CompleteTabInput
	}{
		{"no creditor", CompleteTabInput{PaymentMode: enum.PaymentModePartial, User: "sita", PartialAmount: 100, PartialMethod: enum.PaymentMethodCash}},
		{"zero paid", CompleteTabInput{PaymentMode: enum.PaymentModePartial, User: "sita", CreditName: "Ram", PartialAmount: 0, PartialMethod: enum.PaymentMethodCash}},
		{"paid equals total", CompleteTabInput{PaymentMode: enum.PaymentModePartial, User: "sita", CreditName: "Ram", PartialAmount: 300, PartialMethod: enum.PaymentMethodCash}},
		{"bad method", CompleteTabInput{PaymentMode: enum.PaymentModePartial, User: "sita", CreditName: "Ram", PartialAmount: 100, PartialMethod: "card"}},
	}
	for _, tc := range cases {
		if _, err := env.tabs.CompleteTab(ctx, "T1", tc.input); err == nil {
			t.Errorf("%s: expected rejection", tc.name)
		}
	}

	bill, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModePartial, User: "sita", CreditName: "Ram",
		PartialAmount: 100, PartialMethod: enum.PaymentMethodQR,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if bill.PartialPayment == nil || bill.PartialPayment.CreditAmount != 200 {
		t.Fatalf("partialPayment = %+v, want creditAmount 200", bill.PartialPayment)
	}
	if bill.Remaining() != 200 {
		t.Errorf("remaining = %d, want 200", bill.Remaining())
	}
}

func TestCompleteTabCreditRequiresCreditor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Tea", 50)
	if _, err := env.tabs.CompleteTab(ctx, "T1", CompleteTabInput{
		PaymentMode: enum.PaymentModeCredit, User: "sita",
	}); err == nil {
		t.Error("expected credit without creditor to be rejected")
	}
}

func TestTransferTabVacancyRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.tabs.TransferTab(ctx, "T1", "T2"); err == nil {
		t.Error("expected transfer from empty table to be rejected")
	}

	env.mustAddItem(t, "T1", "Tea", 50)
	env.mustAddItem(t, "T2", "Coffee", 120)
	if _, err := env.tabs.TransferTab(ctx, "T1", "T2"); err == nil {
		t.Error("expected transfer onto occupied table to be rejected")
	}

	// an opened-but-empty target counts as vacant
	if _, err := env.tabs.OpenTab(ctx, "T3", ""); err != nil {
		t.Fatalf("open tab: %v", err)
	}
	tab, err := env.tabs.TransferTab(ctx, "T1", "T3")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if len(tab.Items) != 1 || tab.Items[0].Name != "Tea" {
		t.Errorf("transferred tab = %+v", tab.Items)
	}

	data, err := env.tabs.Data(ctx)
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if _, ok := data.OpenTabs["T1"]; ok {
		t.Error("source table must be vacated")
	}
	if got := data.OpenTabs["T3"]; got == nil || len(got.Items) != 1 {
		t.Error("target table must hold the moved tab")
	}
}

func TestCancelTabDropsItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustAddItem(t, "T1", "Tea", 50)
	if err := env.tabs.CancelTab(ctx, "T1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	data, err := env.tabs.Data(ctx)
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if _, ok := data.OpenTabs["T1"]; ok {
		t.Error("cancelled tab must be removed")
	}
	if len(data.CompletedBills) != 0 {
		t.Error("cancelled tab must not produce a bill")
	}
}

func TestUpdateBillEditsCreditFields(t *testing.T) {
	env := newTestEnv(t)

	bill := env.creditBill(t, "T1", 500, "", "Ram")
	newName := "Ram Bahadur"
	updated, err := env.tabs.UpdateBill(context.Background(), bill.ID, UpdateBillInput{CreditName: &newName})
	if err != nil {
		t.Fatalf("update bill: %v", err)
	}
	if updated.CreditName != "Ram Bahadur" {
		t.Errorf("creditName = %q, want Ram Bahadur", updated.CreditName)
	}
}

func (e *testEnv) mustAddItem(t *testing.T, table, name string, price int64) {
	t.Helper()
	if _, err := e.tabs.AddItem(context.Background(), table, entity.BillItem{Name: name, Price: price, Quantity: 1}, "sita", ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
}
