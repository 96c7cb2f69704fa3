package service

import (
	"context"
	"testing"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

func TestAddEntryValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.inventory.AddEntry(ctx, AddEntryInput{Item: "", TotalPrice: 100, PaidVia: enum.PaymentMethodCash}); err == nil {
		t.Error("expected missing item name to be rejected")
	}
	if _, err := env.inventory.AddEntry(ctx, AddEntryInput{Item: "Milk", TotalPrice: -1, PaidVia: enum.PaymentMethodCash}); err == nil {
		t.Error("expected negative price to be rejected")
	}
	if _, err := env.inventory.AddEntry(ctx, AddEntryInput{Item: "Milk", TotalPrice: 100, PaidVia: "card"}); err == nil {
		t.Error("expected unknown payment method to be rejected")
	}

	entry, err := env.inventory.AddEntry(ctx, AddEntryInput{
		Item: "Milk", Quantity: 10, Unit: "l", TotalPrice: 300, PaidVia: enum.PaymentMethodCash, AddedBy: "sita",
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if entry.ID == "" || entry.AddedAt.IsZero() {
		t.Error("entry must be stamped with id and time")
	}
}

func TestFulfillRequestLinksEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	price := int64(250)
	req, err := env.inventory.CreateRequest(ctx, CreateRequestInput{
		Item: "Coffee Beans", Quantity: 2, Unit: "kg",
		Notes: "dark roast", RecommendedPrice: &price, RecommendedMethod: "cash",
		RequestedBy: "hari",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if req.Status != enum.RequestStatusPending {
		t.Fatalf("status = %s, want pending", req.Status)
	}

	fulfilled, err := env.inventory.FulfillRequest(ctx, req.ID, FulfillRequestInput{
		FulfilledBy: "sita", TotalPrice: 260, PaidVia: enum.PaymentMethodQR,
	})
	if err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if fulfilled.Status != enum.RequestStatusFulfilled {
		t.Errorf("status = %s, want fulfilled", fulfilled.Status)
	}
	if fulfilled.TotalPrice == nil || *fulfilled.TotalPrice != 260 {
		t.Error("fulfilled price not recorded")
	}

	data, err := env.inventory.Data(ctx)
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(data.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 linked entry", len(data.Entries))
	}
	entry := data.Entries[0]
	if entry.FromRequest != req.ID {
		t.Errorf("fromRequest = %q, want %q", entry.FromRequest, req.ID)
	}
	if entry.Item != "Coffee Beans" || entry.TotalPrice != 260 || entry.PaidVia != enum.PaymentMethodQR {
		t.Errorf("linked entry = %+v", entry)
	}

	// fulfilled is terminal
	if _, err := env.inventory.FulfillRequest(ctx, req.ID, FulfillRequestInput{
		FulfilledBy: "sita", TotalPrice: 260, PaidVia: enum.PaymentMethodCash,
	}); err == nil {
		t.Error("expected second fulfill to be rejected")
	}
	if _, err := env.inventory.CancelRequest(ctx, req.ID, "sita"); err == nil {
		t.Error("expected cancel of fulfilled request to be rejected")
	}
}

func TestCancelRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.inventory.CreateRequest(ctx, CreateRequestInput{Item: "Sugar", Quantity: 5, Unit: "kg", RequestedBy: "hari"})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	cancelled, err := env.inventory.CancelRequest(ctx, req.ID, "sita")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != enum.RequestStatusCancelled || cancelled.CancelledBy != "sita" || cancelled.CancelledAt == nil {
		t.Errorf("cancelled request = %+v", cancelled)
	}

	data, err := env.inventory.Data(ctx)
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(data.Entries) != 0 {
		t.Error("cancelled request must not produce an inventory entry")
	}

	if _, err := env.inventory.FulfillRequest(ctx, req.ID, FulfillRequestInput{
		FulfilledBy: "sita", TotalPrice: 100, PaidVia: enum.PaymentMethodCash,
	}); err == nil {
		t.Error("expected fulfill of cancelled request to be rejected")
	}
}

func TestFulfillUnknownRequest(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.inventory.FulfillRequest(context.Background(), "missing", FulfillRequestInput{
		FulfilledBy: "sita", TotalPrice: 100, PaidVia: enum.PaymentMethodCash,
	}); err == nil {
		t.Error("expected unknown request id to be rejected")
	}
}
