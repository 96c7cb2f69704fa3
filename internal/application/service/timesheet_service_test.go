package service

import (
	"context"
	"testing"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

func TestClockInRejectsSecondOpenShift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err == nil {
		t.Error("expected second clock-in to be rejected")
	}
	// a different user may still clock in
	if _, err := env.sheets.ClockIn(ctx, "u2", "gita"); err != nil {
		t.Errorf("clock in other user: %v", err)
	}

	active, err := env.sheets.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("active shifts = %d, want 2", len(active))
	}
}

func TestClockOutFixesHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.sheets.ClockOut(ctx, "u1"); err == nil {
		t.Error("expected clock-out without open shift to be rejected")
	}

	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	entry, err := env.sheets.ClockOut(ctx, "u1")
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if entry.ClockOut == nil || entry.HoursWorked == nil {
		t.Fatal("clock out must fix the end time and hours")
	}
	if *entry.HoursWorked < 0 || *entry.HoursWorked > 0.01 {
		t.Errorf("hoursWorked = %v, want a small non-negative value", *entry.HoursWorked)
	}
	if entry.Active() {
		t.Error("closed entry must not be active")
	}

	// the cycle can start again once closed
	if _, err := env.sheets.ClockIn(ctx, "u1", "hari"); err != nil {
		t.Errorf("re-clock-in after close: %v", err)
	}
}

func TestPayWageRequiresKnownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.wages.Pay(ctx, PayInput{UserID: "ghost", Amount: 500, PaidBy: "admin"}); err == nil {
		t.Error("expected payment to unknown user to be rejected")
	}
	if _, err := env.wages.Pay(ctx, PayInput{UserID: "u1", Amount: 0, PaidBy: "admin"}); err == nil {
		t.Error("expected zero amount to be rejected")
	}

	user, err := env.users.Create(ctx, CreateUserInput{Name: "Hari", Role: enum.RoleStaff, PIN: "4321"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	payment, err := env.wages.Pay(ctx, PayInput{UserID: user.ID, Amount: 500, PaidBy: "admin"})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if payment.UserName != "Hari" || payment.Amount != 500 {
		t.Errorf("payment = %+v", payment)
	}

	payments, err := env.wages.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("payments = %d, want 1", len(payments))
	}
}
