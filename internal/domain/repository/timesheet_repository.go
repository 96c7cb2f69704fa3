package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// TimesheetRepository owns the timesheets document
type TimesheetRepository interface {
	List(ctx context.Context) ([]entity.TimesheetEntry, error)
	Mutate(ctx context.Context, fn func(entries *[]entity.TimesheetEntry) error) error
}

// WageRepository owns the wage payments document. Payments are append-only.
type WageRepository interface {
	List(ctx context.Context) ([]entity.WagePayment, error)
	Append(ctx context.Context, payment entity.WagePayment) error
}
