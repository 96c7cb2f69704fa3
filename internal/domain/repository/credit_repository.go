package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// CreditorRepository owns the creditors document
type CreditorRepository interface {
	List(ctx context.Context) ([]entity.Creditor, error)
	Mutate(ctx context.Context, fn func(creditors *[]entity.Creditor) error) error
}

// CreditLogRepository owns the append-only credit log document. There is no
// mutate operation: log entries are never changed or removed.
type CreditLogRepository interface {
	List(ctx context.Context) ([]entity.CreditLogEntry, error)
	Append(ctx context.Context, entries ...entity.CreditLogEntry) error
}
