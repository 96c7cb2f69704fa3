package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// BillRepository owns the bills document (completed bills + open tabs).
// Mutate runs fn under the document lock as a single read-modify-write
// cycle, so concurrent mutations never lose updates.
type BillRepository interface {
	Get(ctx context.Context) (*entity.BillData, error)
	Replace(ctx context.Context, data *entity.BillData) error
	Mutate(ctx context.Context, fn func(data *entity.BillData) error) error
}
