package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// InventoryRepository owns the inventory document (entries + requests)
type InventoryRepository interface {
	Get(ctx context.Context) (*entity.InventoryData, error)
	Mutate(ctx context.Context, fn func(data *entity.InventoryData) error) error
}
