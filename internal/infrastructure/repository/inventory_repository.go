package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const inventoryDocument = "inventory"

type inventoryRepository struct {
	store *jsonstore.Store
}

// NewInventoryRepository creates an inventory repository backed by the inventory document
func NewInventoryRepository(store *jsonstore.Store) repository.InventoryRepository {
	return &inventoryRepository{store: store}
}

func normalizeInventoryData(d *entity.InventoryData) {
	if d.Entries == nil {
		d.Entries = []entity.InventoryEntry{}
	}
	if d.Requests == nil {
		d.Requests = []entity.InventoryRequest{}
	}
}

func (r *inventoryRepository) Get(ctx context.Context) (*entity.InventoryData, error) {
	data := &entity.InventoryData{}
	if err := r.store.Read(inventoryDocument, data); err != nil {
		return nil, err
	}
	normalizeInventoryData(data)
	return data, nil
}

func (r *inventoryRepository) Mutate(ctx context.Context, fn func(data *entity.InventoryData) error) error {
	data := &entity.InventoryData{}
	return r.store.Update(inventoryDocument, data, func() error {
		normalizeInventoryData(data)
		return fn(data)
	})
}
