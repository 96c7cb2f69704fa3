package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const billsDocument = "bills"

type billRepository struct {
	store *jsonstore.Store
}

// NewBillRepository creates a bill repository backed by the bills document
func NewBillRepository(store *jsonstore.Store) repository.BillRepository {
	return &billRepository{store: store}
}

func normalizeBillData(d *entity.BillData) {
	if d.CompletedBills == nil {
		d.CompletedBills = []entity.Bill{}
	}
	if d.OpenTabs == nil {
		d.OpenTabs = map[string]*entity.Tab{}
	}
}

func (r *billRepository) Get(ctx context.Context) (*entity.BillData, error) {
	data := &entity.BillData{}
	if err := r.store.Read(billsDocument, data); err != nil {
		return nil, err
	}
	normalizeBillData(data)
	return data, nil
}

func (r *billRepository) Replace(ctx context.Context, data *entity.BillData) error {
	normalizeBillData(data)
	return r.store.Write(billsDocument, data)
}

func (r *billRepository) Mutate(ctx context.Context, fn func(data *entity.BillData) error) error {
	data := &entity.BillData{}
	return r.store.Update(billsDocument, data, func() error {
		normalizeBillData(data)
		return fn(data)
	})
}
