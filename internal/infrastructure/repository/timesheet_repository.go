package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const (
	timesheetsDocument = "timesheets"
	wagesDocument      = "wages"
)

type timesheetsDoc struct {
	Entries []entity.TimesheetEntry `json:"entries"`
}

type timesheetRepository struct {
	store *jsonstore.Store
}

// NewTimesheetRepository creates a timesheet repository backed by the timesheets document
func NewTimesheetRepository(store *jsonstore.Store) repository.TimesheetRepository {
	return &timesheetRepository{store: store}
}

func (r *timesheetRepository) List(ctx context.Context) ([]entity.TimesheetEntry, error) {
	doc := &timesheetsDoc{}
	if err := r.store.Read(timesheetsDocument, doc); err != nil {
		return nil, err
	}
	if doc.Entries == nil {
		doc.Entries = []entity.TimesheetEntry{}
	}
	return doc.Entries, nil
}

func (r *timesheetRepository) Mutate(ctx context.Context, fn func(entries *[]entity.TimesheetEntry) error) error {
	doc := &timesheetsDoc{}
	return r.store.Update(timesheetsDocument, doc, func() error {
		if doc.Entries == nil {
			doc.Entries = []entity.TimesheetEntry{}
		}
		return fn(&doc.Entries)
	})
}

type wagesDoc struct {
	Payments []entity.WagePayment `json:"payments"`
}

type wageRepository struct {
	store *jsonstore.Store
}

// NewWageRepository creates the append-only wage payments repository
func NewWageRepository(store *jsonstore.Store) repository.WageRepository {
	return &wageRepository{store: store}
}

func (r *wageRepository) List(ctx context.Context) ([]entity.WagePayment, error) {
	doc := &wagesDoc{}
	if err := r.store.Read(wagesDocument, doc); err != nil {
		return nil, err
	}
	if doc.Payments == nil {
		doc.Payments = []entity.WagePayment{}
	}
	return doc.Payments, nil
}

func (r *wageRepository) Append(ctx context.Context, payment entity.WagePayment) error {
	doc := &wagesDoc{}
	return r.store.Update(wagesDocument, doc, func() error {
		doc.Payments = append(doc.Payments, payment)
		return nil
	})
}
