package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const (
	creditorsDocument  = "creditors"
	creditLogsDocument = "credit_logs"
)

type creditorsDoc struct {
	Creditors []entity.Creditor `json:"creditors"`
}

type creditorRepository struct {
	store *jsonstore.Store
}

// NewCreditorRepository creates a creditor repository backed by the creditors document
func NewCreditorRepository(store *jsonstore.Store) repository.CreditorRepository {
	return &creditorRepository{store: store}
}

func (r *creditorRepository) List(ctx context.Context) ([]entity.Creditor, error) {
	doc := &creditorsDoc{}
	if err := r.store.Read(creditorsDocument, doc); err != nil {
		return nil, err
	}
	if doc.Creditors == nil {
		doc.Creditors = []entity.Creditor{}
	}
	return doc.Creditors, nil
}

func (r *creditorRepository) Mutate(ctx context.Context, fn func(creditors *[]entity.Creditor) error) error {
	doc := &creditorsDoc{}
	return r.store.Update(creditorsDocument, doc, func() error {
		if doc.Creditors == nil {
			doc.Creditors = []entity.Creditor{}
		}
		return fn(&doc.Creditors)
	})
}

type creditLogsDoc struct {
	Logs []entity.CreditLogEntry `json:"logs"`
}

type creditLogRepository struct {
	store *jsonstore.Store
}

// NewCreditLogRepository creates the append-only credit log repository
func NewCreditLogRepository(store *jsonstore.Store) repository.CreditLogRepository {
	return &creditLogRepository{store: store}
}

func (r *creditLogRepository) List(ctx context.Context) ([]entity.CreditLogEntry, error) {
	doc := &creditLogsDoc{}
	if err := r.store.Read(creditLogsDocument, doc); err != nil {
		return nil, err
	}
	if doc.Logs == nil {
		doc.Logs = []entity.CreditLogEntry{}
	}
	return doc.Logs, nil
}

func (r *creditLogRepository) Append(ctx context.Context, entries ...entity.CreditLogEntry) error {
	doc := &creditLogsDoc{}
	return r.store.Update(creditLogsDocument, doc, func() error {
		doc.Logs = append(doc.Logs, entries...)
		return nil
	})
}
