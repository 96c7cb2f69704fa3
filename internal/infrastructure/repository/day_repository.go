package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const daysDocument = "days"

type dayRepository struct {
	store *jsonstore.Store
}

// NewDayRepository creates a day repository backed by the days document
func NewDayRepository(store *jsonstore.Store) repository.DayRepository {
	return &dayRepository{store: store}
}

func normalizeDayState(s *entity.DayState) {
	if s.History == nil {
		s.History = []entity.Day{}
	}
}

func (r *dayRepository) Get(ctx context.Context) (*entity.DayState, error) {
	state := &entity.DayState{}
	if err := r.store.Read(daysDocument, state); err != nil {
		return nil, err
	}
	normalizeDayState(state)
	return state, nil
}

func (r *dayRepository) Mutate(ctx context.Context, fn func(state *entity.DayState) error) error {
	state := &entity.DayState{}
	return r.store.Update(daysDocument, state, func() error {
		normalizeDayState(state)
		return fn(state)
	})
}
