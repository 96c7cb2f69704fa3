package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// DayRepository owns the day-state document (current day + history)
type DayRepository interface {
	Get(ctx context.Context) (*entity.DayState, error)
	Mutate(ctx context.Context, fn func(state *entity.DayState) error) error
}
