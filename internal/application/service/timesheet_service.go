package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/pkg/apperror"
)

// TimesheetService manages staff clock-in/clock-out cycles
type TimesheetService struct {
	timesheetRepo repository.TimesheetRepository
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(timesheetRepo repository.TimesheetRepository) *TimesheetService {
	return &TimesheetService{timesheetRepo: timesheetRepo}
}

// List returns all timesheet entries
func (s *TimesheetService) List(ctx context.Context) ([]entity.TimesheetEntry, error) {
	return s.timesheetRepo.List(ctx)
}

// Active returns the currently open shifts
func (s *TimesheetService) Active(ctx context.Context) ([]entity.TimesheetEntry, error) {
	entries, err := s.timesheetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entity.TimesheetEntry, 0)
	for _, e := range entries {
		if e.Active() {
			active = append(active, e)
		}
	}
	return active, nil
}

// ClockIn opens a shift for the user. A user can have at most one open shift.
func (s *TimesheetService) ClockIn(ctx context.Context, userID, userName string) (*entity.TimesheetEntry, error) {
	entry := entity.TimesheetEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		UserName: userName,
		ClockIn:  time.Now().UTC(),
	}

	err := s.timesheetRepo.Mutate(ctx, func(entries *[]entity.TimesheetEntry) error {
		for _, e := range *entries {
			if e.UserID == userID && e.Active() {
				return apperror.NewPreconditionError("You are already clocked in")
			}
		}
		*entries = append(*entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ClockOut closes the user's open shift and fixes the hours worked,
// rounded to two decimal places
func (s *TimesheetService) ClockOut(ctx context.Context, userID string) (*entity.TimesheetEntry, error) {
	var closed entity.TimesheetEntry
	err := s.timesheetRepo.Mutate(ctx, func(entries *[]entity.TimesheetEntry) error {
		for i := range *entries {
			e := &(*entries)[i]
			if e.UserID != userID || !e.Active() {
				continue
			}
			now := time.Now().UTC()
			hours := now.Sub(e.ClockIn).Hours()
			hours = math.Round(hours*100) / 100
			e.ClockOut = &now
			e.HoursWorked = &hours
			closed = *e
			return nil
		}
		return apperror.NewPreconditionError("You are not clocked in")
	})
	if err != nil {
		return nil, err
	}
	return &closed, nil
}
