package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository"
)

// ErrValidationFailed marks a workout entry rejected at the input boundary.
var ErrValidationFailed = errors.New("workout entry validation failed")

// LogService handles recording and reading workout entries.
type LogService interface {
	AddEntry(ctx context.Context, accountID string, input EntryInput) (*domain.WorkoutEntry, error)
	// ListEntries returns the account's full log, newest first.
	ListEntries(ctx context.Context, accountID string) ([]domain.WorkoutEntry, error)
}

// EntryInput carries the fields of a new workout entry as supplied by the
// caller, before validation.
type EntryInput struct {
	Date     time.Time
	Day      domain.WorkoutDay
	Exercise string
	Sets     int
	Reps     int
	Weight   float64
	RPE      float64
	Comments string
}

// logService implements the LogService interface.
type logService struct {
	entryRepo repository.EntryRepository
}

// NewLogService creates a new instance of logService.
func NewLogService(entryRepo repository.EntryRepository) LogService {
	return &logService{entryRepo: entryRepo}
}

// AddEntry validates the input against the plan catalog and range rules,
// then appends the entry. Entries are immutable once written.
func (s *logService) AddEntry(ctx context.Context, accountID string, input EntryInput) (*domain.WorkoutEntry, error) {
	if accountID == "" {
		return nil, errors.New("account id is required to add an entry")
	}
	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	entry := &domain.WorkoutEntry{
		AccountID: accountID,
		Date:      domain.DateOnly(input.Date),
		DayLabel:  string(input.Day),
		Exercise:  input.Exercise,
		Sets:      input.Sets,
		Reps:      input.Reps,
		Weight:    input.Weight,
		RPE:       input.RPE,
		Comments:  input.Comments,
	}

	entryID, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	return entry, nil
}

// ListEntries returns all entries for the account ordered by date descending,
// most recently recorded first within a date.
func (s *logService) ListEntries(ctx context.Context, accountID string) ([]domain.WorkoutEntry, error) {
	if accountID == "" {
		return nil, errors.New("account id cannot be empty")
	}
	entries, err := s.entryRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func validateEntryInput(input EntryInput) error {
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidationFailed)
	}
	if !domain.ValidPlanSelection(input.Day, input.Exercise) {
		return fmt.Errorf("%w: exercise %q is not part of %q", ErrValidationFailed, input.Exercise, input.Day)
	}
	if input.Sets < 1 {
		return fmt.Errorf("%w: sets must be at least 1", ErrValidationFailed)
	}
	if input.Reps < 1 {
		return fmt.Errorf("%w: reps must be at least 1", ErrValidationFailed)
	}
	if input.Weight < 0 {
		return fmt.Errorf("%w: weight cannot be negative", ErrValidationFailed)
	}
	if input.RPE < domain.MinRPE || input.RPE > domain.MaxRPE {
		return fmt.Errorf("%w: rpe must be between %.0f and %.0f", ErrValidationFailed, domain.MinRPE, domain.MaxRPE)
	}
	return nil
}
