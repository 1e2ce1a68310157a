package service

import (
	"context"
	"errors"
	"time"

	"github.com/sharmasaravanan/workout-tracker-app/internal/report"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository"
)

// ReportService computes dashboard reports over an account's workout log.
type ReportService interface {
	Dashboard(ctx context.Context, accountID string, f DashboardFilter) (*report.Report, error)
}

// DashboardFilter carries the user-controlled report parameters. Zero dates
// leave the range open on that side; a nil exercise selection means all
// exercises.
type DashboardFilter struct {
	Start     time.Time
	End       time.Time
	Exercises []string
	Interval  report.Interval
}

// reportService implements the ReportService interface.
type reportService struct {
	entryRepo repository.EntryRepository
}

// NewReportService creates a new instance of reportService.
func NewReportService(entryRepo repository.EntryRepository) ReportService {
	return &reportService{entryRepo: entryRepo}
}

// Dashboard snapshots the account's log and runs the aggregation engine over
// it. The report is recomputed on every request; an empty result is a normal
// state of the returned report, not an error.
func (s *reportService) Dashboard(ctx context.Context, accountID string, f DashboardFilter) (*report.Report, error) {
	if accountID == "" {
		return nil, errors.New("account id cannot be empty")
	}

	entries, err := s.entryRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	r := report.Build(entries, report.Filter{
		Start:     f.Start,
		End:       f.End,
		Exercises: f.Exercises,
		Interval:  f.Interval,
	})
	return &r, nil
}
