package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/report"
)

func TestDashboard(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := NewReportService(repo)
	ctx := context.Background()

	for i, weight := range []float64{50, 55, 60} {
		_, err := repo.Create(ctx, &domain.WorkoutEntry{
			AccountID: "acct-1",
			Date:      time.Date(2024, time.January, 5+i, 0, 0, 0, 0, time.UTC),
			DayLabel:  string(domain.DayLowerCore),
			Exercise:  "Barbell Squats",
			Sets:      3,
			Reps:      10,
			Weight:    weight,
			RPE:       7,
		})
		require.NoError(t, err)
	}

	r, err := svc.Dashboard(ctx, "acct-1", DashboardFilter{Interval: report.IntervalWeekly})
	require.NoError(t, err)
	assert.False(t, r.Empty)
	assert.Equal(t, 3, r.Summary.Workouts)
	assert.Equal(t, report.IntervalWeekly, r.Interval)
}

func TestDashboardEmptyLogIsEmptyState(t *testing.T) {
	svc := NewReportService(&fakeEntryRepo{})

	r, err := svc.Dashboard(context.Background(), "acct-1", DashboardFilter{})
	require.NoError(t, err)
	assert.True(t, r.Empty)
}

func TestDashboardRequiresAccountID(t *testing.T) {
	svc := NewReportService(&fakeEntryRepo{})

	_, err := svc.Dashboard(context.Background(), "", DashboardFilter{})
	assert.Error(t, err)
}
