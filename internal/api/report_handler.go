package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/report"
	"github.com/sharmasaravanan/workout-tracker-app/internal/service"
)

// ReportHandler holds the report service dependency.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// --- Response Structs ---
// Dates are rendered as YYYY-MM-DD at this boundary; the report package
// itself stays presentation-free.

type ProgressionPointResponse struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type ExerciseSeriesResponse struct {
	Exercise string                     `json:"exercise"`
	Points   []ProgressionPointResponse `json:"points"`
}

type VolumePointResponse struct {
	Date     string  `json:"date"`
	Exercise string  `json:"exercise"`
	Volume   float64 `json:"volume"`
}

type ExerciseRPEResponse struct {
	Exercise string    `json:"exercise"`
	Values   []float64 `json:"values"`
}

type PeriodGroupResponse struct {
	Period      string  `json:"period"`
	Exercise    string  `json:"exercise"`
	MaxWeight   float64 `json:"maxWeight"`
	TotalVolume float64 `json:"totalVolume"`
}

type DashboardResponse struct {
	Empty             bool                     `json:"empty"`
	Interval          string                   `json:"interval"`
	Summary           report.Summary           `json:"summary"`
	WeightProgression []ExerciseSeriesResponse `json:"weightProgression"`
	VolumeSeries      []VolumePointResponse    `json:"volumeSeries"`
	RPEDistribution   []ExerciseRPEResponse    `json:"rpeDistribution"`
	PeriodAggregate   []PeriodGroupResponse    `json:"periodAggregate"`
}

// --- Handler Methods ---

// Dashboard computes the aggregated views for the authenticated account.
//
// Query parameters: start, end (YYYY-MM-DD, both optional), exercise
// (repeatable, restricts the weight-progression view; absent selects all)
// and interval (daily|weekly|monthly|yearly, default daily).
func (h *ReportHandler) Dashboard(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	var filter service.DashboardFilter

	if startStr := c.Query("start"); startStr != "" {
		filter.Start, err = time.ParseInLocation(domain.DateLayout, startStr, time.UTC)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid start date %q, expected YYYY-MM-DD", startStr))
			return
		}
	}
	if endStr := c.Query("end"); endStr != "" {
		filter.End, err = time.ParseInLocation(domain.DateLayout, endStr, time.UTC)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid end date %q, expected YYYY-MM-DD", endStr))
			return
		}
	}

	// No exercise parameter at all means "all exercises"; the parameter
	// present with an empty value is the explicit empty selection.
	if values, ok := c.GetQueryArray("exercise"); ok {
		filter.Exercises = []string{}
		for _, v := range values {
			if v != "" {
				filter.Exercises = append(filter.Exercises, v)
			}
		}
	}

	filter.Interval = report.IntervalDaily
	if intervalStr := c.Query("interval"); intervalStr != "" {
		filter.Interval, err = report.ParseInterval(intervalStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	r, err := h.reportService.Dashboard(c.Request.Context(), accountID, filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, MapReportToResponse(r))
}

// MapReportToResponse converts a report.Report into its API representation.
func MapReportToResponse(r *report.Report) DashboardResponse {
	resp := DashboardResponse{
		Empty:             r.Empty,
		Interval:          string(r.Interval),
		Summary:           r.Summary,
		WeightProgression: []ExerciseSeriesResponse{},
		VolumeSeries:      []VolumePointResponse{},
		RPEDistribution:   []ExerciseRPEResponse{},
		PeriodAggregate:   []PeriodGroupResponse{},
	}

	for _, s := range r.WeightProgression {
		points := make([]ProgressionPointResponse, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, ProgressionPointResponse{
				Date:   p.Date.Format(domain.DateLayout),
				Weight: p.Weight,
			})
		}
		resp.WeightProgression = append(resp.WeightProgression, ExerciseSeriesResponse{
			Exercise: s.Exercise,
			Points:   points,
		})
	}

	for _, p := range r.VolumeSeries {
		resp.VolumeSeries = append(resp.VolumeSeries, VolumePointResponse{
			Date:     p.Date.Format(domain.DateLayout),
			Exercise: p.Exercise,
			Volume:   p.Volume,
		})
	}

	for _, d := range r.RPEDistribution {
		resp.RPEDistribution = append(resp.RPEDistribution, ExerciseRPEResponse(d))
	}

	for _, g := range r.PeriodAggregate {
		resp.PeriodAggregate = append(resp.PeriodAggregate, PeriodGroupResponse{
			Period:      g.Period.Format(domain.DateLayout),
			Exercise:    g.Exercise,
			MaxWeight:   g.MaxWeight,
			TotalVolume: g.TotalVolume,
		})
	}

	return resp
}
