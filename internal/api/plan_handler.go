package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
)

// PlanHandler serves the static workout plan catalog.
type PlanHandler struct{}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

type PlanDayResponse struct {
	Day       string   `json:"day"`
	Exercises []string `json:"exercises"`
}

// GetPlan returns the day programs and their allowed exercises, in plan
// order. Clients use it to populate the entry form; the server re-validates
// the selection on submit regardless.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	days := make([]PlanDayResponse, 0, len(domain.WorkoutDays))
	for _, day := range domain.WorkoutDays {
		exercises, _ := domain.ExercisesForDay(day)
		days = append(days, PlanDayResponse{Day: string(day), Exercises: exercises})
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
