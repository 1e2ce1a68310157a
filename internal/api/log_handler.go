package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/service"
)

// LogHandler holds the workout log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// --- Request/Response Structs ---

type CreateEntryRequest struct {
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Day      string  `json:"day" binding:"required"`
	Exercise string  `json:"exercise" binding:"required"`
	Sets     int     `json:"sets" binding:"required,min=1"`
	Reps     int     `json:"reps" binding:"required,min=1"`
	Weight   float64 `json:"weight" binding:"min=0"`
	RPE      float64 `json:"rpe" binding:"required,min=1,max=10"`
	Comments string  `json:"comments"`
}

type EntryResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Day      string  `json:"day"`
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	RPE      float64 `json:"rpe"`
	Comments string  `json:"comments,omitempty"`
}

// --- Handler Methods ---

// CreateEntry records a new workout entry for the authenticated account.
func (h *LogHandler) CreateEntry(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	date, err := time.ParseInLocation(domain.DateLayout, req.Date, time.UTC)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.Date))
		return
	}

	entry, err := h.logService.AddEntry(c.Request.Context(), accountID, service.EntryInput{
		Date:     date,
		Day:      domain.WorkoutDay(req.Day),
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
		RPE:      req.RPE,
		Comments: req.Comments,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to record workout entry")
		}
		return
	}

	c.JSON(http.StatusCreated, MapEntryToResponse(entry))
}

// ListEntries returns the account's raw log, newest first.
func (h *LogHandler) ListEntries(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	entries, err := h.logService.ListEntries(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout entries")
		return
	}

	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, MapEntryToResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// ExportEntries streams the account's log as CSV.
func (h *LogHandler) ExportEntries(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	entries, err := h.logService.ListEntries(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout entries")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="workout-log.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"date", "day", "exercise", "sets", "reps", "weight", "rpe", "comments"})
	for _, e := range entries {
		_ = w.Write([]string{
			e.Date.Format(domain.DateLayout),
			e.DayLabel,
			e.Exercise,
			strconv.Itoa(e.Sets),
			strconv.Itoa(e.Reps),
			strconv.FormatFloat(e.Weight, 'f', -1, 64),
			strconv.FormatFloat(e.RPE, 'f', -1, 64),
			e.Comments,
		})
	}
	w.Flush()
}

// MapEntryToResponse converts a domain WorkoutEntry to an EntryResponse DTO.
func MapEntryToResponse(entry *domain.WorkoutEntry) EntryResponse {
	if entry == nil {
		return EntryResponse{}
	}
	return EntryResponse{
		ID:       entry.ID,
		Date:     entry.Date.Format(domain.DateLayout),
		Day:      entry.DayLabel,
		Exercise: entry.Exercise,
		Sets:     entry.Sets,
		Reps:     entry.Reps,
		Weight:   entry.Weight,
		RPE:      entry.RPE,
		Comments: entry.Comments,
	}
}
