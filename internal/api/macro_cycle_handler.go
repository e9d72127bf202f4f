package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/training-periodization/internal/domain"
	"alcyxob/training-periodization/internal/periodization"
	"alcyxob/training-periodization/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MacroCycleHandler serves macrocycle generation and retrieval.
type MacroCycleHandler struct {
	macroCycleService service.MacroCycleService
	logger            *zap.Logger
}

// NewMacroCycleHandler creates a new MacroCycleHandler.
func NewMacroCycleHandler(macroCycleService service.MacroCycleService, logger *zap.Logger) *MacroCycleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MacroCycleHandler{macroCycleService: macroCycleService, logger: logger}
}

// --- DTOs for API ---

// CreateMacroCycleRequest defines the expected JSON for generating a macrocycle.
// Enum values are checked by the planner, not by binding.
type CreateMacroCycleRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	PrimaryGoal        string   `json:"primaryGoal" binding:"required"`
	TrainingLevel      string   `json:"trainingLevel" binding:"required"`
	TrainingFrequency  int      `json:"trainingFrequency" binding:"required"`
	DurationMonths     int      `json:"durationMonths" binding:"required"`
	StartDate          string   `json:"startDate" binding:"required"` // YYYY-MM-DD
	SecondaryGoals     []string `json:"secondaryGoals"`
	PeriodizationType  string   `json:"periodizationType"`
	TargetMuscleGroups []string `json:"targetMuscleGroups"`
	IncludeNutrition   *bool    `json:"includeNutrition"`
}

func (r CreateMacroCycleRequest) toInput(userID string) (service.CreateMacroCycleInput, error) {
	start, err := time.Parse(periodization.DateLayout, r.StartDate)
	if err != nil {
		return service.CreateMacroCycleInput{}, errors.New("startDate must use the YYYY-MM-DD format")
	}
	in := service.CreateMacroCycleInput{
		UserID:            userID,
		Name:              r.Name,
		Description:       r.Description,
		PrimaryGoal:       domain.Goal(r.PrimaryGoal),
		TrainingLevel:     domain.TrainingLevel(r.TrainingLevel),
		Frequency:         r.TrainingFrequency,
		DurationMonths:    r.DurationMonths,
		StartDate:         start,
		PeriodizationType: domain.PeriodizationType(r.PeriodizationType),
		IncludeNutrition:  r.IncludeNutrition,
	}
	for _, g := range r.SecondaryGoals {
		in.SecondaryGoals = append(in.SecondaryGoals, domain.Goal(g))
	}
	for _, mg := range r.TargetMuscleGroups {
		in.TargetMuscleGroups = append(in.TargetMuscleGroups, domain.MuscleGroup(mg))
	}
	return in, nil
}

// MacroCycleResponse is the full plan. Top-level dates are calendar dates.
type MacroCycleResponse struct {
	ID                     string                  `json:"id"`
	UserID                 string                  `json:"userId"`
	Name                   string                  `json:"name"`
	Description            string                  `json:"description,omitempty"`
	DurationMonths         int                     `json:"durationMonths"`
	TotalWeeks             int                     `json:"totalWeeks"`
	PeriodizationType      string                  `json:"periodizationType"`
	PrimaryGoal            string                  `json:"primaryGoal"`
	SecondaryGoals         []domain.Goal           `json:"secondaryGoals,omitempty"`
	TrainingLevel          string                  `json:"trainingLevel"`
	TrainingFrequency      int                     `json:"trainingFrequency"`
	TargetMuscleGroups     []domain.MuscleGroup    `json:"targetMuscleGroups,omitempty"`
	StartDate              string                  `json:"startDate"`
	EndDate                string                  `json:"endDate"`
	IsActive               bool                    `json:"isActive"`
	DeloadSchedule         domain.DeloadSchedule   `json:"deloadSchedule"`
	MesoCycles             []domain.MesoCycle      `json:"mesoCycles"`
	NutritionPeriodization []domain.NutritionPhase `json:"nutritionPeriodization"`
	CreatedAt              time.Time               `json:"createdAt"`
}

// MacroCycleSummaryResponse is the list view of a plan.
type MacroCycleSummaryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PrimaryGoal    string `json:"primaryGoal"`
	TrainingLevel  string `json:"trainingLevel"`
	TotalWeeks     int    `json:"totalWeeks"`
	MesoCycleCount int    `json:"mesoCycleCount"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	IsActive       bool   `json:"isActive"`
}

// CurrentWeekResponse locates a date inside a plan.
type CurrentWeekResponse struct {
	Date       string            `json:"date"`
	MesoCycle  MesoCycleSummary  `json:"mesoCycle"`
	MicroCycle domain.MicroCycle `json:"microCycle"`
}

type MesoCycleSummary struct {
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	Phase domain.TrainingPhase `json:"phase"`
}

// ExportResponse carries the presigned download link of an export.
type ExportResponse struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// MapMacroCycleToResponse converts a domain.MacroCycle to MacroCycleResponse DTO.
func MapMacroCycleToResponse(m *domain.MacroCycle) MacroCycleResponse {
	if m == nil {
		return MacroCycleResponse{}
	}
	nutrition := m.NutritionPeriodization
	if nutrition == nil {
		nutrition = []domain.NutritionPhase{}
	}
	return MacroCycleResponse{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Name:                   m.Name,
		Description:            m.Description,
		DurationMonths:         m.DurationMonths,
		TotalWeeks:             m.TotalWeeks,
		PeriodizationType:      string(m.PeriodizationType),
		PrimaryGoal:            string(m.PrimaryGoal),
		SecondaryGoals:         m.SecondaryGoals,
		TrainingLevel:          string(m.TrainingLevel),
		TrainingFrequency:      m.TrainingFrequency,
		TargetMuscleGroups:     m.TargetMuscleGroups,
		StartDate:              m.StartDate.Format(periodization.DateLayout),
		EndDate:                m.EndDate.Format(periodization.DateLayout),
		IsActive:               m.IsActive,
		DeloadSchedule:         m.DeloadSchedule,
		MesoCycles:             m.MesoCycles,
		NutritionPeriodization: nutrition,
		CreatedAt:              m.CreatedAt,
	}
}

// MapMacroCyclesToSummaries converts plans to their list view.
func MapMacroCyclesToSummaries(plans []domain.MacroCycle) []MacroCycleSummaryResponse {
	responses := make([]MacroCycleSummaryResponse, len(plans))
	for i, m := range plans {
		responses[i] = MacroCycleSummaryResponse{
			ID:             m.ID,
			Name:           m.Name,
			PrimaryGoal:    string(m.PrimaryGoal),
			TrainingLevel:  string(m.TrainingLevel),
			TotalWeeks:     m.TotalWeeks,
			MesoCycleCount: len(m.MesoCycles),
			StartDate:      m.StartDate.Format(periodization.DateLayout),
			EndDate:        m.EndDate.Format(periodization.DateLayout),
			IsActive:       m.IsActive,
		}
	}
	return responses
}

// handleServiceError maps service errors to HTTP responses.
func (h *MacroCycleHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, periodization.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMacroCycleNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMacroCycleAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrExportUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrExportFailed):
		h.logger.Error("macrocycle export failed", zap.Error(err))
		abortWithError(c, http.StatusBadGateway, "Failed to export macrocycle")
	case errors.Is(err, service.ErrMacroCyclePersistence):
		abortWithError(c, http.StatusInternalServerError, "Failed to save macrocycle")
	default:
		h.logger.Error("unexpected macrocycle service error", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *MacroCycleHandler) bindCreateRequest(c *gin.Context) (service.CreateMacroCycleInput, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return service.CreateMacroCycleInput{}, false
	}

	var req CreateMacroCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return service.CreateMacroCycleInput{}, false
	}

	in, err := req.toInput(userID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return service.CreateMacroCycleInput{}, false
	}
	return in, true
}

// --- Handler Methods ---

// CreateMacroCycle godoc
// @Summary Generate a macrocycle
// @Description Builds a periodized training plan for the authenticated user and stores it.
// @Tags MacroCycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreateMacroCycleRequest true "Generation parameters"
// @Success 201 {object} MacroCycleResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Persistence failure"
// @Router /macrocycles [post]
func (h *MacroCycleHandler) CreateMacroCycle(c *gin.Context) {
	in, ok := h.bindCreateRequest(c)
	if !ok {
		return
	}

	macro, err := h.macroCycleService.CreateMacroCycle(c.Request.Context(), in)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapMacroCycleToResponse(macro))
}

// PreviewMacroCycle godoc
// @Summary Preview a macrocycle
// @Description Same as create but nothing is stored.
// @Tags MacroCycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreateMacroCycleRequest true "Generation parameters"
// @Success 200 {object} MacroCycleResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /macrocycles/preview [post]
func (h *MacroCycleHandler) PreviewMacroCycle(c *gin.Context) {
	in, ok := h.bindCreateRequest(c)
	if !ok {
		return
	}

	macro, err := h.macroCycleService.PreviewMacroCycle(c.Request.Context(), in)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMacroCycleToResponse(macro))
}

// ListMacroCycles godoc
// @Summary List macrocycles
// @Tags MacroCycles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MacroCycleSummaryResponse
// @Router /macrocycles [get]
func (h *MacroCycleHandler) ListMacroCycles(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	plans, err := h.macroCycleService.ListMacroCycles(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMacroCyclesToSummaries(plans))
}

// GetMacroCycle godoc
// @Summary Get a macrocycle
// @Tags MacroCycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "MacroCycle ID"
// @Success 200 {object} MacroCycleResponse
// @Failure 403 {object} gin.H "Plan belongs to another user"
// @Failure 404 {object} gin.H "Not found"
// @Router /macrocycles/{id} [get]
func (h *MacroCycleHandler) GetMacroCycle(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	macro, err := h.macroCycleService.GetMacroCycle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMacroCycleToResponse(macro))
}

// GetCurrentWeek godoc
// @Summary Locate the training week for a date
// @Tags MacroCycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "MacroCycle ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} CurrentWeekResponse
// @Failure 404 {object} gin.H "Date outside the plan"
// @Router /macrocycles/{id}/current [get]
func (h *MacroCycleHandler) GetCurrentWeek(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	at := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		at, err = time.Parse(periodization.DateLayout, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "date must use the YYYY-MM-DD format")
			return
		}
	}

	macro, err := h.macroCycleService.GetMacroCycle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	meso, micro, ok := macro.CurrentWeek(at)
	if !ok {
		abortWithError(c, http.StatusNotFound, "Date is outside the macrocycle")
		return
	}
	c.JSON(http.StatusOK, CurrentWeekResponse{
		Date:       at.Format(periodization.DateLayout),
		MesoCycle:  MesoCycleSummary{ID: meso.ID, Name: meso.Name, Phase: meso.Phase},
		MicroCycle: *micro,
	})
}

// ActivateMacroCycle godoc
// @Summary Activate a macrocycle
// @Description Marks the plan active and deactivates the user's other plans.
// @Tags MacroCycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "MacroCycle ID"
// @Success 200 {object} MacroCycleSummaryResponse
// @Router /macrocycles/{id}/activate [post]
func (h *MacroCycleHandler) ActivateMacroCycle(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	macro, err := h.macroCycleService.ActivateMacroCycle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMacroCyclesToSummaries([]domain.MacroCycle{*macro})[0])
}

// ExportMacroCycle godoc
// @Summary Export a macrocycle
// @Description Uploads the plan as JSON to object storage and returns a presigned download link.
// @Tags MacroCycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "MacroCycle ID"
// @Success 200 {object} ExportResponse
// @Failure 503 {object} gin.H "Export not configured"
// @Router /macrocycles/{id}/export [post]
func (h *MacroCycleHandler) ExportMacroCycle(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	res, err := h.macroCycleService.ExportMacroCycle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExportResponse{
		ObjectKey:   res.ObjectKey,
		DownloadURL: res.DownloadURL,
		ExpiresAt:   res.ExpiresAt,
	})
}
