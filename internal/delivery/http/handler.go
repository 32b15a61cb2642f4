package http

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/messmeal/backend/internal/domain"
	"github.com/messmeal/backend/internal/usecase"
)

// allowedMenuTypes are the upload types the menu scanner accepts
var allowedMenuTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"application/pdf",
}

// DefaultMaxUploadBytes caps a menu upload when no limit is configured
const DefaultMaxUploadBytes int64 = 10 << 20

// multipartOverhead is the slack allowed on top of the file for form boundaries
const multipartOverhead int64 = 1 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	plannerService *usecase.PlannerService
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler with dependencies
func NewHandler(plannerService *usecase.PlannerService, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		plannerService: plannerService,
		maxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	catalogSize := 0
	if h.plannerService != nil {
		catalogSize = h.plannerService.CatalogSize()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "mess-meal-planner-backend",
		"version":      "1.0.0",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"catalog_size": catalogSize,
	})
}

// SetupProfile computes TDEE and daily targets for a user profile
func (h *Handler) SetupProfile(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	var profile domain.BiometricProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}
	if profile.ActivityLevel == "" {
		profile.ActivityLevel = domain.ActivityModerate
	}
	if profile.WorkoutToday == "" {
		profile.WorkoutToday = "rest"
	}

	result := h.plannerService.SetupProfile(profile)

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"tdee":           result.TDEE,
		"daily_targets":  result.Targets,
		"goal":           strings.ToUpper(string(profile.Goal)),
		"activity_level": result.Activity,
		"workout_today":  strings.ToUpper(profile.WorkoutToday),
		"diagnostics":    result.Diagnostics,
	})
}

// ScanMenu extracts and resolves the menus in an uploaded image or PDF
func (h *Handler) ScanMenu(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(c, domain.ErrUploadTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: a menu file is required in the 'file' field",
		})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		h.respondError(c, fmt.Errorf("%w: %d bytes", domain.ErrUploadTooLarge, fileHeader.Size))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		h.respondError(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		h.respondError(c, domain.ErrUploadTooLarge)
		return
	}
	if len(data) == 0 {
		h.respondError(c, fmt.Errorf("%w: empty menu file", domain.ErrInvalidRequest))
		return
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedMenuTypes...) {
		h.respondError(c, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, mtype.String()))
		return
	}

	menus, err := h.plannerService.ScanMenu(c.Request.Context(), domain.MenuDocument{
		Filename: fileHeader.Filename,
		MimeType: mtype.String(),
		Data:     data,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"menus":  menus,
		"count":  len(menus),
	})
}

// GetRecommendations asks the advisor for meal combinations from the menu
func (h *Handler) GetRecommendations(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	var req domain.AdvisoryContext
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	recommendations, err := h.plannerService.Recommend(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"recommendations": recommendations,
	})
}

// GetGuidance returns a short next-meal suggestion for the remaining macros
func (h *Handler) GetGuidance(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	var req domain.AdvisoryContext
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	guidance, err := h.plannerService.Guidance(c.Request.Context(), req.Profile, req.DailyTarget, req.CurrentIntake)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"guidance": guidance,
	})
}

// WorkoutMotivation returns a motivational message for a workout day and goal
func (h *Handler) WorkoutMotivation(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	motivation, err := h.plannerService.Motivation(c.Request.Context(), c.Param("workout_day"), c.Param("goal"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"motivation": motivation,
	})
}

// SearchFood resolves a single food name against the catalog
func (h *Handler) SearchFood(c *gin.Context) {
	if !h.requireService(c) {
		return
	}

	name := c.Param("food_name")
	match := h.plannerService.SearchFood(name)

	response := gin.H{
		"status":    "success",
		"found":     match.Matched,
		"match":     match.Match,
		"nutrition": match.FoodRecord,
	}
	if !match.Matched {
		response["message"] = fmt.Sprintf("Food '%s' not found in database", name)
	}
	c.JSON(http.StatusOK, response)
}

// requireService writes 501 when the handler was built without a planner
func (h *Handler) requireService(c *gin.Context) bool {
	if h.plannerService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Planner service not configured",
		})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownTool):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrGenerativeAPIFailure), errors.Is(err, domain.ErrEmptyGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
