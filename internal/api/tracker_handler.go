package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/exercise-tracker/internal/dateformat"
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
)

// TrackerHandler holds the tracker service dependency.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- DTOs for API (Data Transfer Objects) ---

// NewUserRequest is the form payload for creating a user.
type NewUserRequest struct {
	Username string `form:"username" binding:"required"`
}

// AddExerciseRequest is the form payload for appending a log entry.
// duration and date stay strings here: the service owns their parsing so
// that malformed values map to field-specific validation errors.
type AddExerciseRequest struct {
	UserID      string `form:"userId" binding:"required"`
	Description string `form:"description" binding:"required"`
	Duration    string `form:"duration" binding:"required"`
	Date        string `form:"date"`
}

// LogQuery are the optional filters of the log endpoint.
type LogQuery struct {
	UserID string `form:"userId" binding:"required"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  string `form:"limit"`
}

// UserResponse is the DTO returned for a created user.
type UserResponse struct {
	ID       string          `json:"_id"`
	Username string          `json:"username"`
	Log      []EntryResponse `json:"log"`
}

// UserSummaryResponse is one element of the user listing.
type UserSummaryResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// EntryResponse is the DTO for one log entry. It is built field by field;
// the entry's internal id intentionally has no counterpart here.
type EntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// AddExerciseResponse echoes the user and the entry just appended.
type AddExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO of the log query endpoint. Count reflects the
// range-filtered log before any limit truncation.
type LogResponse struct {
	ID       string          `json:"_id"`
	Username string          `json:"username"`
	Count    int             `json:"count"`
	Log      []EntryResponse `json:"log"`
}

// MapUserToResponse converts a domain.User to the UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Log:      MapEntriesToResponse(user.Log),
	}
}

// MapEntriesToResponse converts domain entries to DTOs, rendering dates.
func MapEntriesToResponse(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        dateformat.Format(e.Date),
		}
	}
	return responses
}

// --- Handler Methods ---

// NewUser handles POST /api/exercise/new-user.
func (h *TrackerHandler) NewUser(c *gin.Context) {
	var req NewUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.trackerService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListUsers handles GET /api/exercise/users.
func (h *TrackerHandler) ListUsers(c *gin.Context) {
	users, err := h.trackerService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}

	responses := make([]UserSummaryResponse, len(users))
	for i, u := range users {
		responses[i] = UserSummaryResponse{ID: u.ID.Hex(), Username: u.Username}
	}

	c.JSON(http.StatusOK, responses)
}

// AddExercise handles POST /api/exercise/add.
func (h *TrackerHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, firstMissingField(req))
		return
	}

	user, entry, err := h.trackerService.AddExercise(
		c.Request.Context(),
		req.UserID,
		req.Description,
		req.Duration,
		req.Date,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to add exercise.")
		return
	}

	c.JSON(http.StatusCreated, AddExerciseResponse{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        dateformat.Format(entry.Date),
	})
}

// GetLog handles GET /api/exercise/log.
func (h *TrackerHandler) GetLog(c *gin.Context) {
	var query LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, "userId is required")
		return
	}

	user, result, err := h.trackerService.GetLog(
		c.Request.Context(),
		query.UserID,
		query.From,
		query.To,
		query.Limit,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve log.")
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Count:    result.Count,
		Log:      MapEntriesToResponse(result.Entries),
	})
}

// respondServiceError maps service errors onto HTTP statuses:
// validation and bad dates are the caller's fault, an unknown user is 404,
// everything else is a store failure.
func respondServiceError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, dateformat.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, internalMsg)
	}
}

// firstMissingField reports the first required form field that is absent,
// in the order the fields appear on the form.
func firstMissingField(req AddExerciseRequest) string {
	switch {
	case req.UserID == "":
		return "userId is required"
	case req.Description == "":
		return "description is required"
	case req.Duration == "":
		return "duration is required"
	}
	return "invalid request"
}
