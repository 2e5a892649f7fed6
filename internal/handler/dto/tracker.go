// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/exertrack/exertrack/internal/model"
	"github.com/exertrack/exertrack/internal/service"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseResponse represents a newly appended exercise merged with its
// owner. The date is always a display string, never a timestamp.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntry is one rendered entry in a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's (possibly filtered) exercise log.
// Count equals the number of entries in Log.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		ID:       user.ID,
	}
}

// ToUserListResponse converts a slice of User models to response DTOs.
func ToUserListResponse(users []*model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *ToUserResponse(user)
	}
	return responses
}

// ToExerciseResponse converts an appended exercise view to its DTO.
func ToExerciseResponse(view *service.ExerciseView) *ExerciseResponse {
	return &ExerciseResponse{
		Username:    view.Username,
		Description: view.Exercise.Description,
		Duration:    view.Exercise.Duration,
		Date:        view.Exercise.DateString(),
		ID:          view.UserID,
	}
}

// ToLogResponse converts a log view to its DTO, rendering every date as a
// display string.
func ToLogResponse(view *service.LogView) *LogResponse {
	entries := make([]LogEntry, len(view.Log))
	for i, e := range view.Log {
		entries[i] = LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DateString(),
		}
	}
	return &LogResponse{
		Username: view.Username,
		Count:    view.Count,
		ID:       view.UserID,
		Log:      entries,
	}
}
