package validation

import (
	"strconv"
	"time"

	"github.com/Twix-Akshat/Todo-Demo/internal/models"
)

// TaskForm carries the raw string fields of a submitted task form.
type TaskForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	CategoryID  string `form:"category_id" validate:"required,number"`
	DueDate     string `form:"due_date" validate:"required,calendardate"`
	Priority    string `form:"priority" validate:"required,oneof=Low Medium High"`
	UserID      string `form:"user_id" validate:"required,number"`
}

// TaskFields is the typed result of a successfully validated TaskForm.
type TaskFields struct {
	Title       string
	Description string
	CategoryID  uint64
	DueDate     time.Time
	Priority    models.TaskPriority
	UserID      uint64
}

var taskMessages = map[string]string{
	"title":       "Title is required",
	"category_id": "Invalid category ID",
	"due_date":    "Invalid due date",
	"priority":    "Priority must be Low, Medium, or High",
	"user_id":     "Invalid user ID",
}

// Task validates a submitted task form. All field failures are collected.
func Task(form TaskForm) (*TaskFields, Errors) {
	if errs := collect(form, taskMessages); errs != nil {
		return nil, errs
	}

	// Numeric and date parses cannot fail past the schema above.
	categoryID, _ := strconv.ParseUint(form.CategoryID, 10, 64)
	userID, _ := strconv.ParseUint(form.UserID, 10, 64)
	dueDate, _ := ParseDate(form.DueDate)

	return &TaskFields{
		Title:       form.Title,
		Description: form.Description,
		CategoryID:  categoryID,
		DueDate:     dueDate,
		Priority:    models.TaskPriority(form.Priority),
		UserID:      userID,
	}, nil
}
