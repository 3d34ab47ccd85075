package validation

import (
	"testing"
	"time"

	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/stretchr/testify/assert"
)

func validTaskForm() TaskForm {
	return TaskForm{
		Title:       "Write report",
		Description: "Quarterly numbers",
		CategoryID:  "2",
		DueDate:     "2025-06-01",
		Priority:    "High",
		UserID:      "7",
	}
}

func TestTask_Valid(t *testing.T) {
	fields, errs := Task(validTaskForm())

	assert.Nil(t, errs)
	assert.Equal(t, "Write report", fields.Title)
	assert.Equal(t, "Quarterly numbers", fields.Description)
	assert.Equal(t, uint64(2), fields.CategoryID)
	assert.Equal(t, uint64(7), fields.UserID)
	assert.Equal(t, models.TaskPriorityHigh, fields.Priority)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), fields.DueDate)
}

func TestTask_EmptyDescriptionAllowed(t *testing.T) {
	form := validTaskForm()
	form.Description = ""

	fields, errs := Task(form)

	assert.Nil(t, errs)
	assert.Equal(t, "", fields.Description)
}

func TestTask_EmptyTitle(t *testing.T) {
	form := validTaskForm()
	form.Title = ""

	fields, errs := Task(form)

	assert.Nil(t, fields)
	assert.Equal(t, "Title is required", errs["title"])
}

func TestTask_NonDigitCategoryID(t *testing.T) {
	form := validTaskForm()
	form.CategoryID = "2a"

	fields, errs := Task(form)

	assert.Nil(t, fields)
	assert.Equal(t, "Invalid category ID", errs["category_id"])
}

func TestTask_NonDigitUserID(t *testing.T) {
	form := validTaskForm()
	form.UserID = "abc"

	fields, errs := Task(form)

	assert.Nil(t, fields)
	assert.Equal(t, "Invalid user ID", errs["user_id"])
}

func TestTask_UnparseableDueDate(t *testing.T) {
	form := validTaskForm()
	form.DueDate = "not-a-date"

	fields, errs := Task(form)

	assert.Nil(t, fields)
	assert.Equal(t, "Invalid due date", errs["due_date"])
}

func TestTask_InvalidPriority(t *testing.T) {
	form := validTaskForm()
	form.Priority = "Urgent"

	fields, errs := Task(form)

	assert.Nil(t, fields)
	assert.Equal(t, "Priority must be Low, Medium, or High", errs["priority"])
}

func TestTask_CollectsAllFailures(t *testing.T) {
	fields, errs := Task(TaskForm{})

	assert.Nil(t, fields)
	assert.Equal(t, Errors{
		"title":       "Title is required",
		"category_id": "Invalid category ID",
		"due_date":    "Invalid due date",
		"priority":    "Priority must be Low, Medium, or High",
		"user_id":     "Invalid user ID",
	}, errs)
}

func TestParseDate_AcceptsCommonLayouts(t *testing.T) {
	for _, value := range []string{"2025-06-01", "2025-06-01T09:30", "2025-06-01T09:30:00Z"} {
		_, err := ParseDate(value)
		assert.NoError(t, err, value)
	}
}
