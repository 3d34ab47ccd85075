package dto

import (
	"strconv"

	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/Twix-Akshat/Todo-Demo/internal/utils"
)

// dueDateLayout is the format used both for display and for pre-filling
// HTML date inputs.
const dueDateLayout = "2006-01-02"

// TaskRowDTO represents one task row in list views.
type TaskRowDTO struct {
	ID            uint64              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        models.TaskStatus   `json:"status"`
	Priority      models.TaskPriority `json:"priority"`
	PriorityColor string              `json:"priority_color"`
	PriorityBadge string              `json:"priority_badge"`
	DueDate       string              `json:"due_date"`
	CategoryID    uint64              `json:"category_id"`
	OwnerName     string              `json:"owner_name,omitempty"`
}

// TaskListView is the view model for one page of a user's task list.
type TaskListView struct {
	UserID     uint64          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Tasks      []TaskRowDTO    `json:"tasks"`
	TotalTasks int64           `json:"total_tasks"`
	Pagination utils.PageLinks `json:"pagination"`
}

// CategoryOption is one entry of the category dropdown on task forms.
type CategoryOption struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskFormView is the view model for the new/edit task forms. Field values
// stay in their submitted string form so a failed submission can be
// re-rendered exactly as entered.
type TaskFormView struct {
	ID          uint64            `json:"id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CategoryID  string            `json:"category_id"`
	DueDate     string            `json:"due_date"`
	Priority    string            `json:"priority"`
	UserID      string            `json:"user_id"`
	Categories  []CategoryOption  `json:"categories"`
	Errors      map[string]string `json:"errors,omitempty"`
}

// ToTaskRowDTO converts a Task model to TaskRowDTO
func ToTaskRowDTO(task models.Task) TaskRowDTO {
	row := TaskRowDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		PriorityColor: PriorityColor(task.Priority),
		PriorityBadge: PriorityBadge(task.Priority),
		DueDate:       task.DueDate.Format(dueDateLayout),
		CategoryID:    task.CategoryID,
	}

	// Include the owner if preloaded
	if task.User.ID != 0 {
		row.OwnerName = task.User.Name
	}

	return row
}

// ToTaskListView converts one page of tasks to the listing view model
func ToTaskListView(user models.User, tasks []models.Task, page int, pageSize int, total int64) TaskListView {
	rows := make([]TaskRowDTO, len(tasks))
	for i, task := range tasks {
		rows[i] = ToTaskRowDTO(task)
	}

	return TaskListView{
		UserID:     user.ID,
		UserName:   user.Name,
		Tasks:      rows,
		TotalTasks: total,
		Pagination: utils.BuildPageLinks(page, utils.TotalPages(total, pageSize)),
	}
}

// ToTaskFormView pre-fills the edit form with a task's current values.
func ToTaskFormView(task models.Task, categories []models.Category, errs map[string]string) TaskFormView {
	return TaskFormView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CategoryID:  formatID(task.CategoryID),
		DueDate:     task.DueDate.Format(dueDateLayout),
		Priority:    string(task.Priority),
		UserID:      formatID(task.UserID),
		Categories:  ToCategoryOptions(categories),
		Errors:      errs,
	}
}

// ToCategoryOptions converts categories to dropdown options
func ToCategoryOptions(categories []models.Category) []CategoryOption {
	options := make([]CategoryOption, len(categories))
	for i, category := range categories {
		options[i] = CategoryOption{ID: category.ID, Name: category.Name}
	}
	return options
}

// PriorityColor returns the accent classes for a task card.
func PriorityColor(priority models.TaskPriority) string {
	switch priority {
	case models.TaskPriorityLow:
		return "border-l-green-500 bg-green-50"
	case models.TaskPriorityMedium:
		return "border-l-yellow-500 bg-yellow-50"
	case models.TaskPriorityHigh:
		return "border-l-red-500 bg-red-50"
	default:
		return "border-l-gray-500 bg-gray-50"
	}
}

// PriorityBadge returns the badge classes for a priority label.
func PriorityBadge(priority models.TaskPriority) string {
	switch priority {
	case models.TaskPriorityLow:
		return "bg-green-100 text-green-800"
	case models.TaskPriorityMedium:
		return "bg-yellow-100 text-yellow-800"
	case models.TaskPriorityHigh:
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
