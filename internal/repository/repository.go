package repository

import (
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByUser retrieves one page of a user's tasks plus the total count
	ListByUser(userID uint64, page, pageSize int) ([]models.Task, int64, error)

	// Update persists all fields of a task
	Update(task *models.Task) error

	// Delete hard-deletes a task; deleting a missing ID is a no-op
	Delete(id uint64) error

	// MarkDone sets a task's status to Done; idempotent
	MarkDone(id uint64) error

	// Recent returns the most recently created tasks with their owners
	Recent(limit int) ([]models.Task, error)

	// CountByStatus returns the total and completed task counts
	CountByStatus() (total int64, done int64, err error)

	// CountByUser returns the number of tasks owned by a user
	CountByUser(userID uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Recent returns the most recently created users
	Recent(limit int) ([]models.User, error)

	// Count returns the number of users
	Count() (int64, error)

	// Update persists all fields of a user
	Update(user *models.User) error

	// DeleteWithTasks deletes a user and every task they own in one
	// transaction
	DeleteWithTasks(id uint64) error
}

// CategoryRepository defines the interface for category data access.
// Categories are read-only at runtime.
type CategoryRepository interface {
	// List returns all categories
	List() ([]models.Category, error)
}
