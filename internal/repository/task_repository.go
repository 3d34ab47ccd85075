package repository

import (
	"github.com/Twix-Akshat/Todo-Demo/internal/database"
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByUser retrieves one page of a user's tasks plus the total count
func (r *GormTaskRepository) ListByUser(userID uint64, page, pageSize int) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.
		Order("id").
		Scopes(database.Paginate(page, pageSize)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update persists all fields of a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete hard-deletes a task. The row may already be gone; GORM reports
// zero affected rows without an error, which keeps the delete a no-op.
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// MarkDone sets a task's status to Done. Repeated calls leave it Done.
func (r *GormTaskRepository) MarkDone(id uint64) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("status", models.TaskStatusDone).Error
}

// Recent returns the most recently created tasks with their owners
func (r *GormTaskRepository) Recent(limit int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Preload("User").
		Order("id DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByStatus returns the total and completed task counts
func (r *GormTaskRepository) CountByStatus() (int64, int64, error) {
	var total, done int64
	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.Task{}).
		Where("status = ?", models.TaskStatusDone).
		Count(&done).Error; err != nil {
		return 0, 0, err
	}
	return total, done, nil
}

// CountByUser returns the number of tasks owned by a user
func (r *GormTaskRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
