package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/Twix-Akshat/Todo-Demo/internal/mutation"
	"github.com/Twix-Akshat/Todo-Demo/internal/repository"
	"github.com/Twix-Akshat/Todo-Demo/internal/validation"
	"gorm.io/gorm"
)

// Generic failure messages surfaced to the user. Internal error detail is
// logged server-side only.
const (
	msgCreateTaskFailed   = "Failed to create task. Please try again."
	msgUpdateTaskFailed   = "Failed to update task. Please try again."
	msgDeleteTaskFailed   = "Failed to delete task. Please try again."
	msgCompleteTaskFailed = "Failed to complete task. Please try again."
)

// TaskService handles task mutations: validate, persist, invalidate.
type TaskService struct {
	taskRepo repository.TaskRepository
	views    cache.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, views cache.Client) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		views:    views,
	}
}

// Create validates a submitted task form and inserts a new task. The
// status of a new task is always To_Do regardless of the submitted fields,
// and nothing is written when validation fails.
func (s *TaskService) Create(ctx context.Context, form validation.TaskForm) mutation.Result {
	fields, errs := validation.Task(form)
	if errs != nil {
		return mutation.Invalid(errs)
	}

	now := time.Now()
	task := &models.Task{
		Title:       fields.Title,
		Description: fields.Description,
		Status:      models.TaskStatusTodo,
		Priority:    fields.Priority,
		DueDate:     fields.DueDate,
		CategoryID:  fields.CategoryID,
		UserID:      fields.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(task); err != nil {
		log.Printf("create task: %v", err)
		return mutation.Failed(msgCreateTaskFailed)
	}

	s.invalidate(ctx, cache.ViewTaskList(fields.UserID), cache.ViewDashboard, cache.ViewUserList)
	return mutation.Success()
}

// Update validates a submitted task form and overwrites every mutable
// field of the identified task. The status is forced back to To_Do, so
// editing a completed task re-opens it. The owner recorded at creation is
// kept; the submitted user_id only names the list to return to.
func (s *TaskService) Update(ctx context.Context, id uint64, form validation.TaskForm) mutation.Result {
	fields, errs := validation.Task(form)
	if errs != nil {
		return mutation.Invalid(errs)
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("update task %d: %v", id, err)
		}
		return mutation.Failed(msgUpdateTaskFailed)
	}

	task.Title = fields.Title
	task.Description = fields.Description
	task.Status = models.TaskStatusTodo
	task.Priority = fields.Priority
	task.DueDate = fields.DueDate
	task.CategoryID = fields.CategoryID
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(task); err != nil {
		log.Printf("update task %d: %v", id, err)
		return mutation.Failed(msgUpdateTaskFailed)
	}

	s.invalidate(ctx, cache.ViewTaskList(task.UserID), cache.ViewDashboard, cache.ViewUserList)
	return mutation.Success()
}

// Delete removes a task. Deleting an ID that no longer exists is a no-op,
// not an error; the owning user's cached task list is refreshed either way.
func (s *TaskService) Delete(ctx context.Context, id, userID uint64) mutation.Result {
	if err := s.taskRepo.Delete(id); err != nil {
		log.Printf("delete task %d: %v", id, err)
		return mutation.Failed(msgDeleteTaskFailed)
	}

	s.invalidate(ctx, cache.ViewTaskList(userID), cache.ViewDashboard, cache.ViewUserList)
	return mutation.Success()
}

// MarkComplete sets a task's status to Done. Calling it twice is harmless;
// marking a missing task is treated as a no-op.
func (s *TaskService) MarkComplete(ctx context.Context, id uint64) mutation.Result {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mutation.Success()
		}
		log.Printf("complete task %d: %v", id, err)
		return mutation.Failed(msgCompleteTaskFailed)
	}

	if err := s.taskRepo.MarkDone(id); err != nil {
		log.Printf("complete task %d: %v", id, err)
		return mutation.Failed(msgCompleteTaskFailed)
	}

	s.invalidate(ctx, cache.ViewUserList, cache.ViewDashboard, cache.ViewTaskList(task.UserID))
	return mutation.Success()
}

func (s *TaskService) invalidate(ctx context.Context, views ...cache.View) {
	if s.views == nil {
		return
	}
	if err := s.views.Invalidate(ctx, views...); err != nil {
		log.Printf("invalidate views: %v", err)
	}
}
