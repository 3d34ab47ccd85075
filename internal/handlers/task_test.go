package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/Twix-Akshat/Todo-Demo/internal/repository"
	"github.com/Twix-Akshat/Todo-Demo/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for the task mutations
type TaskHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	views  *memoryViews
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	suite.views = newMemoryViews()

	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	categoryRepo := repository.NewCategoryRepository(suite.db)

	taskService := services.NewTaskService(taskRepo, suite.views)
	userService := services.NewUserService(userRepo, suite.views)

	suite.router = newTestRouter(
		NewPageHandler(userRepo, taskRepo, categoryRepo, suite.views),
		NewTaskHandler(taskService),
		NewUserHandler(userService),
	)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data
func (suite *TaskHandlerTestSuite) createTestUser(name, email string) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestCategory(name string) *models.Category {
	category := &models.Category{Name: name}
	suite.db.Create(category)
	return category
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, userID, categoryID uint64) *models.Task {
	task := &models.Task{
		Title:      title,
		Status:     models.TaskStatusTodo,
		Priority:   models.TaskPriorityMedium,
		DueDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: categoryID,
		UserID:     userID,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) taskCount(userID uint64) int64 {
	var count int64
	suite.db.Model(&models.Task{}).Where("user_id = ?", userID).Count(&count)
	return count
}

func validTaskForm(userID, categoryID uint64) url.Values {
	return url.Values{
		"title":       {"Write report"},
		"description": {"Quarterly numbers"},
		"category_id": {fmt.Sprintf("%d", categoryID)},
		"due_date":    {"2025-06-01"},
		"priority":    {"High"},
		"user_id":     {fmt.Sprintf("%d", userID)},
	}
}

// TestCreateTask_Success tests that a valid submission inserts the task
// and redirects to the owner's task list
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")

	w := postForm(suite.router, "/tasks", validTaskForm(user.ID, category.ID))

	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)
	assert.Equal(suite.T(), fmt.Sprintf("/tasks/%d", user.ID), w.Header().Get("Location"))

	var task models.Task
	err := suite.db.First(&task).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Write report", task.Title)
	assert.Equal(suite.T(), models.TaskPriorityHigh, task.Priority)
	assert.Equal(suite.T(), user.ID, task.UserID)
	assert.Equal(suite.T(), category.ID, task.CategoryID)
	assert.False(suite.T(), task.CreatedAt.IsZero())
}

// TestCreateTask_StatusAlwaysTodo tests that a submitted status field is
// ignored and the new task starts as To_Do
func (suite *TaskHandlerTestSuite) TestCreateTask_StatusAlwaysTodo() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")

	form := validTaskForm(user.ID, category.ID)
	form.Set("status", "Done")

	w := postForm(suite.router, "/tasks", form)
	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)

	var task models.Task
	suite.db.First(&task)
	assert.Equal(suite.T(), models.TaskStatusTodo, task.Status)
}

// TestCreateTask_ValidationErrors tests that an empty form reports every
// failing field without persisting anything
func (suite *TaskHandlerTestSuite) TestCreateTask_ValidationErrors() {
	w := postForm(suite.router, "/tasks", url.Values{})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var res struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), res.Success)
	assert.Equal(suite.T(), "Title is required", res.Errors["title"])
	assert.Equal(suite.T(), "Invalid category ID", res.Errors["category_id"])
	assert.Equal(suite.T(), "Invalid due date", res.Errors["due_date"])
	assert.Equal(suite.T(), "Priority must be Low, Medium, or High", res.Errors["priority"])
	assert.Equal(suite.T(), "Invalid user ID", res.Errors["user_id"])

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestCreateTask_InvalidDueDate tests that an unparseable due date is
// rejected before any write
func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidDueDate() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")

	form := validTaskForm(user.ID, category.ID)
	form.Set("due_date", "31/02/2025")

	w := postForm(suite.router, "/tasks", form)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid due date")
	assert.Equal(suite.T(), int64(0), suite.taskCount(user.ID))
}

// TestUpdateTask_ResetsStatusToTodo tests the round trip: complete a task,
// edit it, and its status is To_Do again
func (suite *TaskHandlerTestSuite) TestUpdateTask_ResetsStatusToTodo() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")
	task := suite.createTestTask("Old title", user.ID, category.ID)

	postForm(suite.router, "/tasks/complete", url.Values{"id": {fmt.Sprintf("%d", task.ID)}})

	var completed models.Task
	suite.db.First(&completed, task.ID)
	suite.Require().Equal(models.TaskStatusDone, completed.Status)

	form := validTaskForm(user.ID, category.ID)
	form.Set("id", fmt.Sprintf("%d", task.ID))
	form.Set("title", "New title")

	w := postForm(suite.router, "/tasks/update", form)

	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)
	assert.Equal(suite.T(), fmt.Sprintf("/tasks/%d", user.ID), w.Header().Get("Location"))

	var updated models.Task
	suite.db.First(&updated, task.ID)
	assert.Equal(suite.T(), "New title", updated.Title)
	assert.Equal(suite.T(), models.TaskStatusTodo, updated.Status)
}

// TestUpdateTask_ValidationRedirectsToEditForm tests that failing fields
// are carried back to the edit page in the query string
func (suite *TaskHandlerTestSuite) TestUpdateTask_ValidationRedirectsToEditForm() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")
	task := suite.createTestTask("Old title", user.ID, category.ID)

	form := validTaskForm(user.ID, category.ID)
	form.Set("id", fmt.Sprintf("%d", task.ID))
	form.Set("title", "")

	w := postForm(suite.router, "/tasks/update", form)

	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.True(suite.T(), strings.HasPrefix(location, fmt.Sprintf("/tasks/%d/edit/%d?errors=", user.ID, task.ID)))
	assert.Equal(suite.T(), "Title is required", errorsFromLocation(location)["title"])

	// Nothing was written
	var unchanged models.Task
	suite.db.First(&unchanged, task.ID)
	assert.Equal(suite.T(), "Old title", unchanged.Title)
}

// TestUpdateTask_MissingTask tests that editing a vanished task falls back
// to the owner's list without surfacing detail
func (suite *TaskHandlerTestSuite) TestUpdateTask_MissingTask() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")

	form := validTaskForm(user.ID, category.ID)
	form.Set("id", "999")

	w := postForm(suite.router, "/tasks/update", form)

	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)
	assert.Equal(suite.T(), fmt.Sprintf("/tasks/%d", user.ID), w.Header().Get("Location"))
}

// TestDeleteTask tests that deleting removes the row and the next listing
// excludes it
func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")
	keep := suite.createTestTask("Keep", user.ID, category.ID)
	remove := suite.createTestTask("Remove", user.ID, category.ID)

	w := postForm(suite.router, "/tasks/delete", url.Values{
		"id":      {fmt.Sprintf("%d", remove.ID)},
		"user_id": {fmt.Sprintf("%d", user.ID)},
	})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), int64(1), suite.taskCount(user.ID))

	list := getPage(suite.router, fmt.Sprintf("/tasks/%d", user.ID))
	assert.Equal(suite.T(), http.StatusOK, list.Code)
	assert.Contains(suite.T(), list.Body.String(), keep.Title)
	assert.NotContains(suite.T(), list.Body.String(), remove.Title)
}

// TestDeleteTask_MissingIsNoOp tests that deleting an already-deleted ID
// does not error
func (suite *TaskHandlerTestSuite) TestDeleteTask_MissingIsNoOp() {
	user := suite.createTestUser("Akshat", "akshat@example.com")

	w := postForm(suite.router, "/tasks/delete", url.Values{
		"id":      {"999"},
		"user_id": {fmt.Sprintf("%d", user.ID)},
	})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestCompleteTask_Idempotent tests that marking a task complete twice
// leaves it Done
func (suite *TaskHandlerTestSuite) TestCompleteTask_Idempotent() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")
	task := suite.createTestTask("Finish", user.ID, category.ID)

	for i := 0; i < 2; i++ {
		w := postForm(suite.router, "/tasks/complete", url.Values{"id": {fmt.Sprintf("%d", task.ID)}})
		assert.Equal(suite.T(), http.StatusOK, w.Code)
	}

	var done models.Task
	suite.db.First(&done, task.ID)
	assert.Equal(suite.T(), models.TaskStatusDone, done.Status)
}

// TestCreateTask_InvalidatesTaskListCache tests that the handler clears
// every cached page of the owner's task list
func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidatesTaskListCache() {
	user := suite.createTestUser("Akshat", "akshat@example.com")
	category := suite.createTestCategory("Work")

	staleKey := cache.TaskListKey(user.ID, 1)
	suite.Require().NoError(suite.views.Set(nil, staleKey, "stale"))

	postForm(suite.router, "/tasks", validTaskForm(user.ID, category.ID))

	assert.False(suite.T(), suite.views.has(staleKey))
	assert.Contains(suite.T(), suite.views.invalidated, cache.ViewTaskList(user.ID).Pattern)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
