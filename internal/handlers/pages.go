package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/Twix-Akshat/Todo-Demo/internal/constants"
	"github.com/Twix-Akshat/Todo-Demo/internal/dto"
	apierrors "github.com/Twix-Akshat/Todo-Demo/internal/errors"
	"github.com/Twix-Akshat/Todo-Demo/internal/repository"
	"github.com/Twix-Akshat/Todo-Demo/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler renders the view models behind each page route. List pages
// are served cache-aside: a cached copy wins, otherwise the view model is
// computed from the store and cached until a mutation invalidates it.
type PageHandler struct {
	userRepo     repository.UserRepository
	taskRepo     repository.TaskRepository
	categoryRepo repository.CategoryRepository
	views        cache.Client
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(userRepo repository.UserRepository, taskRepo repository.TaskRepository, categoryRepo repository.CategoryRepository, views cache.Client) *PageHandler {
	return &PageHandler{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		views:        views,
	}
}

// Dashboard renders the landing page stats and recent activity.
func (h *PageHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var view dto.DashboardView
	if h.cacheGet(ctx, cache.DashboardKey(), &view) {
		c.JSON(http.StatusOK, view)
		return
	}

	totalUsers, err := h.userRepo.Count()
	if err != nil {
		h.renderError(c, "dashboard", err)
		return
	}

	totalTasks, completedTasks, err := h.taskRepo.CountByStatus()
	if err != nil {
		h.renderError(c, "dashboard", err)
		return
	}

	recentTasks, err := h.taskRepo.Recent(constants.DashboardRecentTasks)
	if err != nil {
		h.renderError(c, "dashboard", err)
		return
	}

	recentUsers, err := h.userRepo.Recent(constants.DashboardRecentUsers)
	if err != nil {
		h.renderError(c, "dashboard", err)
		return
	}

	view = dto.ToDashboardView(totalUsers, totalTasks, completedTasks, recentTasks, recentUsers)
	h.cacheSet(ctx, cache.DashboardKey(), view)

	c.JSON(http.StatusOK, view)
}

// ListUsers renders the user listing page.
func (h *PageHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	var view dto.UserListView
	if h.cacheGet(ctx, cache.UserListKey(), &view) {
		c.JSON(http.StatusOK, view)
		return
	}

	users, err := h.userRepo.List()
	if err != nil {
		h.renderError(c, "users", err)
		return
	}

	view = dto.ToUserListView(users)
	h.cacheSet(ctx, cache.UserListKey(), view)

	c.JSON(http.StatusOK, view)
}

// NewUserForm renders the empty registration form, carrying through any
// errors from a rejected submission.
func (h *PageHandler) NewUserForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.UserFormView{
		Errors: errorsFromQuery(c),
	})
}

// EditUserForm renders the edit form pre-filled with the user's current
// name and email. The password field is never pre-filled. A missing user
// falls back to the user list.
func (h *PageHandler) EditUserForm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusSeeOther, "/users")
			return
		}
		h.renderError(c, "edit user", err)
		return
	}

	c.JSON(http.StatusOK, dto.UserFormView{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Errors: errorsFromQuery(c),
	})
}

// TaskList renders one page of a user's tasks, five per page.
func (h *PageHandler) TaskList(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := idParam(c, "userId")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}
	page := utils.GetPageParam(c)

	var view dto.TaskListView
	if h.cacheGet(ctx, cache.TaskListKey(userID, page), &view) {
		c.JSON(http.StatusOK, view)
		return
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusSeeOther, "/users")
			return
		}
		h.renderError(c, "tasks", err)
		return
	}

	tasks, total, err := h.taskRepo.ListByUser(userID, page, constants.TaskPageSize)
	if err != nil {
		h.renderError(c, "tasks", err)
		return
	}

	view = dto.ToTaskListView(*user, tasks, page, constants.TaskPageSize, total)
	h.cacheSet(ctx, cache.TaskListKey(userID, page), view)

	c.JSON(http.StatusOK, view)
}

// NewTaskForm renders the new-task form with the category dropdown.
func (h *PageHandler) NewTaskForm(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	categories, err := h.categoryRepo.List()
	if err != nil {
		h.renderError(c, "new task", err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskFormView{
		UserID:     strconv.FormatUint(userID, 10),
		Categories: dto.ToCategoryOptions(categories),
		Errors:     errorsFromQuery(c),
	})
}

// EditTaskForm renders the edit form pre-filled with the task's current
// values. A missing task falls back to the owner's task list.
func (h *PageHandler) EditTaskForm(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusSeeOther, "/tasks/"+strconv.FormatUint(userID, 10))
			return
		}
		h.renderError(c, "edit task", err)
		return
	}

	categories, err := h.categoryRepo.List()
	if err != nil {
		h.renderError(c, "edit task", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskFormView(*task, categories, errorsFromQuery(c)))
}

func (h *PageHandler) cacheGet(ctx context.Context, key string, dest any) bool {
	if h.views == nil {
		return false
	}
	hit, err := h.views.Get(ctx, key, dest)
	if err != nil {
		log.Printf("view cache get %s: %v", key, err)
		return false
	}
	return hit
}

func (h *PageHandler) cacheSet(ctx context.Context, key string, value any) {
	if h.views == nil {
		return
	}
	if err := h.views.Set(ctx, key, value); err != nil {
		log.Printf("view cache set %s: %v", key, err)
	}
}

func (h *PageHandler) renderError(c *gin.Context, page string, err error) {
	log.Printf("render %s: %v", page, err)
	apierrors.InternalError(c, "Failed to load "+page+". Please try again.")
}
