package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	apierrors "github.com/Twix-Akshat/Todo-Demo/internal/errors"
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/Twix-Akshat/Todo-Demo/internal/services"
	"github.com/Twix-Akshat/Todo-Demo/internal/validation"
	"github.com/gin-gonic/gin"
)

// TaskHandler exposes the task mutations as form-submission targets.
type TaskHandler struct {
	tasks *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
	}
}

func taskFormFromRequest(c *gin.Context) validation.TaskForm {
	return validation.TaskForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
		DueDate:     c.PostForm("due_date"),
		Priority:    c.PostForm("priority"),
		UserID:      c.PostForm("user_id"),
	}
}

// Create handles the new-task form. On success the client is sent to the
// owner's task list; validation failures come back as a structured result
// for the form to render inline.
func (h *TaskHandler) Create(c *gin.Context) {
	form := taskFormFromRequest(c)
	res := h.tasks.Create(c.Request.Context(), form)

	switch {
	case res.OK:
		c.Redirect(http.StatusSeeOther, "/tasks/"+form.UserID)
	case res.Invalid():
		c.JSON(http.StatusUnprocessableEntity, res)
	default:
		c.JSON(http.StatusInternalServerError, res)
	}
}

// Update handles the edit-task form. Validation failures redirect back to
// the edit page with the error mapping in the query string; a storage
// failure falls back to the task list, which does not render it.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := idField(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	form := taskFormFromRequest(c)
	res := h.tasks.Update(c.Request.Context(), id, form)

	switch {
	case res.OK:
		c.Redirect(http.StatusSeeOther, "/tasks/"+form.UserID)
	case res.Invalid():
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/tasks/%s/edit/%d?errors=%s",
			form.UserID, id, url.QueryEscape(res.ErrorsParam())))
	default:
		c.Redirect(http.StatusSeeOther, "/tasks/"+form.UserID)
	}
}

// Delete removes a task. The list view refreshes in place, so there is no
// redirect.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := idField(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}
	userID, ok := idField(c, "user_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	res := h.tasks.Delete(c.Request.Context(), id, userID)
	if !res.OK {
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	c.Status(http.StatusNoContent)
}

// Complete marks a task Done. The submitting control disables itself while
// the request is in flight; repeating the call is harmless.
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := idField(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	res := h.tasks.MarkComplete(c.Request.Context(), id)
	if !res.OK {
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": models.TaskStatusDone,
	})
}
