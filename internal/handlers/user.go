package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	apierrors "github.com/Twix-Akshat/Todo-Demo/internal/errors"
	"github.com/Twix-Akshat/Todo-Demo/internal/services"
	"github.com/Twix-Akshat/Todo-Demo/internal/validation"
	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user mutations as form-submission targets.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

func userFormFromRequest(c *gin.Context) validation.UserForm {
	return validation.UserForm{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
}

// Create handles the registration form. Any failure redirects back to the
// form carrying the error mapping.
func (h *UserHandler) Create(c *gin.Context) {
	form := userFormFromRequest(c)
	res := h.users.Create(c.Request.Context(), form)

	if res.OK {
		c.Redirect(http.StatusSeeOther, "/users")
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/add?errors="+url.QueryEscape(res.ErrorsParam()))
}

// Update handles the edit-user form through the same result contract as
// the task mutations: failures redirect back to the form instead of
// raising a hard error.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idField(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	form := userFormFromRequest(c)
	res := h.users.Update(c.Request.Context(), id, form)

	if res.OK {
		c.Redirect(http.StatusSeeOther, "/users")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/edit/%d?errors=%s",
		id, url.QueryEscape(res.ErrorsParam())))
}

// Delete removes a user and their tasks. The user list refreshes in place.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idField(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	res := h.users.Delete(c.Request.Context(), id)
	if !res.OK {
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	c.Status(http.StatusNoContent)
}
