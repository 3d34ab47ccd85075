package dto

import (
	"strings"

	"github.com/Twix-Akshat/Todo-Demo/internal/models"
)

// UserDTO represents a user in rendered views. Password material is never
// part of any view model.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}

// UserListView is the view model for the user listing page.
type UserListView struct {
	Users []UserDTO `json:"users"`
	Total int       `json:"total"`
}

// UserFormView is the view model for the add/edit user forms. The password
// field is intentionally absent: an edit form is never pre-filled with it.
type UserFormView struct {
	ID     uint64            `json:"id,omitempty"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Initials: Initials(user.Name),
	}
}

// ToUserListView converts a slice of users to the listing view model
func ToUserListView(users []models.User) UserListView {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return UserListView{
		Users: items,
		Total: len(items),
	}
}

// Initials derives the avatar initials shown next to a user, at most two
// characters from the first letters of the name's words.
func Initials(name string) string {
	if name == "" {
		return "U"
	}

	var initials []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		initials = append(initials, runes[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
