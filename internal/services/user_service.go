package services

import (
	"context"
	"errors"
	"log"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/Twix-Akshat/Todo-Demo/internal/models"
	"github.com/Twix-Akshat/Todo-Demo/internal/mutation"
	"github.com/Twix-Akshat/Todo-Demo/internal/repository"
	"github.com/Twix-Akshat/Todo-Demo/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgCreateUserFailed = "Failed to create user. Please try again."
	msgUpdateUserFailed = "Failed to update user. Please try again."
	msgDeleteUserFailed = "Failed to delete user. Please try again."
)

// UserService handles user mutations. It reports through the same tagged
// Result contract as the task mutations instead of raising hard errors on
// invalid input.
type UserService struct {
	userRepo repository.UserRepository
	views    cache.Client
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, views cache.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		views:    views,
	}
}

// Create validates a registration form and inserts a new user. Passwords
// are stored as bcrypt hashes, never as submitted text.
func (s *UserService) Create(ctx context.Context, form validation.UserForm) mutation.Result {
	fields, errs := validation.User(form)
	if errs != nil {
		return mutation.Invalid(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("hash password: %v", err)
		return mutation.Failed(msgCreateUserFailed)
	}

	user := &models.User{
		Name:         fields.Name,
		Email:        fields.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(user); err != nil {
		log.Printf("create user: %v", err)
		return mutation.Failed(msgCreateUserFailed)
	}

	s.invalidate(ctx, cache.ViewUserList, cache.ViewDashboard)
	return mutation.Success()
}

// Update validates the form and overwrites the user's name, email, and
// password hash.
func (s *UserService) Update(ctx context.Context, id uint64, form validation.UserForm) mutation.Result {
	fields, errs := validation.User(form)
	if errs != nil {
		return mutation.Invalid(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("update user %d: %v", id, err)
		}
		return mutation.Failed(msgUpdateUserFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("hash password: %v", err)
		return mutation.Failed(msgUpdateUserFailed)
	}

	user.Name = fields.Name
	user.Email = fields.Email
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(user); err != nil {
		log.Printf("update user %d: %v", id, err)
		return mutation.Failed(msgUpdateUserFailed)
	}

	s.invalidate(ctx, cache.ViewUserList, cache.ViewDashboard)
	return mutation.Success()
}

// Delete removes a user together with every task they own, so no task row
// is left pointing at a missing user. Deleting a missing ID is a no-op.
func (s *UserService) Delete(ctx context.Context, id uint64) mutation.Result {
	if err := s.userRepo.DeleteWithTasks(id); err != nil {
		log.Printf("delete user %d: %v", id, err)
		return mutation.Failed(msgDeleteUserFailed)
	}

	s.invalidate(ctx, cache.ViewUserList, cache.ViewDashboard, cache.ViewTaskList(id))
	return mutation.Success()
}

func (s *UserService) invalidate(ctx context.Context, views ...cache.View) {
	if s.views == nil {
		return
	}
	if err := s.views.Invalidate(ctx, views...); err != nil {
		log.Printf("invalidate views: %v", err)
	}
}
