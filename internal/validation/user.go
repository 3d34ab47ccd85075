package validation

// UserForm carries the raw string fields of a submitted user form.
type UserForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// UserFields is the typed result of a successfully validated UserForm.
type UserFields struct {
	Name     string
	Email    string
	Password string
}

var userMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Invalid email address",
	"password": "Password is required",
}

// User validates a submitted user form. All field failures are collected.
func User(form UserForm) (*UserFields, Errors) {
	if errs := collect(form, userMessages); errs != nil {
		return nil, errs
	}

	return &UserFields{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}, nil
}
