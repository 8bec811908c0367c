package handler

import "github.com/corphunt/corphunt-api/internal/core/domain"

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Country  string `json:"country"  validate:"omitempty,max=100"`
	City     string `json:"city"     validate:"omitempty,max=100"`
}

// updateUserRequest uses pointers so absent fields are left untouched.
// Credentials are not editable through the admin surface, so there is no
// password field.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
	Country  *string `json:"country"  validate:"omitempty,max=100"`
	City     *string `json:"city"     validate:"omitempty,max=100"`
	Verified *bool   `json:"verified"`
}

type listUsersResponse struct {
	Users []*domain.User `json:"users"`
}
