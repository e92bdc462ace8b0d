package dto

import (
	"shareit/internal/domains/user/model"
	gModel "shareit/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name  string `json:"name"  msg:"errors.400.users.name"  validate:"required,notblank"`
	Email string `json:"email" msg:"errors.400.users.email" validate:"required,email"`
}

func (r *CreateUserRequest) ToModel(now time.Time) model.User {
	id := uuid.NewString()

	return model.User{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Metadata: gModel.NewMetadata(id, now),
	}
}

// UpdateUserRequest is a partial update. Nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  msg:"errors.400.users.name"  validate:"omitempty,notblank"`
	Email *string `db:"email" json:"email,omitempty" msg:"errors.400.users.email" validate:"omitempty,email"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil
}

// Apply returns user with the present fields of the request copied over.
func (r *UpdateUserRequest) Apply(user model.User) model.User {
	if r.Name != nil {
		user.Name = *r.Name
	}

	if r.Email != nil {
		user.Email = *r.Email
	}

	return user
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
