package dto_test

import (
	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/model/dto"
	"shareit/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateUserRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	req := dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"}

	user := req.ToModel(now)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, user.ID, user.CreatedBy)
}

func TestCreateUserRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateUserRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
		},
		{
			name:    "missing email",
			req:     dto.CreateUserRequest{Name: "Ann"},
			wantMsg: model.MessageInvalidEmail,
		},
		{
			name:    "malformed email",
			req:     dto.CreateUserRequest{Name: "Ann", Email: "ann.example.com"},
			wantMsg: model.MessageInvalidEmail,
		},
		{
			name:    "blank name",
			req:     dto.CreateUserRequest{Name: "   ", Email: "ann@example.com"},
			wantMsg: model.MessageInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantMsg == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestUpdateUserRequest_Apply(t *testing.T) {
	user := model.User{ID: "u-1", Name: "Ann", Email: "ann@example.com"}

	tests := []struct {
		name string
		req  dto.UpdateUserRequest
		want model.User
	}{
		{
			name: "empty keeps everything",
			req:  dto.UpdateUserRequest{},
			want: user,
		},
		{
			name: "name only",
			req:  dto.UpdateUserRequest{Name: ptr("Anna")},
			want: model.User{ID: "u-1", Name: "Anna", Email: "ann@example.com"},
		},
		{
			name: "both",
			req:  dto.UpdateUserRequest{Name: ptr("Anna"), Email: ptr("anna@example.com")},
			want: model.User{ID: "u-1", Name: "Anna", Email: "anna@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Apply(user))
			assert.Equal(t, tt.req.Name == nil && tt.req.Email == nil, tt.req.IsEmpty())
		})
	}
}

func TestFromModels(t *testing.T) {
	assert.Equal(t, []dto.UserResponse{}, dto.FromModels(nil))

	res := dto.FromModels([]model.User{{ID: "u-1", Name: "Ann", Email: "ann@example.com"}})
	assert.Equal(t, []dto.UserResponse{{ID: "u-1", Name: "Ann", Email: "ann@example.com"}}, res)
}
