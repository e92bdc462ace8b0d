package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/model/dto"
	"shareit/internal/handlers/user"
	"shareit/shared/failure"
)

const userID = "5f0c1c39-5b7e-4a53-a7c1-0d5c0b0a2f11"

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(svc *userMocks.MockUserService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/users",
			body:   `{"name":"Ann","email":"ann@example.com"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"}).
					Return(dto.UserResponse{ID: userID, Name: "Ann", Email: "ann@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"id":"` + userID + `","name":"Ann","email":"ann@example.com"}}`,
		},
		{
			name:       "create with invalid email",
			method:     http.MethodPost,
			target:     "/users",
			body:       `{"name":"Ann","email":"ann"}`,
			setupMock:  func(_ *userMocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "create with taken email",
			method: http.MethodPost,
			target: "/users",
			body:   `{"name":"Ann","email":"ann@example.com"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.UserResponse{}, failure.Conflict(model.MessageEmailTaken))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/users",
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().GetAll(gomock.Any()).Return([]dto.UserResponse{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[]}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/users/" + userID,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), userID).Return(dto.UserResponse{}, failure.NotFound(model.MessageNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			target: "/users/" + userID,
			body:   `{"name":"Anna"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Update(gomock.Any(), userID, gomock.Any()).Return(dto.UserResponse{ID: userID, Name: "Anna"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "delete with malformed id",
			method:     http.MethodDelete,
			target:     "/users/abc",
			setupMock:  func(_ *userMocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/users/" + userID,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Delete(gomock.Any(), userID).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := userMocks.NewMockUserService(gomock.NewController(t))
			tt.setupMock(svc)

			handler := user.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
