package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	requestMocks "shareit/internal/domains/request/mocks"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/handlers/request"
	"shareit/shared/constant"
	"shareit/shared/failure"
)

const (
	userID    = "5f0c1c39-5b7e-4a53-a7c1-0d5c0b0a2f11"
	requestID = "0d2b7a8e-4c1f-4f7e-9b0a-5e6d7c8b9a01"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		user       string
		setupMock  func(svc *requestMocks.MockItemRequestService)
		wantStatus int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/requests",
			body:   `{"description":"need a ladder"}`,
			user:   userID,
			setupMock: func(svc *requestMocks.MockItemRequestService) {
				svc.EXPECT().Create(gomock.Any(), userID, dto.CreateItemRequestRequest{Description: "need a ladder"}).
					Return(dto.ItemRequestResponse{ID: requestID}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "create with blank description",
			method:     http.MethodPost,
			target:     "/requests",
			body:       `{"description":" "}`,
			user:       userID,
			setupMock:  func(_ *requestMocks.MockItemRequestService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "own requests need a user",
			method:     http.MethodGet,
			target:     "/requests",
			setupMock:  func(_ *requestMocks.MockItemRequestService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "own requests",
			method: http.MethodGet,
			target: "/requests",
			user:   userID,
			setupMock: func(svc *requestMocks.MockItemRequestService) {
				svc.EXPECT().GetOwn(gomock.Any(), userID).Return([]dto.ItemRequestResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "other requests",
			method: http.MethodGet,
			target: "/requests/all",
			user:   userID,
			setupMock: func(svc *requestMocks.MockItemRequestService) {
				svc.EXPECT().GetAll(gomock.Any(), userID).Return([]dto.ItemRequestResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing request",
			method: http.MethodGet,
			target: "/requests/" + requestID,
			user:   userID,
			setupMock: func(svc *requestMocks.MockItemRequestService) {
				svc.EXPECT().Get(gomock.Any(), userID, requestID).Return(dto.ItemRequestResponse{}, failure.NotFound(model.MessageNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := requestMocks.NewMockItemRequestService(gomock.NewController(t))
			tt.setupMock(svc)

			handler := request.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.user != "" {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, tt.user))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
