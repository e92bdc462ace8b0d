package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	commentMocks "shareit/internal/domains/comment/mocks"
	"shareit/internal/domains/comment/model"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/service"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	userMocks "shareit/internal/domains/user/mocks"
	userModel "shareit/internal/domains/user/model"
	"shareit/shared/failure"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo        *commentMocks.MockComment
	userRepo    *userMocks.MockUser
	itemRepo    *itemMocks.MockItem
	bookingRepo *bookingMocks.MockBooking
	svc         service.Comment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        commentMocks.NewMockComment(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		itemRepo:    itemMocks.NewMockItem(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
	}

	f.svc = service.New(f.repo, f.userRepo, f.itemRepo, f.bookingRepo, timezone.Fixed(now), mocks.NewOtel())

	return f
}

func TestCommentService_Create(t *testing.T) {
	author := userModel.User{ID: "u-1", Name: "Ann"}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "booker of a finished booking",
			setupMock: func(f *fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().ExistFinished(gomock.Any(), "u-1", "i-1", now).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c model.Comment) error {
					assert.Equal(t, "u-1", c.AuthorID)
					assert.Equal(t, "i-1", c.ItemID)

					return nil
				})
			},
		},
		{
			name: "no finished booking",
			setupMock: func(f *fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().ExistFinished(gomock.Any(), "u-1", "i-1", now).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  model.MessageNotAllowed,
		},
		{
			name: "unknown item",
			setupMock: func(f *fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  itemModel.MessageNotFound,
		},
		{
			name: "unknown author",
			setupMock: func(f *fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  userModel.MessageNotFound,
		},
		{
			name: "booking lookup error",
			setupMock: func(f *fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				f.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().ExistFinished(gomock.Any(), "u-1", "i-1", now).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), "u-1", "i-1", dto.CreateCommentRequest{Text: "great"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ann", res.AuthorName)
			assert.Equal(t, "great", res.Text)
		})
	}
}

func TestCommentService_GetByItems(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().FindByItems(gomock.Any(), []string{"i-1", "i-2"}).Return([]model.Comment{
		{ID: "c-1", ItemID: "i-1", Text: "first", Metadata: gModel.Metadata{CreatedAt: now.Add(-time.Hour)}},
		{ID: "c-2", ItemID: "i-1", Text: "second", Metadata: gModel.Metadata{CreatedAt: now}},
	}, nil)

	res, err := f.svc.GetByItems(context.Background(), []string{"i-1", "i-2"})

	require.NoError(t, err)
	require.Len(t, res["i-1"], 2)
	assert.Equal(t, "c-1", res["i-1"][0].ID)
	assert.Equal(t, "c-2", res["i-1"][1].ID)
	assert.Empty(t, res["i-2"])
}
