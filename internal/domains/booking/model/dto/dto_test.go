package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/failure"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	itemID := uuid.NewString()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		wantStart time.Time
		wantEnd   time.Time
		wantErr   string
	}{
		{
			name:      "local timestamps are read as UTC",
			req:       dto.CreateBookingRequest{Start: "2025-01-02T10:00:00", End: "2025-01-03T10:00:00", ItemID: itemID},
			wantStart: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "RFC 3339 keeps its offset",
			req:       dto.CreateBookingRequest{Start: "2025-01-02T10:00:00+03:00", End: "2025-01-02T12:00:00+03:00", ItemID: itemID},
			wantStart: time.Date(2025, 1, 2, 7, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "end equal to start",
			req:     dto.CreateBookingRequest{Start: "2025-01-02T10:00:00", End: "2025-01-02T10:00:00", ItemID: itemID},
			wantErr: model.MessageInvalidDates,
		},
		{
			name:    "end before start",
			req:     dto.CreateBookingRequest{Start: "2025-01-03T10:00:00", End: "2025-01-02T10:00:00", ItemID: itemID},
			wantErr: model.MessageInvalidDates,
		},
		{
			name:    "unparseable start",
			req:     dto.CreateBookingRequest{Start: "tomorrow", End: "2025-01-02T10:00:00", ItemID: itemID},
			wantErr: model.MessageInvalidDates,
		},
		{
			name:    "unparseable end",
			req:     dto.CreateBookingRequest{Start: "2025-01-02T10:00:00", End: "02.01.2025", ItemID: itemID},
			wantErr: model.MessageInvalidDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel("booker-1", now)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.True(t, tt.wantStart.Equal(got.Start))
			assert.True(t, tt.wantEnd.Equal(got.End))
			assert.Equal(t, itemID, got.ItemID)
			assert.Equal(t, "booker-1", got.BookerID)
			assert.Equal(t, model.StatusWaiting, got.Status)
			assert.Equal(t, now, got.CreatedAt)
			assert.Equal(t, "booker-1", got.CreatedBy)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	start := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	var res dto.BookingResponse
	res.FromModel(model.Booking{
		ID:         "b-1",
		Start:      start,
		End:        start.Add(time.Hour),
		ItemID:     "i-1",
		ItemName:   "Drill",
		BookerID:   "u-1",
		BookerName: "Ann",
		Status:     model.StatusApproved,
	})

	assert.Equal(t, "b-1", res.ID)
	assert.Equal(t, "APPROVED", res.Status)
	assert.Equal(t, dto.ItemSummary{ID: "i-1", Name: "Drill"}, res.Item)
	assert.Equal(t, dto.BookerSummary{ID: "u-1", Name: "Ann"}, res.Booker)
	assert.NotEmpty(t, res.Start)
	assert.NotEmpty(t, res.End)
}

func TestFromModels_Empty(t *testing.T) {
	res := dto.FromModels(nil)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestNewBookingSummary(t *testing.T) {
	assert.Nil(t, dto.NewBookingSummary(nil))

	summary := dto.NewBookingSummary(&model.Booking{ID: "b-1", BookerID: "u-1", Status: model.StatusWaiting})
	require.NotNil(t, summary)
	assert.Equal(t, "b-1", summary.ID)
	assert.Equal(t, "u-1", summary.BookerID)
	assert.Equal(t, "WAITING", summary.Status)
}
