package dto

import (
	"shareit/internal/domains/booking/model"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	gModel "shareit/shared/model"
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest carries wall-clock timestamps, read as UTC when they have no zone.
type CreateBookingRequest struct {
	Start  string `json:"start"  msg:"errors.400.bookings.dates" validate:"required"`
	End    string `json:"end"    msg:"errors.400.bookings.dates" validate:"required"`
	ItemID string `json:"itemId" msg:"errors.400.id"             validate:"required,uuid"`
}

// ToModel builds a WAITING booking for bookerID. End must be strictly after start.
func (c *CreateBookingRequest) ToModel(bookerID string, now time.Time) (model.Booking, error) {
	start, err := gDto.ParseTime(c.Start)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString(model.MessageInvalidDates) //nolint:wrapcheck
	}

	end, err := gDto.ParseTime(c.End)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString(model.MessageInvalidDates) //nolint:wrapcheck
	}

	if !end.After(start) {
		return model.Booking{}, failure.BadRequestFromString(model.MessageInvalidDates) //nolint:wrapcheck
	}

	return model.Booking{
		ID:       uuid.NewString(),
		Start:    start,
		End:      end,
		ItemID:   c.ItemID,
		BookerID: bookerID,
		Status:   model.StatusWaiting,
		Metadata: gModel.NewMetadata(bookerID, now),
	}, nil
}

type ItemSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     string        `json:"id"`
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Status string        `json:"status"`
	Item   ItemSummary   `json:"item"`
	Booker BookerSummary `json:"booker"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Start = gDto.FormatTime(m.Start)
	r.End = gDto.FormatTime(m.End)
	r.Status = m.Status.String()
	r.Item = ItemSummary{ID: m.ItemID, Name: m.ItemName}
	r.Booker = BookerSummary{ID: m.BookerID, Name: m.BookerName}
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// BookingSummary is the compact form embedded in item views as last and next booking.
type BookingSummary struct {
	ID       string `json:"id"`
	BookerID string `json:"bookerId"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
}

// NewBookingSummary returns nil for a nil booking.
func NewBookingSummary(m *model.Booking) *BookingSummary {
	if m == nil {
		return nil
	}

	return &BookingSummary{
		ID:       m.ID,
		BookerID: m.BookerID,
		Start:    gDto.FormatTime(m.Start),
		End:      gDto.FormatTime(m.End),
		Status:   m.Status.String(),
	}
}
