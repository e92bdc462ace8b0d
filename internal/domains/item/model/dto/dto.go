package dto

import (
	bookingModel "shareit/internal/domains/booking/model"
	bookingDto "shareit/internal/domains/booking/model/dto"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model"
	gModel "shareit/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string  `json:"name"                msg:"errors.400.items.name"             validate:"required,notblank"`
	Description *string `json:"description"         msg:"errors.400.items.description.null" validate:"required,max=512" msg_max:"errors.400.items.description.too_long"`
	Available   *bool   `json:"available"           msg:"errors.400.items.available.null"   validate:"required"`
	RequestID   *string `json:"requestId,omitempty" msg:"errors.400.id"                     validate:"omitempty,uuid"`
}

func (r *CreateItemRequest) ToModel(ownerID string, now time.Time) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: *r.Description,
		Available:   *r.Available,
		OwnerID:     ownerID,
		RequestID:   r.RequestID,
		Metadata:    gModel.NewMetadata(ownerID, now),
	}
}

// UpdateItemRequest is a partial update. Nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `db:"name"        json:"name,omitempty"        msg:"errors.400.items.name"                 validate:"omitempty,notblank"`
	Description *string `db:"description" json:"description,omitempty" msg:"errors.400.items.description.too_long" validate:"omitempty,max=512"`
	Available   *bool   `db:"available"   json:"available,omitempty"`
}

func (r *UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Available == nil
}

// Apply returns item with the present fields of the request copied over.
func (r *UpdateItemRequest) Apply(item model.Item) model.Item {
	if r.Name != nil {
		item.Name = *r.Name
	}

	if r.Description != nil {
		item.Description = *r.Description
	}

	if r.Available != nil {
		item.Available = *r.Available
	}

	return item
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	OwnerID     string  `json:"ownerId"`
	RequestID   *string `json:"requestId,omitempty"`
}

func (r *ItemResponse) FromModel(m model.Item) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Available = m.Available
	r.OwnerID = m.OwnerID
	r.RequestID = m.RequestID
}

func FromModels(models []model.Item) []ItemResponse {
	res := make([]ItemResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// ItemDetailResponse is an item with its booking neighbourhood around today and its comments.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *bookingDto.BookingSummary   `json:"lastBooking"`
	NextBooking *bookingDto.BookingSummary   `json:"nextBooking"`
	Comments    []commentDto.CommentResponse `json:"comments"`
}

func (r *ItemDetailResponse) FromModel(m model.Item, lastNext bookingModel.LastNext, comments []commentDto.CommentResponse) {
	r.ItemResponse.FromModel(m)
	r.LastBooking = bookingDto.NewBookingSummary(lastNext.Last)
	r.NextBooking = bookingDto.NewBookingSummary(lastNext.Next)

	r.Comments = comments
	if r.Comments == nil {
		r.Comments = []commentDto.CommentResponse{}
	}
}
