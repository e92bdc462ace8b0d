package dto

import (
	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" msg:"errors.400.requests.description" validate:"required,notblank"`
}

func (r *CreateItemRequestRequest) ToModel(requestorID string, now time.Time) model.ItemRequest {
	return model.ItemRequest{
		ID:          uuid.NewString(),
		Description: r.Description,
		RequestorID: requestorID,
		Metadata:    gModel.NewMetadata(requestorID, now),
	}
}

// AnswerItem is an item offered in response to a request.
type AnswerItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	RequestorID string       `json:"requestorId"`
	Created     string       `json:"created"`
	Items       []AnswerItem `json:"items"`
}

func (r *ItemRequestResponse) FromModel(m model.ItemRequest, answers []itemModel.Item) {
	r.ID = m.ID
	r.Description = m.Description
	r.RequestorID = m.RequestorID
	r.Created = gDto.FormatTime(m.CreatedAt)

	r.Items = make([]AnswerItem, len(answers))
	for i, item := range answers {
		r.Items[i] = AnswerItem{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID}
	}
}

// FromModels pairs every request with the items answering it, keyed by request id.
func FromModels(models []model.ItemRequest, answers map[string][]itemModel.Item) []ItemRequestResponse {
	res := make([]ItemRequestResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m, answers[m.ID])
	}

	return res
}
