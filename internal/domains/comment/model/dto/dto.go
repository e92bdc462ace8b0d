package dto

import (
	"shareit/internal/domains/comment/model"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Text string `json:"text" msg:"errors.400.comments.bad_content" validate:"required,notblank,max=2000"`
}

func (r *CreateCommentRequest) ToModel(itemID, authorID, authorName string, now time.Time) model.Comment {
	return model.Comment{
		ID:         uuid.NewString(),
		Text:       r.Text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Metadata:   gModel.NewMetadata(authorID, now),
	}
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	ItemID     string `json:"itemId"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(m model.Comment) {
	r.ID = m.ID
	r.Text = m.Text
	r.AuthorName = m.AuthorName
	r.ItemID = m.ItemID
	r.Created = gDto.FormatTime(m.CreatedAt)
}

func FromModels(models []model.Comment) []CommentResponse {
	res := make([]CommentResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
