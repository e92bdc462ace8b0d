package dto_test

import (
	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	gModel "shareit/shared/model"
	"shareit/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemRequestRequest(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	req := dto.CreateItemRequestRequest{Description: "need a ladder"}
	require.NoError(t, validator.ValidateStruct(&req))

	m := req.ToModel("u-1", now)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "u-1", m.RequestorID)
	assert.Equal(t, now, m.CreatedAt)

	blank := dto.CreateItemRequestRequest{Description: " "}
	err := validator.ValidateStruct(&blank)
	require.Error(t, err)
	assert.Equal(t, model.MessageMissingDescription, err.Error())
}

func TestFromModels(t *testing.T) {
	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	requests := []model.ItemRequest{
		{ID: "r-1", Description: "ladder", RequestorID: "u-1", Metadata: gModel.Metadata{CreatedAt: created}},
		{ID: "r-2", Description: "drill", RequestorID: "u-1", Metadata: gModel.Metadata{CreatedAt: created}},
	}
	answers := map[string][]itemModel.Item{
		"r-1": {{ID: "i-1", Name: "Ladder", OwnerID: "u-2"}},
	}

	res := dto.FromModels(requests, answers)

	require.Len(t, res, 2)
	assert.Equal(t, "2025-06-15T12:00:00Z", res[0].Created)
	assert.Equal(t, []dto.AnswerItem{{ID: "i-1", Name: "Ladder", OwnerID: "u-2"}}, res[0].Items)
	assert.NotNil(t, res[1].Items)
	assert.Empty(t, res[1].Items)
}
