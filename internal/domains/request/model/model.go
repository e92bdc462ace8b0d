package model

import "shareit/shared/model"

const (
	TableName  = "item_requests"
	EntityName = "item_request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequestorID = "requestor_id"
)

const (
	MessageNotFound           = "errors.404.requests"
	MessageMissingDescription = "errors.400.requests.description"
)

// CacheKeyGet prefixes cached single-request views. Items answering a request invalidate it.
const CacheKeyGet = "request:get"

// ItemRequest asks other users for an item nobody lends yet.
type ItemRequest struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	RequestorID string `db:"requestor_id"`
	model.Metadata
}
