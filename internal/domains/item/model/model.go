package model

import "shareit/shared/model"

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldOwnerID     = "owner_id"
	FieldRequestID   = "request_id"
)

const (
	MessageNotFound           = "errors.404.items"
	MessageForbidden          = "errors.403.items"
	MessageInvalidName        = "errors.400.items.name"
	MessageMissingDescription = "errors.400.items.description.null"
	MessageDescriptionTooLong = "errors.400.items.description.too_long"
	MessageMissingAvailable   = "errors.400.items.available.null"

	MaxDescriptionLength = 512
)

// Item is a thing an owner lends out. RequestID links it to the request it answers.
type Item struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Available   bool    `db:"available"`
	OwnerID     string  `db:"owner_id"`
	RequestID   *string `db:"request_id"`
	model.Metadata
}
