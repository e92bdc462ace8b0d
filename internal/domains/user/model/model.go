package model

import "shareit/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

const (
	MessageNotFound      = "errors.404.users"
	MessageEmailTaken    = "errors.409.users.email"
	MessageInvalidEmail  = "errors.400.users.email"
	MessageInvalidName   = "errors.400.users.name"
	MessageMissingHeader = "errors.400.users.header"
)

type User struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	model.Metadata
}
