package model

import "shareit/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID       = "id"
	FieldText     = "text"
	FieldItemID   = "item_id"
	FieldAuthorID = "author_id"
)

const (
	MessageNotAllowed = "errors.400.comments.not_allowed"
	MessageBadContent = "errors.400.comments.bad_content"
)

// Comment is feedback left on an item by someone who has finished booking it.
type Comment struct {
	ID         string `db:"id"`
	Text       string `db:"text"`
	ItemID     string `db:"item_id"`
	AuthorID   string `db:"author_id"`
	AuthorName string `column:"name" db:"author_name" table:"users"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.author_id"
}
