package model

import (
	"time"
	"usertodo/shared/model"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldDueDate     = "due_date"
)

type Todo struct {
	ID          int64      `db:"id"`
	UserID      *int64     `db:"user_id"`
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	Completed   *bool      `db:"completed"`
	DueDate     *time.Time `db:"due_date"`
	model.Metadata
}
