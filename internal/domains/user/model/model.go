package model

import "usertodo/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldAge     = "age"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

type User struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Age     *int64  `db:"age"`
	Phone   *string `db:"phone"`
	Address *string `db:"address"`
	model.Metadata
}
