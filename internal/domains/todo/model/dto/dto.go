package dto

import (
	"usertodo/internal/domains/todo/model"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
)

// CreateTodoRequest is written as received. PostgreSQL casts or rejects every field.
type CreateTodoRequest struct {
	UserID      *gDto.Scalar `json:"user_id"     swaggertype:"integer"`
	Title       *gDto.Scalar `json:"title"       swaggertype:"string"`
	Description *gDto.Scalar `json:"description" swaggertype:"string"`
	Completed   *gDto.Scalar `json:"completed"   swaggertype:"boolean"`
	DueDate     *gDto.Scalar `json:"due_date"    swaggertype:"string"`
}

func (r *CreateTodoRequest) ToValues() map[string]any {
	values := map[string]any{
		model.FieldUserID:      r.UserID,
		model.FieldTitle:       r.Title,
		model.FieldDescription: r.Description,
		model.FieldDueDate:     r.DueDate,
	}

	// completed keeps its column default unless sent.
	if r.Completed != nil {
		values[model.FieldCompleted] = r.Completed
	}

	return values
}

type TodoResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"due_date"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.DueDate = nil

	if model.DueDate != nil {
		dueDate := model.DueDate.Format(constant.DayDateFormat)
		r.DueDate = &dueDate
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
