package dto

import (
	"usertodo/internal/domains/user/model"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
	"usertodo/shared/repository"
)

// CreateUserRequest carries no validation: fields are bound as sent, absent ones as NULL,
// and PostgreSQL enforces types and constraints.
type CreateUserRequest struct {
	Name    *gDto.Scalar `json:"name"    swaggertype:"string"`
	Email   *gDto.Scalar `json:"email"   swaggertype:"string"`
	Age     *gDto.Scalar `json:"age"     swaggertype:"integer"`
	Phone   *gDto.Scalar `json:"phone"   swaggertype:"string"`
	Address *gDto.Scalar `json:"address" swaggertype:"string"`
}

func (r *CreateUserRequest) ToValues() map[string]any {
	return map[string]any{
		model.FieldName:    r.Name,
		model.FieldEmail:   r.Email,
		model.FieldAge:     r.Age,
		model.FieldPhone:   r.Phone,
		model.FieldAddress: r.Address,
	}
}

// UpdateUserRequest overwrites every column, so omitted fields become NULL.
type UpdateUserRequest struct {
	Name    *gDto.Scalar `json:"name"    swaggertype:"string"`
	Email   *gDto.Scalar `json:"email"   swaggertype:"string"`
	Age     *gDto.Scalar `json:"age"     swaggertype:"integer"`
	Phone   *gDto.Scalar `json:"phone"   swaggertype:"string"`
	Address *gDto.Scalar `json:"address" swaggertype:"string"`
}

func (r *UpdateUserRequest) ToValues() map[string]any {
	return map[string]any{
		model.FieldName:         r.Name,
		model.FieldEmail:        r.Email,
		model.FieldAge:          r.Age,
		model.FieldPhone:        r.Phone,
		model.FieldAddress:      r.Address,
		constant.FieldUpdatedAt: repository.Expr("NOW()"),
	}
}

type UserResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Age     *int64  `json:"age"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Age = model.Age
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
