package dto_test

import (
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"
	"usertodo/shared/constant"
	"usertodo/shared/dto"
	"usertodo/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsedCreated.Equal(createdAt))

	parsedUpdated, err := time.Parse(constant.DateFormat, metadata.UpdatedAt)
	assert.NoError(t, err)
	assert.True(t, parsedUpdated.Equal(updatedAt))
}

func TestMetadata_FromModelKeepsStoredClock(t *testing.T) {
	stored := time.Date(2025, 6, 1, 23, 45, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: stored, UpdatedAt: stored})

	assert.Contains(t, metadata.CreatedAt, "2025-06-01T23:45:00")
	assert.Contains(t, metadata.UpdatedAt, "2025-06-01T23:45:00")
}

func TestScalar_Value(t *testing.T) {
	tests := []struct {
		name string
		body string
		want driver.Value
	}{
		{name: "string is unquoted", body: `"Ada"`, want: "Ada"},
		{name: "escaped string", body: `"say \"hi\""`, want: `say "hi"`},
		{name: "numeric string", body: `"36"`, want: "36"},
		{name: "number keeps its text", body: `36`, want: "36"},
		{name: "fraction keeps its text", body: `36.5`, want: "36.5"},
		{name: "boolean keeps its text", body: `true`, want: "true"},
		{name: "null", body: `null`, want: nil},
		{name: "object is passed as json", body: `{"a":1}`, want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar := dto.Scalar{}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &scalar))

			value, err := scalar.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestScalar_Pointer(t *testing.T) {
	type request struct {
		Age *dto.Scalar `json:"age"`
	}

	t.Run("absent and null stay nil", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"age":null}`} {
			req := request{}
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			assert.Nil(t, req.Age)
		}
	})

	t.Run("matches a constructed value", func(t *testing.T) {
		req := request{}
		require.NoError(t, json.Unmarshal([]byte(`{"age":"36"}`), &req))
		assert.Equal(t, dto.NewScalar("36"), req.Age)
	})

	t.Run("marshals back as sent", func(t *testing.T) {
		encoded, err := json.Marshal(request{Age: dto.NewScalar(36)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"age":36}`, string(encoded))
	})

	t.Run("nil pointer binds as NULL", func(t *testing.T) {
		var age *dto.Scalar

		value, err := driver.DefaultParameterConverter.ConvertValue(age)
		require.NoError(t, err)
		assert.Nil(t, value)
	})
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "id", Value: "7", Operator: dto.FilterOperatorEq, Table: "users"},
			wantWhere: "users.id = :filter_id",
			wantArgs:  map[string]any{"filter_id": "7"},
		},
		{
			name:      "equality with explicit arg name",
			filter:    dto.Filter{ArgName: "owner", Field: "user_id", Value: int64(3), Operator: dto.FilterOperatorEq},
			wantWhere: "user_id = :owner",
			wantArgs:  map[string]any{"owner": int64(3)},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "title", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "user_id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "todos"},
			dto.Filter{Field: "completed", Value: true, Operator: dto.FilterOperatorEq, Table: "todos"},
			dto.Filter{Field: "ignored", Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(todos.user_id = :filter_user_id AND todos.completed = :filter_completed)", where)
	assert.Equal(t, map[string]any{"filter_user_id": int64(1), "filter_completed": true}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
