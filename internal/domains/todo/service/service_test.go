package service_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"usertodo/infras/otel/mocks"
	todoMocks "usertodo/internal/domains/todo/mocks"
	"usertodo/internal/domains/todo/model"
	"usertodo/internal/domains/todo/model/dto"
	"usertodo/internal/domains/todo/service"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
	"usertodo/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.CreateTodoRequest{UserID: gDto.NewScalar(1), Title: gDto.NewScalar("Buy milk")}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), req.ToValues()).
					Return(model.Todo{ID: 1, UserID: ptr(int64(1)), Title: ptr("Buy milk"), Completed: ptr(false)}, nil)
			},
		},
		{
			name: "unknown user violates foreign key",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, &pq.Error{
						Code:    constant.PqErrorCodeFkViolation,
						Message: `insert or update on table "todos" violates foreign key constraint "todos_user_id_fkey"`,
					})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
				assert.Contains(t, err.Error(), "foreign key constraint")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "Buy milk", *res.Title)
			assert.False(t, *res.Completed)
		})
	}
}

func TestTodoService_CreateUnknownUserLogsWarning(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(model.Todo{}, &pq.Error{Code: constant.PqErrorCodeFkViolation, Message: "violates foreign key constraint"})

	_, err := svc.Create(context.Background(), dto.CreateTodoRequest{UserID: gDto.NewScalar("999")})
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"sqlstate":"23503"`)
}

func TestTodoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: "1", Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	t.Run("passes the filter through", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), filter).
			Return([]model.Todo{{ID: 1, UserID: ptr(int64(1))}, {ID: 2, UserID: ptr(int64(1))}}, nil)

		res, err := svc.GetAll(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			Return(nil, &pq.Error{Code: "42P01", Message: `relation "todos" does not exist`})

		res, err := svc.GetAll(context.Background(), gDto.FilterGroup{})

		require.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, `relation "todos" does not exist`, err.Error())
	})
}
