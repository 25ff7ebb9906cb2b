package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"usertodo/infras/otel"
	"usertodo/internal/domains/todo/model/dto"
	"usertodo/internal/domains/todo/repository"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
	"usertodo/shared/failure"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]dto.TodoResponse, error)
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Insert(ctx, req.ToValues())
	if err != nil {
		sqlState := failure.PqCode(err)

		event := log.Error()
		if sqlState == constant.PqErrorCodeFkViolation {
			event = log.Warn()
		}

		event.Err(err).Str("sqlstate", sqlState).Msg("failed to create todo")

		return res, failure.Database(err)
	}

	res.FromModel(todo)
	log.Info().Interface("row", res).Msg("Todo created")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, failure.Database(err)
	}

	res = dto.FromModels(todos)
	log.Info().Interface("rows", res).Msg("Todos retrieved")

	return res, nil
}
