package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"usertodo/infras/otel"
	"usertodo/infras/postgres"
	"usertodo/internal/domains/todo/model"
	gDto "usertodo/shared/dto"
	gRepo "usertodo/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, values map[string]any) (model.Todo, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Todo, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
