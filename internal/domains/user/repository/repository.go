package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"usertodo/infras/otel"
	"usertodo/infras/postgres"
	"usertodo/internal/domains/user/model"
	gDto "usertodo/shared/dto"
	gRepo "usertodo/shared/repository"
)

type User interface {
	Insert(ctx context.Context, values map[string]any) (model.User, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.User, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.User, error)
	Update(ctx context.Context, values map[string]any, filter gDto.FilterGroup) (model.User, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
