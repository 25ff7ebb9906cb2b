package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"usertodo/infras/otel"
	"usertodo/internal/domains/user/model"
	"usertodo/internal/domains/user/model/dto"
	"usertodo/internal/domains/user/repository"
	"usertodo/shared"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
	"usertodo/shared/failure"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const messageUserNotFound = "User not found"

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Insert(ctx, req.ToValues())
	if err != nil {
		writeErrorEvent(err).Msg("failed to create user")

		return res, failure.Database(err)
	}

	res.FromModel(user)
	log.Info().Interface("row", res).Msg("User created")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.repo.GetAll(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, failure.Database(err)
	}

	res = dto.FromModels(users)
	log.Info().Interface("rows", res).Msg("Users retrieved")

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return res, failure.Database(err)
	}

	if user.ID == 0 {
		return res, failure.NotFound(messageUserNotFound) // nolint:wrapcheck
	}

	res.FromModel(user)
	log.Info().Interface("row", res).Msg("User fetched")

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Update(ctx, req.ToValues(), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		writeErrorEvent(err).Str("id", id).Msg("failed to update user")

		return res, failure.Database(err)
	}

	if user.ID == 0 {
		return res, failure.NotFound(messageUserNotFound) // nolint:wrapcheck
	}

	res.FromModel(user)
	log.Info().Interface("row", res).Msg("User updated")

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete user")

		return failure.Database(err)
	}

	if deleted == 0 {
		return failure.NotFound(messageUserNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Int64("rows", deleted).Msg("User deleted")

	return nil
}

// writeErrorEvent logs a rejected duplicate email as a warning; it is still reported as a
// database error.
func writeErrorEvent(err error) *zerolog.Event {
	sqlState := failure.PqCode(err)

	event := log.Error()
	if sqlState == constant.PqErrorCodeUniqueViolation {
		event = log.Warn()
	}

	return event.Err(err).Str("sqlstate", sqlState)
}
