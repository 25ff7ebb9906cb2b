//go:build wireinject
// +build wireinject

package di

import (
	"usertodo/config"
	"usertodo/infras/otel"
	"usertodo/infras/postgres"
	"usertodo/infras/redis"
	todoRepository "usertodo/internal/domains/todo/repository"
	todoService "usertodo/internal/domains/todo/service"
	userRepository "usertodo/internal/domains/user/repository"
	userService "usertodo/internal/domains/user/service"
	todoHandler "usertodo/internal/handlers/todo"
	userHandler "usertodo/internal/handlers/user"
	"usertodo/shared/cache"
	"usertodo/transport/http"
	"usertodo/transport/http/middleware"
	"usertodo/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	userDomain,
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
