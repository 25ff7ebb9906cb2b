package router

import (
	"net/http"
	"usertodo/internal/handlers/todo"
	"usertodo/internal/handlers/user"
	"usertodo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User user.Handler
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	// an unregistered method on a known path is still an unknown route
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

func routeNotFound(writer http.ResponseWriter, request *http.Request) {
	response.WithRouteNotFound(writer, request.URL.Path)
}
