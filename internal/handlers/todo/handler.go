package todo

import (
	"net/http"
	"usertodo/infras/otel"
	"usertodo/internal/domains/todo/model"
	"usertodo/internal/domains/todo/model/dto"
	"usertodo/internal/domains/todo/service"
	"usertodo/shared"
	"usertodo/shared/constant"
	gDto "usertodo/shared/dto"
	"usertodo/shared/validator"
	"usertodo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Insert a todo. completed defaults to false; an unknown user_id surfaces as 500.
// @Tags Todo
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} response.Body{data=dto.TodoResponse} "Todo created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.DecodeRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithData(writer, http.StatusCreated, "Todo created successfully", todo)
}

// GetTodos retrieves todo items.
// @Summary Get all todo items
// @Description Every todo, optionally narrowed by owner and completion status.
// @Tags Todo
// @Produce json
// @Param user_id query string false "Filter by owner"
// @Param completed query boolean false "Filter by completion status"
// @Success 200 {object} response.Body{data=[]dto.TodoResponse} "Todos retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if userID := query.Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if completed := shared.ConvertStringToBool(query.Get(model.FieldCompleted)); completed != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompleted,
			Operator: gDto.FilterOperatorEq,
			Value:    *completed,
			Table:    model.TableName,
		})
	}

	todos, err := handler.service.GetAll(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "Todos retrieved successfully", todos)
}
