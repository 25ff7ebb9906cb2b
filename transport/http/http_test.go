package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"usertodo/config"
	"usertodo/infras/otel/mocks"
	todoMocks "usertodo/internal/domains/todo/mocks"
	userMocks "usertodo/internal/domains/user/mocks"
	"usertodo/internal/handlers/todo"
	"usertodo/internal/handlers/user"
	"usertodo/shared/cache"
	"usertodo/shared/constant"
	"usertodo/transport/http/middleware"
	"usertodo/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func newTestServer(t *testing.T, db Pinger) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Port = "0"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Env = constant.ServerEnvDevelopment

	redisCache := cache.NewRedisCache(nil, ot)

	r := router.New(router.DomainHandlers{
		User: user.New(userMocks.NewMockUserService(ctrl), ot),
		Todo: todo.New(todoMocks.NewMockTodoService(ctrl), ot),
	})

	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: middleware.NewAppMiddleware(ot, cfg, redisCache),
		DB:         db,
		Cache:      redisCache,
	}
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func TestHTTP_Root(t *testing.T) {
	server := newTestServer(t, fakePinger{})
	handler := server.Handler()

	recorder := get(handler, "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"message":"Hello World!","data":null}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))

	server.state.Store(int32(ServerStateInGracePeriod))

	recorder = get(handler, "/")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestHTTP_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		recorder := get(newTestServer(t, fakePinger{}).Handler(), "/health")

		assert.Equal(t, http.StatusOK, recorder.Code)

		body := struct {
			Data map[string]string `json:"data"`
		}{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "up", body.Data["database"])
		assert.Equal(t, "disabled", body.Data["cache"])
	})

	t.Run("database down", func(t *testing.T) {
		recorder := get(newTestServer(t, fakePinger{err: errors.New("connection refused")}).Handler(), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestHTTP_OperationalRoutes(t *testing.T) {
	handler := newTestServer(t, fakePinger{}).Handler()

	assert.Equal(t, http.StatusOK, get(handler, "/metrics").Code)

	recorder := get(handler, "/nonexistent")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found","path":"/nonexistent"}`, recorder.Body.String())
}

func TestHTTP_ServeStopsOnCancel(t *testing.T) {
	server := newTestServer(t, fakePinger{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
