package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"usertodo/config"
	"usertodo/infras/otel/mocks"
	cacheMocks "usertodo/shared/cache/mocks"
	"usertodo/shared/constant"
	"usertodo/transport/http/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func TestRequestID(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generates an id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		generated := recorder.Header().Get(constant.RequestHeaderRequestID)
		_, err := uuid.Parse(generated)

		assert.NoError(t, err)
		assert.Equal(t, generated, seen)
	})

	t.Run("keeps the incoming id", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "abc-123", recorder.Header().Get(constant.RequestHeaderRequestID))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestRequestLogAndTracing(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	handler := mw.RequestLog(mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestCORS(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		mw, _ := newMiddleware(t, &config.Config{})

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Origin", "https://example.com")

		recorder := httptest.NewRecorder()
		mw.CORS()(okHandler()).ServeHTTP(recorder, request)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled allows configured origin", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
		cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

		mw, _ := newMiddleware(t, cfg)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Origin", "https://example.com")

		recorder := httptest.NewRecorder()
		mw.CORS()(okHandler()).ServeHTTP(recorder, request)

		assert.Equal(t, "https://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name       string
		cfg        *config.Config
		setupMock  func(mockCache *cacheMocks.MockRedisCache)
		wantCode   int
		wantRemain string
	}{
		{
			name:     "disabled",
			cfg:      &config.Config{},
			wantCode: http.StatusOK,
		},
		{
			name: "no redis configured",
			cfg:  cfg,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Enabled().Return(false)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "under the limit",
			cfg:  cfg,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Enabled().Return(true)
				mockCache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).Return(int64(1), nil)
			},
			wantCode:   http.StatusOK,
			wantRemain: "1",
		},
		{
			name: "over the limit",
			cfg:  cfg,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Enabled().Return(true)
				mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode:   http.StatusTooManyRequests,
			wantRemain: "0",
		},
		{
			name: "cache failure fails open",
			cfg:  cfg,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Enabled().Return(true)
				mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, mockCache := newMiddleware(t, tt.cfg)
			if tt.setupMock != nil {
				tt.setupMock(mockCache)
			}

			request := httptest.NewRequest(http.MethodGet, "/users", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			recorder := httptest.NewRecorder()
			mw.RateLimit()(okHandler()).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemain, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
