package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"usertodo/shared/constant"
	"usertodo/shared/dto"
	"usertodo/shared/failure"
	"usertodo/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name *dto.Scalar `json:"name"`
	Age  *dto.Scalar `json:"age"`
}

type settings struct {
	Port   string `validate:"required,numeric"`
	Env    string `validate:"oneof=development production"`
	Limits struct {
		Enable bool
		Max    int `validate:"required_if=Enable true"`
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantName any
		wantAge  any
	}{
		{name: "valid body", body: `{"name":"Ada","age":36}`, wantName: "Ada", wantAge: "36"},
		{name: "empty body", body: ``},
		{name: "malformed json", body: `{"name":`, wantErr: true},
		{name: "not an object", body: `["Ada"]`, wantErr: true},
		{name: "string age is left to the database", body: `{"age":"old"}`, wantAge: "old"},
		{name: "number name is left to the database", body: `{"name":42}`, wantName: "42"},
		{name: "unknown fields ignored", body: `{"name":"Ada","role":"admin"}`, wantName: "Ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := payload{}

			err := validator.Decode(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assertBound(t, tt.wantName, data.Name)
			assertBound(t, tt.wantAge, data.Age)
		})
	}
}

func assertBound(t *testing.T, want any, got *dto.Scalar) {
	t.Helper()

	if want == nil {
		assert.Nil(t, got)

		return
	}

	require.NotNil(t, got)

	value, err := got.Value()
	require.NoError(t, err)
	assert.Equal(t, want, value)
}

func TestDecodeRequest(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ada","age":36}`))
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		data := payload{}
		require.NoError(t, validator.DecodeRequest(request, &data))

		assertBound(t, "Ada", data.Name)
		assertBound(t, "36", data.Age)
	})

	t.Run("form body", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("name=Ada+Lovelace&age=36"))
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeForm+"; charset=utf-8")

		data := payload{}
		require.NoError(t, validator.DecodeRequest(request, &data))

		assertBound(t, "Ada Lovelace", data.Name)
		assertBound(t, "36", data.Age)
	})

	t.Run("form body without fields", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(""))
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeForm)

		data := payload{}
		require.NoError(t, validator.DecodeRequest(request, &data))

		assert.Nil(t, data.Name)
		assert.Nil(t, data.Age)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name"`))

		err := validator.DecodeRequest(request, &payload{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDecode_NilReader(t *testing.T) {
	data := payload{}

	assert.NoError(t, validator.Decode(nil, &data))
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    settings
		wantMsg string
	}{
		{
			name: "valid",
			data: settings{Port: "3000", Env: "production"},
		},
		{
			name:    "missing port",
			data:    settings{Env: "production"},
			wantMsg: "settings.Port is required",
		},
		{
			name:    "non numeric port",
			data:    settings{Port: "http", Env: "production"},
			wantMsg: "settings.Port must be numeric",
		},
		{
			name:    "unknown env",
			data:    settings{Port: "3000", Env: "staging"},
			wantMsg: "settings.Env must be one of development production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	limited := settings{Port: "3000", Env: "production"}
	limited.Limits.Enable = true

	err := validator.ValidateStruct(&limited)
	require.Error(t, err)
	assert.Equal(t, "settings.Limits.Max is required when Enable true", err.Error())
}
