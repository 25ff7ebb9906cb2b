package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"usertodo/shared/constant"
	"usertodo/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// DecodeRequest reads a JSON or urlencoded form body into data. Form fields arrive as
// strings, the same as a JSON body that quotes every value.
func DecodeRequest[T any](r *http.Request, data *T) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))
	if mediaType != constant.ContentTypeForm {
		return Decode(r.Body, data)
	}

	if err := r.ParseForm(); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to parse form body: %w", err)) //nolint:wrapcheck
	}

	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return failure.InternalError(err) //nolint:wrapcheck
	}

	return Decode(bytes.NewReader(encoded), data)
}

// Decode reads a JSON body into data. An empty body leaves data untouched; a body that
// is not a JSON document shaped like data is a bad request.
func Decode[T any](r io.Reader, data *T) error {
	if r == nil {
		return nil
	}

	err := json.NewDecoder(r).Decode(data)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct runs the `validate` tags of data and reports the first violation.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
