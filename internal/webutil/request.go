package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go_golf_stat_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_BODY", "request body is required", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_BODY", fmt.Sprintf("malformed JSON body: %v", err), "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate decodes the body into dst and runs struct validation on it.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// ValidateStruct validates s with the shared Validator.
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationErrorResponse(verrs)
	}
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
}

// URLParamUUID parses the named chi URL parameter as a UUID.
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", fmt.Sprintf("%s must be a UUID", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// URLParamInt parses the named chi URL parameter as an integer.
func URLParamInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_PARAM", fmt.Sprintf("%s must be an integer", name), name, model.ErrInvalidInput)
	}
	return n, nil
}

// QueryInt reads an optional integer query parameter, returning def when it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_PARAM", fmt.Sprintf("%s must be an integer", name), name, model.ErrInvalidInput)
	}
	return n, nil
}
