package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"presence-api/translation"
)

// IError is a single field-level validation failure.
type IError struct {
	Field   string
	Tag     string
	Value   string
	Message string
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// GetErrors flattens validator errors into translated per-field messages.
func GetErrors(err error) []*IError {
	var errors []*IError
	for _, err := range err.(validator.ValidationErrors) {
		var el IError
		el.Field = err.Field()
		el.Tag = err.Tag()
		el.Value = err.Param()
		el.Message = err.Translate(translation.Trans)

		errors = append(errors, &el)
	}

	return errors
}

// GetParseErrors maps a JSON type mismatch onto the same per-field shape as
// validator errors. Returns nil when the decoder reports no field path.
func GetParseErrors(err error) []*IError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []*IError{{
			Field:   typeErr.Field,
			Tag:     "type",
			Message: fmt.Sprintf("%s should be of type %s", typeErr.Field, typeErr.Type),
		}}
	}

	return nil
}
