package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeAppError      = "APP_ERROR"
	CodeAPIError      = "API_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeCategoryFetch = "CATEGORY_FETCH_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// APIError reports a transport failure or a non-2xx response from PokeAPI.
type APIError struct {
	*AppError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

func (e *APIError) WithCause(cause error) *APIError {
	e.Cause = cause
	return e
}

// NotFoundError is returned when a single Pokémon lookup fails for any reason.
type NotFoundError struct {
	*APIError
	Query string
}

func NewNotFoundError(query string, statusCode int, cause error) *NotFoundError {
	return &NotFoundError{
		APIError: &APIError{
			AppError: &AppError{
				Message:    fmt.Sprintf("pokemon %q not found", query),
				Code:       CodeNotFound,
				StatusCode: statusCode,
				Context: map[string]any{
					"query": query,
				},
				Cause: cause,
			},
		},
		Query: query,
	}
}

// CategoryFetchError is returned when a type membership listing cannot be loaded.
type CategoryFetchError struct {
	*APIError
	Category string
}

func NewCategoryFetchError(category string, statusCode int, cause error) *CategoryFetchError {
	return &CategoryFetchError{
		APIError: &APIError{
			AppError: &AppError{
				Message:    fmt.Sprintf("type %q listing failed", category),
				Code:       CodeCategoryFetch,
				StatusCode: statusCode,
				Context: map[string]any{
					"type": category,
				},
				Cause: cause,
			},
		},
		Category: category,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// Status returns the HTTP status associated with the error.
func (e *AppError) Status() int {
	return e.StatusCode
}

// StatusCodeOf returns the HTTP status carried by err, or 0 when err is not typed.
func StatusCodeOf(err error) int {
	var coded interface{ Status() int }
	if stderrors.As(err, &coded) {
		return coded.Status()
	}
	return 0
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

func IsCategoryFetch(err error) bool {
	var target *CategoryFetchError
	return stderrors.As(err, &target)
}
