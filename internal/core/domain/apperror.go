package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Category is the externally visible class of a failure. The vocabulary
// mirrors standard HTTP status names; anything unrecognized collapses to
// INTERNAL_SERVER_ERROR.
type Category string

const (
	CategoryOK              Category = "OK"
	CategoryCreated         Category = "CREATED"
	CategoryBadRequest      Category = "BAD_REQUEST"
	CategoryUnauthorized    Category = "UNAUTHORIZED"
	CategoryForbidden       Category = "FORBIDDEN"
	CategoryNotFound        Category = "NOT_FOUND"
	CategoryConflict        Category = "CONFLICT"
	CategoryTooManyRequests Category = "TOO_MANY_REQUESTS"
	CategoryInternal        Category = "INTERNAL_SERVER_ERROR"
)

var categoryStatus = map[Category]int{
	CategoryOK:              http.StatusOK,
	CategoryCreated:         http.StatusCreated,
	CategoryBadRequest:      http.StatusBadRequest,
	CategoryUnauthorized:    http.StatusUnauthorized,
	CategoryForbidden:       http.StatusForbidden,
	CategoryNotFound:        http.StatusNotFound,
	CategoryConflict:        http.StatusConflict,
	CategoryTooManyRequests: http.StatusTooManyRequests,
	CategoryInternal:        http.StatusInternalServerError,
}

// HTTPStatus maps the category to its transport status code. Unknown
// categories are treated as internal errors.
func (c Category) HTTPStatus() int {
	if code, ok := categoryStatus[c]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// AppError is a classified failure crossing a component boundary. The
// category stays a typed field for its whole lifetime; the "CATEGORY ::
// detail" wire form is only ever produced by Error(), never re-parsed to
// recover the category once constructed.
type AppError struct {
	Category Category
	Detail   string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s :: %s", e.Category, e.Detail)
}

// NewAppError builds a classified error; unknown categories degrade to
// INTERNAL_SERVER_ERROR rather than propagating an unmapped tag.
func NewAppError(category Category, detail string) *AppError {
	if _, ok := categoryStatus[category]; !ok {
		category = CategoryInternal
	}
	return &AppError{Category: category, Detail: detail}
}

func BadRequest(detail string) *AppError      { return NewAppError(CategoryBadRequest, detail) }
func Unauthorized(detail string) *AppError    { return NewAppError(CategoryUnauthorized, detail) }
func NotFound(detail string) *AppError        { return NewAppError(CategoryNotFound, detail) }
func Internal(detail string) *AppError        { return NewAppError(CategoryInternal, detail) }
func TooManyRequests(detail string) *AppError { return NewAppError(CategoryTooManyRequests, detail) }

// Classify turns a raw failure message from an external collaborator into a
// classified error. Messages of the form "CATEGORY :: detail" with a known
// category keep that category; everything else (unknown tag, blank message)
// becomes INTERNAL_SERVER_ERROR.
func Classify(raw string) *AppError {
	if strings.TrimSpace(raw) == "" {
		return Internal("empty error message")
	}

	left, right, found := strings.Cut(raw, "::")
	if !found {
		return Internal(strings.TrimSpace(raw))
	}

	category := Category(strings.TrimSpace(left))
	detail := strings.TrimSpace(right)
	if _, ok := categoryStatus[category]; !ok {
		return Internal(strings.TrimSpace(raw))
	}
	return &AppError{Category: category, Detail: detail}
}

// CategoryOf walks the error chain for an AppError and reports its category,
// falling back to INTERNAL_SERVER_ERROR for anything unclassified.
func CategoryOf(err error) Category {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Category
	}
	return CategoryInternal
}
