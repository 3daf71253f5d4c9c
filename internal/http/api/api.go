package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/playhouse/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// APIError is rendered as {"success":0,"message":Summary,"error":Message}.
type APIError struct {
	Code    int
	Message string
	// Summary is an optional context line, e.g. "Error while Register".
	Summary string
}

func (e *APIError) Error() string { return e.Message }

// Envelope is the response body shared by every endpoint.
type Envelope struct {
	Success int    `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Reply lets a handler choose a status other than 200.
type Reply struct {
	Code int
	Body any
}

// OK wraps data in a success envelope.
func OK(message string, data any) Envelope {
	return Envelope{Success: 1, Message: message, Data: data}
}

// Created wraps data in a success envelope sent with 201.
func Created(message string, data any) Reply {
	return Reply{Code: http.StatusCreated, Body: OK(message, data)}
}

func Fail(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// Internal reports an upstream failure with its raw detail; this is an
// internal admin tool.
func Internal(summary string, err error) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Summary: summary, Message: err.Error()}
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, Envelope{Error: "Unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		render(ctx, result, apiErr)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		render(ctx, result, apiErr)
	}
}

func render(ctx *gin.Context, result any, apiErr *APIError) {
	if apiErr != nil {
		if apiErr.Code >= http.StatusInternalServerError {
			_ = ctx.Error(apiErr)
		}
		ctx.JSON(apiErr.Code, Envelope{Message: apiErr.Summary, Error: apiErr.Message})
		return
	}

	if r, ok := result.(Reply); ok {
		ctx.JSON(r.Code, r.Body)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
