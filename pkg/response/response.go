// Package response writes the JSON envelope every API route answers with.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is where the request-id middleware leaves the id.
const RequestIDKey = "request_id"

type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data,omitempty"`
	Meta      any       `json:"meta,omitempty"`
	Error     any       `json:"error,omitempty"`
}

// ListMeta accompanies filtered list results.
type ListMeta struct {
	Count int `json:"count"`
}

func write[T any](ctx *gin.Context, body APIResponse[T]) {
	body.Timestamp = time.Now().UTC()
	body.RequestID = ctx.GetString(RequestIDKey)
	ctx.JSON(body.Status, body)
}

// Success answers with data; status 0 means 200.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta any) {
	if status == 0 {
		status = http.StatusOK
	}
	write(ctx, APIResponse[T]{Status: status, Success: true, Message: message, Data: data, Meta: meta})
}

// List answers 200 with items and their count.
func List[T any](ctx *gin.Context, items []T, message string) {
	Success(ctx, http.StatusOK, items, message, ListMeta{Count: len(items)})
}

// Error answers with a failure; details (per-field messages, a reason) go
// in the error field. Status 0 means 400.
func Error[T any](ctx *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	write(ctx, APIResponse[T]{Status: status, Message: message, Error: details})
}
