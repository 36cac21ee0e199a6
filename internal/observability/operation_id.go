package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// OperationIDKey carries the ID of the current unit of work: one menu
// operation in the shell, or one request on the diagnostics listener.
const OperationIDKey contextKey = "operation_id"

func NewOperationID() string {
	return uuid.New().String()
}

func ContextWithOperationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, OperationIDKey, id)
}

func OperationIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(OperationIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
