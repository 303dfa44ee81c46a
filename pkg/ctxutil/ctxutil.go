package ctxutil

import "context"

type ctxKey string

const (
	actorIDKey   ctxKey = "actor_id"
	actorRoleKey ctxKey = "actor_role"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor id and the role claimed by its
// token in the context.
func WithActor(ctx context.Context, actorID, role string) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, actorID)
	return context.WithValue(ctx, actorRoleKey, role)
}

// ActorIDFromCtx extracts the actor ID from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func ActorIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ActorRoleFromCtx extracts the token role. Returns "" if absent.
func ActorRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(actorRoleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
