package log

import "context"

type requestIDKey struct{}

// SetRequestIDToContext stores the request id that every log line written with ctx will carry.
func SetRequestIDToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request id stored in ctx. Second return is false if not set or empty.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
