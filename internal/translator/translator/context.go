package translator

import "context"

// Request-scoped metadata threaded through translation calls. Keeping the
// conversation identifier explicit (instead of a process-global value) is what
// prevents thought signatures from one conversation being attached to another
// when requests run concurrently.

type conversationIDKey struct{}

type projectIDKey struct{}

// WithConversationID returns a context carrying the conversation identifier
// used to key signature lookups.
func WithConversationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, conversationIDKey{}, id)
}

// ConversationID extracts the conversation identifier, or "" when none is set.
func ConversationID(ctx context.Context) string {
	if v, ok := ctx.Value(conversationIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithProjectID returns a context carrying the Google Cloud project identifier
// stamped on the outgoing envelope.
func WithProjectID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, projectIDKey{}, id)
}

// ProjectID extracts the project identifier, or "" when none is set.
func ProjectID(ctx context.Context) string {
	if v, ok := ctx.Value(projectIDKey{}).(string); ok {
		return v
	}
	return ""
}
