package services

import "context"

// Session is the identity attached to a request once its bearer token has
// been verified and the user loaded. It carries exactly the fields resolvers
// are allowed to use; the password hash never enters a session.
type Session struct {
	UserID string
	Email  string
	City   string
}

type sessionContextKey struct{}

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext extracts the session from the context. The second
// return is false for anonymous requests.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
