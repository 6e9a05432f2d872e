package domain

// ContextKey is the type for values stored in request contexts by the
// auth middleware.
type ContextKey string

const (
	KeyUserID   ContextKey = "UserID"
	KeyUsername ContextKey = "Username"
)
