package services

// ErrUnauthorized is the literal failure category every session-gated
// operation reports when no valid session is present.
const ErrUnauthorized = "Unauthorized"

// Session is the authenticated admin principal. Operations requiring
// authorization receive it explicitly; nil means no session.
type Session struct {
	UserID string
	Email  string
}

func (s *Session) Valid() bool {
	return s != nil && s.UserID != ""
}
