package model

// Scope identifies the caller a request acts on behalf of.
type Scope struct {
	UserID   string
	Username string
}

// Valid reports whether the scope names a user.
func (s Scope) Valid() bool {
	return s.UserID != ""
}
