package service

// Identity is the caller of an engine operation: either Anonymous or
// Authenticated. A nil Identity is treated as Anonymous.
type Identity interface {
	isIdentity()
}

// Anonymous is a caller without a valid credential.
type Anonymous struct{}

// Authenticated is an active user resolved from a bearer credential.
type Authenticated struct {
	UserID    int64
	Superuser bool
}

func (Anonymous) isIdentity()     {}
func (Authenticated) isIdentity() {}

// UserIDOf returns the user id of an authenticated caller.
func UserIDOf(caller Identity) (int64, bool) {
	if a, ok := caller.(Authenticated); ok {
		return a.UserID, true
	}
	return 0, false
}

func isSuperuser(caller Identity) bool {
	a, ok := caller.(Authenticated)
	return ok && a.Superuser
}
