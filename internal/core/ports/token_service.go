package ports

// TokenService issues and verifies signed bearer tokens. Verification is pure
// computation; implementations must not perform I/O.
type TokenService interface {
	// Issue returns a signed token whose subject is userID, valid for the
	// service's configured lifetime.
	Issue(userID string) (string, error)
	// Verify validates signature and expiry, returning the subject. Any
	// failure mode (malformed, bad signature, expired) yields
	// domain.ErrInvalidToken; callers must not distinguish sub-causes.
	Verify(token string) (string, error)
}
