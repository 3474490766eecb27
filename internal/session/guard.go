package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAdmin is returned by RequireAdmin for an authenticated non-admin user.
var ErrNotAdmin = errors.New("admin role required")

// RequireAdmin gates entry to admin views. It is a point-in-time check at
// view entry, not a continuously enforced session: a missing session or a
// non-admin role sends the caller back to the login view.
func RequireAdmin(sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrNoSession
	}
	if !sess.User.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// TokenExpired reports whether the bearer token carries an exp claim in the
// past. The claim is read without signature verification; the server remains
// the authority and will still reject a bad token with a 401. Tokens that do
// not parse or carry no expiry are treated as live.
func TokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(nowFn())
}
