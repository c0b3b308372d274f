package session

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// checkToken returns common.ErrTokenExpired when token is a JWT whose exp
// claim is not after now. Opaque tokens and JWTs without exp pass; the
// server stays the authority.
func checkToken(token string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !exp.After(now) {
		return fmt.Errorf("%w at %s", common.ErrTokenExpired, exp.Format(time.RFC3339))
	}
	return nil
}
