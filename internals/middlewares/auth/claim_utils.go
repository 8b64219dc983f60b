// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Authorization header o fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// split robusto: tolera espacios dobles, case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	return fields[1], nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		// alias sub
		raw, ok = claims["sub"]
		if !ok {
			return uuid.Nil, fmt.Errorf("user_id claim missing")
		}
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("user_id claim is not a string")
	}
	return uuid.Parse(s)
}

func extractRole(claims jwt.MapClaims) string {
	if s, ok := claims["role"].(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func extractDocenteID(claims jwt.MapClaims) (uuid.UUID, bool) {
	s, ok := claims["docente_id"].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

/* ======== Validators ======== */

// validateTokenExpiry chequea exp con un leeway chico para clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("exp claim missing")
	}
	var expAt time.Time
	switch t := exp.(type) {
	case float64:
		expAt = time.Unix(int64(t), 0)
	case int64:
		expAt = time.Unix(t, 0)
	default:
		return fmt.Errorf("exp claim invalid")
	}
	if time.Now().After(expAt.Add(leeway)) {
		return fmt.Errorf("token expired at %s", expAt)
	}
	return nil
}
