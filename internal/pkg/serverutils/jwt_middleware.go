package serverutils

import (
	"errors"
	"time"

	"wine-club-be/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionLocalsKey = "session"

// NewJwtMiddleware verifies the bearer token and stores an explicit session.Session in Locals.
// Token issuance lives with the auth provider; this side only verifies.
func NewJwtMiddleware(secret string, tracker *session.Tracker) fiber.Handler {
	return jwtHandler(secret, tracker, true)
}

// NewOptionalJwtMiddleware attaches a session when a valid token is present and lets anonymous requests through.
func NewOptionalJwtMiddleware(secret string, tracker *session.Tracker) fiber.Handler {
	return jwtHandler(secret, tracker, false)
}

func jwtHandler(secret string, tracker *session.Tracker, required bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			if !required {
				return ctx.Next()
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) && token != nil {
				if userID, ok := userIDFromClaims(token.Claims); ok {
					tracker.Expired(userID, tokenStr)
				}
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Token expired"))
			}
			tracker.Rejected("invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		userID, ok := userIDFromClaims(token.Claims)
		if !ok {
			tracker.Rejected("invalid claims")
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		s := &session.Session{UserID: userID, Token: tokenStr}
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
		tracker.Seen(s)

		ctx.Locals("user_id", userID.String())
		ctx.Locals(sessionLocalsKey, s)
		ctx.SetUserContext(session.WithSession(ctx.UserContext(), s))
		return ctx.Next()
	}
}

// SessionFrom returns the session attached by the JWT middleware. An expired session yields nil.
func SessionFrom(ctx *fiber.Ctx) (*session.Session, bool) {
	s, ok := ctx.Locals(sessionLocalsKey).(*session.Session)
	if !ok || s == nil || s.Expired(time.Now()) {
		return nil, false
	}
	return s, true
}

func userIDFromClaims(claims jwt.Claims) (uuid.UUID, bool) {
	mc, ok := claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	raw, _ := mc["user_id"].(string)
	if raw == "" {
		raw, _ = mc["sub"].(string)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
