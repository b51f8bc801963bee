package echoapi

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
)

const contextClaimsKey = "sessionClaims"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Role school.Role `json:"role"`
}

func (c Claims) Session() school.Session {
	return school.Session{Role: c.Role, UserID: c.Subject}
}

func GetSessionClaims(conf *core.Config, sess school.Session) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    conf.AppName,
			Subject:   sess.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(conf.Server.JWTExpirationDelta)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: sess.Role,
	}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// jwtMiddleware rejects requests without a valid bearer token and stores its Claims in the context.
func jwtMiddleware(signingKey []byte) echo.MiddlewareFunc {
	keyFunc := func(*jwt.Token) (interface{}, error) { return signingKey, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, ok := strings.CutPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || raw == "" {
				return errMissingToken
			}
			claims := new(Claims)
			token, err := jwt.ParseWithClaims(raw, claims, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || !claims.Role.Valid() {
				return errInvalidToken
			}
			ctx.Set(contextClaimsKey, claims)
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) (school.Session, error) {
	if claims, ok := ctx.Get(contextClaimsKey).(*Claims); ok {
		return claims.Session(), nil
	}
	return school.Session{}, errUnauthorized
}

// roleMiddleware lets through sessions opened with one of `roles`.
func roleMiddleware(roles ...school.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			for _, role := range roles {
				if sess.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}
