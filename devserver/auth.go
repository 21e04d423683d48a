package devserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/session"
)

// signingKey is a throwaway dev secret. The client never verifies signatures,
// only the stub does.
var signingKey = []byte("edumanage-devserver")

var stubJWTConfig = middleware.JWTConfig{
	SigningKey:    signingKey,
	SigningMethod: middleware.AlgorithmHS256,
	TokenLookup:   "header:x-access-token",
	ContextKey:    "userToken",
	Claims:        new(session.Claims),
}

func issueToken(acct account) (string, error) {
	now := time.Now()
	claims := &session.Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.GetString("appName"),
			Subject:   acct.ID,
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID: acct.ID,
		Role:   acct.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

func getContextClaims(ctx echo.Context) (session.Claims, error) {
	token, ok := ctx.Get(stubJWTConfig.ContextKey).(*jwt.Token)
	if !ok {
		return session.Claims{}, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*session.Claims)
	if !ok {
		return session.Claims{}, errors.New("unexpected claims type")
	}
	return *claims, nil
}

func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Role == role || claims.IsAdmin() {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}

func (s *server) login(ctx echo.Context) error {
	var creds session.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding credentials")
	}
	acct, ok := s.opts.DB.findAccount(creds.Email)
	if !ok {
		return errAuthenticationFailed
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(creds.Password)) != nil {
		return errAuthenticationFailed
	}
	token, err := issueToken(acct)
	if err != nil {
		return errors.Wrap(err, "signing token")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"token": token})
}

func (s *server) logout(ctx echo.Context) error {
	// stateless tokens; nothing to revoke
	return ctx.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (db *DB) findAccount(email string) (account, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, a := range db.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return account{}, false
}
