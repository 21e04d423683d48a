package session

import (
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// Portal roles encoded in the backend token.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

var errInvalidToken = errors.New("invalid session token")

// Claims is the subset of the backend JWT the client cares about: who the user
// is and which portal to route them to. The token is signed by the backend;
// the client holds no key and only decodes it for routing decisions.
type Claims struct {
	jwt.StandardClaims
	UserID string `json:"_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

func (c Claims) IsAdmin() bool   { return c.Role == RoleAdmin }
func (c Claims) IsTeacher() bool { return c.Role == RoleTeacher }
func (c Claims) IsParent() bool  { return c.Role == RoleParent }

// Decode extracts Claims from a raw token without verifying the signature;
// verification is the backend's job on every authenticated call.
func Decode(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, errInvalidToken
	}
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Claims{}, errors.Wrap(errInvalidToken, err.Error())
	}
	if claims.UserID == "" || claims.Role == "" {
		return Claims{}, errInvalidToken
	}
	return *claims, nil
}
