package session

import (
	"testing"

	"github.com/golang-jwt/jwt"
)

func signedToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := &Claims{UserID: userID, Role: role}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func TestDecode(t *testing.T) {
	t.Run("valid admin token", func(t *testing.T) {
		claims, err := Decode(signedToken(t, "u-admin", RoleAdmin))
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}
		if claims.UserID != "u-admin" || !claims.IsAdmin() {
			t.Errorf("claims = %+v, want admin u-admin", claims)
		}
	})

	t.Run("signature is not checked client-side", func(t *testing.T) {
		// any signing key works: routing only needs the payload
		claims, err := Decode(signedToken(t, "u-parent", RoleParent))
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}
		if !claims.IsParent() {
			t.Errorf("claims = %+v, want parent", claims)
		}
	})

	bad := []struct {
		name  string
		token string
	}{
		{name: "empty"},
		{name: "whitespace only", token: "   "},
		{name: "garbage", token: "lol.nope.nah"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.token); err == nil {
				t.Error("Decode() succeeded, want error")
			}
		})
	}

	t.Run("token without role or id", func(t *testing.T) {
		if _, err := Decode(signedToken(t, "", "")); err == nil {
			t.Error("Decode() succeeded on a token without claims")
		}
	})
}

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role                         string
		isAdmin, isTeacher, isParent bool
	}{
		{role: RoleAdmin, isAdmin: true},
		{role: RoleTeacher, isTeacher: true},
		{role: RoleParent, isParent: true},
		{role: "student"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			c := Claims{Role: tt.role}
			if c.IsAdmin() != tt.isAdmin || c.IsTeacher() != tt.isTeacher || c.IsParent() != tt.isParent {
				t.Errorf("predicates for %q wrong", tt.role)
			}
		})
	}
}
