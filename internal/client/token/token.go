// Package token extracts display claims from a bearer token.
//
// The token is treated as opaque, issuer-signed material: the payload is
// decoded for UI personalization (who am I, which tenant, which role) but the
// signature is never verified on the client. Authorization decisions stay on
// the server side.
package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded, unverified payload of a bearer token.
// Empty fields mean the claim was not present.
type Claims struct {
	Subject string
	Role    string
	Tenant  string
}

var parser = jwt.NewParser()

// Decode extracts claims from a three-segment JWT without verifying its
// signature. Any structural problem (wrong segment count, invalid base64url,
// invalid JSON, non-object payload) yields nil so callers have exactly one
// "no claims" branch to handle.
func Decode(tokenString string) *Claims {
	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, mc); err != nil {
		return nil
	}

	c := &Claims{}
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if role, ok := mc["role"].(string); ok {
		c.Role = role
	}
	if tenant, ok := mc["tenant"].(string); ok {
		c.Tenant = tenant
	}
	return c
}
