package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claims structure the boundary layer accepts. The subject
// claim carries the caller's account name; everything downstream of the auth
// middleware trusts it as the verified caller identity.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Account returns the caller account name from the subject claim.
func (c *Claims) Account() string {
	return c.Subject
}
