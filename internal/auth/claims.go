package auth

// UserClaims is the identity attached to a request, whatever credential it
// arrived with.
type UserClaims interface {
	UserID() string
	Source() string
}

// JWTClaims carries the identity from a bearer token.
type JWTClaims struct {
	UserUUID string
	Email    string
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Source() string { return "JWT" }

// APIKeyClaims marks a request authenticated with an API key; there is no
// user behind it, only the key label.
type APIKeyClaims struct {
	KeyID string
	Label string
}

func (c *APIKeyClaims) UserID() string { return "" }
func (c *APIKeyClaims) Source() string { return "API_KEY" }
