package push

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "chat-notify"

// renewMargin keeps a token from expiring mid-request.
const renewMargin = 30 * time.Second

// Credentials mints short-lived bearer tokens for the push gateway,
// signed with the shared service key. Tokens are cached until close to
// expiry so a burst of sends does not re-sign on every call.
type Credentials struct {
	key []byte
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	cached  string
	expires time.Time
}

func NewCredentials(serviceKey string, ttl time.Duration) *Credentials {
	return &Credentials{key: []byte(serviceKey), ttl: ttl, now: time.Now}
}

func (c *Credentials) Bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.cached != "" && now.Before(c.expires.Add(-renewMargin)) {
		return c.cached, nil
	}

	expires := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	// HS256: HMAC with SHA256, keyed by the shared service key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", err
	}

	c.cached = signed
	c.expires = expires
	return signed, nil
}
