package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload of a token issued by the booking backend. Older
// tokens carry the user id in "id", newer ones in "sub".
type Claims struct {
	UID      string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject
}

func (c *Claims) Expiry() *time.Time {
	if c.ExpiresAt == nil {
		return nil
	}
	t := c.ExpiresAt.Time
	return &t
}

// Decoder reads backend tokens. With a secret it verifies the HMAC
// signature; without one it only decodes the payload and checks expiry, and
// the backend stays responsible for rejecting forged tokens.
type Decoder struct {
	secretKey []byte
	now       func() time.Time
}

func NewDecoder(secretKey string) *Decoder {
	d := &Decoder{now: time.Now}
	if secretKey != "" {
		d.secretKey = []byte(secretKey)
	}
	return d
}

func (d *Decoder) Verifies() bool {
	return len(d.secretKey) > 0
}

func (d *Decoder) Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	if d.Verifies() {
		return d.verify(tokenString)
	}
	return d.decodeUnverified(tokenString)
}

func (d *Decoder) verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return d.secretKey, nil
	}, jwt.WithTimeFunc(d.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (d *Decoder) decodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt != nil && !d.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}

// Sign issues an HS256 token for the given claims. The backend signs real
// tokens; this is used by tests and local tooling.
func Sign(secretKey string, claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
