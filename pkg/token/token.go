package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers malformed tokens, signature mismatches and expiry.
// Callers get no finer detail than this; verification internals stay here.
var ErrInvalid = errors.New("invalid or expired token")

// Claims bind both the booking id and the attendee email into the signed
// payload so the check-in flow can cross-check them against the stored record.
type Claims struct {
	BookingID string `json:"booking_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies check-in tokens. It never touches the store.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token granting check-in rights for one booking
func (i *Issuer) Issue(bookingID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		BookingID: bookingID.String(),
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalid
	}

	if claims.BookingID == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}
