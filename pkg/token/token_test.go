package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	bookingID := uuid.New()

	signed, err := issuer.Issue(bookingID, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, bookingID.String(), claims.BookingID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-one", time.Hour).Issue(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = NewIssuer("secret-two", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Tampered(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(uuid.New(), "a@x.com")
	require.NoError(t, err)

	mutated := []byte(signed)
	last := len(mutated) - 1
	if mutated[last] == 'A' {
		mutated[last] = 'B'
	} else {
		mutated[last] = 'A'
	}

	_, err = issuer.Verify(string(mutated))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}
