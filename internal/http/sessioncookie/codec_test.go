package sessioncookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("secret"), "sb_session", false)

	v := c.Encode("abc-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "sb_session", false)
	other := New([]byte("other"), "sb_session", false)

	v := c.Encode("abc-123")

	_, err := other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("forged-id." + "AAAA")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("no-signature")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("")
	assert.ErrorIs(t, err, ErrInvalid)
}
