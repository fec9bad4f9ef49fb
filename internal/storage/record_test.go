package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUsers_Empty(t *testing.T) {
	users, err := decodeUsers(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDecodeUsers_LineTooLong(t *testing.T) {
	long := strings.Repeat("a", maxLineSize+1)
	_, err := decodeUsers(strings.NewReader(long + "\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecodeUsers_EmptyFieldsAreKept(t *testing.T) {
	users, err := decodeUsers(strings.NewReader("Alice Tan\nalicet\n1\n\n\n\n"))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "", users[0].Billing.ModeOfPayment)
	assert.Equal(t, "", users[0].Billing.ContactNumber)
}
