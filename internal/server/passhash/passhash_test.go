package passhash

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	stored := Hash("correct horse battery staple")

	parts := strings.Split(stored, ":")
	require.Len(t, parts, 2)

	salt, err := hex.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, salt, saltSize)

	key, err := hex.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, key, keySize)
}

func TestHashVerify_RoundTrip(t *testing.T) {
	stored := Hash("s3cret-password")

	assert.True(t, Verify(stored, "s3cret-password"))
	assert.False(t, Verify(stored, "s3cret-passwore"))
	assert.False(t, Verify(stored, ""))
}

func TestHash_SaltIsRandom(t *testing.T) {
	a := Hash("same password")
	b := Hash("same password")

	assert.NotEqual(t, a, b, "two hashes of one password must differ by salt")
	assert.True(t, Verify(a, "same password"))
	assert.True(t, Verify(b, "same password"))
}

func TestVerify_MalformedStored(t *testing.T) {
	cases := []string{
		"",
		"nocolon",
		"one:two:three",
		"zz:ff", // salt not hex
		"ff:zz", // key not hex
	}
	for _, stored := range cases {
		assert.False(t, Verify(stored, "whatever"), "stored=%q", stored)
	}
}
