package cryptox

import (
	"crypto/rand"
	"testing"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, 32)
	_, err := rand.Read(k)
	require.NoError(t, err)
	return k
}

func TestBundle_RoundTrip(t *testing.T) {
	macKey := randKey(t)
	cipherKey := randKey(t)

	for _, size := range []int{1, 31, 32, 64, 96, 1000} {
		plaintext := make([]byte, size)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		sealed, err := SealBundle(macKey, cipherKey, plaintext)
		require.NoError(t, err)
		assert.Len(t, sealed, size+MacSize)
		assert.NotEqual(t, plaintext, sealed[:size], "payload must be masked")

		opened, err := OpenBundle(macKey, cipherKey, sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestBundle_EmptyPayload(t *testing.T) {
	macKey := randKey(t)
	cipherKey := randKey(t)

	sealed, err := SealBundle(macKey, cipherKey, nil)
	require.NoError(t, err)
	assert.Len(t, sealed, MacSize)

	opened, err := OpenBundle(macKey, cipherKey, sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestBundle_TamperDetection(t *testing.T) {
	macKey := randKey(t)
	cipherKey := randKey(t)
	plaintext := []byte("0123456789abcdef0123456789abcdef")

	sealed, err := SealBundle(macKey, cipherKey, plaintext)
	require.NoError(t, err)

	// Flipping any single bit anywhere in the sealed bundle must fail.
	for i := 0; i < len(sealed); i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(sealed))
			copy(mutated, sealed)
			mutated[i] ^= 1 << bit

			_, err := OpenBundle(macKey, cipherKey, mutated)
			assert.ErrorIs(t, err, common.ErrIntegrityFailure,
				"byte %d bit %d", i, bit)
		}
	}
}

func TestBundle_WrongMacKey(t *testing.T) {
	cipherKey := randKey(t)

	sealed, err := SealBundle(randKey(t), cipherKey, []byte("payload-payload-payload-payload-"))
	require.NoError(t, err)

	_, err = OpenBundle(randKey(t), cipherKey, sealed)
	assert.ErrorIs(t, err, common.ErrIntegrityFailure)
}

func TestBundle_TooShort(t *testing.T) {
	_, err := OpenBundle(randKey(t), randKey(t), make([]byte, MacSize-1))
	assert.ErrorIs(t, err, ErrShortBundle)
}
