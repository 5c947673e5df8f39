package srp

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "a@example.com"

func testCredentials(t *testing.T) (authPW, salt, verifier []byte) {
	t.Helper()
	authPW = make([]byte, 32)
	salt = make([]byte, 32)
	_, err := rand.Read(authPW)
	require.NoError(t, err)
	_, err = rand.Read(salt)
	require.NoError(t, err)
	verifier = ComputeVerifier(Group2048(), testEmail, authPW, salt)
	return authPW, salt, verifier
}

func TestHandshake_MatchingPassword(t *testing.T) {
	grp := Group2048()
	authPW, salt, verifier := testCredentials(t)

	server, err := NewServerSession(grp, verifier)
	require.NoError(t, err)
	client, err := NewClientSession(grp)
	require.NoError(t, err)

	proof, clientKey, err := client.Complete(testEmail, authPW, salt, server.B())
	require.NoError(t, err)

	serverKey, err := server.Complete(client.A(), proof)
	require.NoError(t, err)

	assert.Equal(t, clientKey, serverKey, "both sides must derive the same K")
	assert.Len(t, serverKey, SharedKeyLen)
}

func TestHandshake_WrongPassword(t *testing.T) {
	grp := Group2048()
	_, salt, verifier := testCredentials(t)

	wrongPW := make([]byte, 32)
	_, err := rand.Read(wrongPW)
	require.NoError(t, err)

	server, err := NewServerSession(grp, verifier)
	require.NoError(t, err)
	client, err := NewClientSession(grp)
	require.NoError(t, err)

	proof, _, err := client.Complete(testEmail, wrongPW, salt, server.B())
	require.NoError(t, err)

	_, err = server.Complete(client.A(), proof)
	assert.ErrorIs(t, err, common.ErrIncorrectPassword)
}

func TestHandshake_DegenerateA(t *testing.T) {
	grp := Group2048()
	_, _, verifier := testCredentials(t)

	server, err := NewServerSession(grp, verifier)
	require.NoError(t, err)

	// A = 0 and A = N both reduce to 0 mod N and must be rejected before
	// any proof comparison.
	for _, a := range [][]byte{{0}, grp.N.Bytes()} {
		_, err = server.Complete(a, make([]byte, 32))
		assert.ErrorIs(t, err, common.ErrIncorrectPassword)
	}
}

func TestRestoreServerSession_SameB(t *testing.T) {
	grp := Group2048()
	_, _, verifier := testCredentials(t)

	server, err := NewServerSession(grp, verifier)
	require.NoError(t, err)

	restored, err := RestoreServerSession(grp, verifier, server.Secret())
	require.NoError(t, err)

	assert.Equal(t, server.B(), restored.B(),
		"B must be reproducible from the cached ephemeral secret")
}

func TestRestoreServerSession_CompletesHandshake(t *testing.T) {
	grp := Group2048()
	authPW, salt, verifier := testCredentials(t)

	original, err := NewServerSession(grp, verifier)
	require.NoError(t, err)

	// Simulate the complete leg running against a cache-restored session.
	restored, err := RestoreServerSession(grp, verifier, original.Secret())
	require.NoError(t, err)

	client, err := NewClientSession(grp)
	require.NoError(t, err)
	proof, clientKey, err := client.Complete(testEmail, authPW, salt, original.B())
	require.NoError(t, err)

	serverKey, err := restored.Complete(client.A(), proof)
	require.NoError(t, err)
	assert.Equal(t, clientKey, serverKey)
}

func TestRestoreServerSession_EmptyInputs(t *testing.T) {
	grp := Group2048()
	_, err := RestoreServerSession(grp, nil, []byte{1})
	assert.Error(t, err)
	_, err = RestoreServerSession(grp, []byte{1}, nil)
	assert.Error(t, err)
}

func TestComputeVerifier_DeterministicAndSaltBound(t *testing.T) {
	grp := Group2048()
	authPW := []byte("0123456789abcdef0123456789abcdef")
	salt1 := []byte("salt-1")
	salt2 := []byte("salt-2")

	v1 := ComputeVerifier(grp, testEmail, authPW, salt1)
	v2 := ComputeVerifier(grp, testEmail, authPW, salt1)
	v3 := ComputeVerifier(grp, testEmail, authPW, salt2)

	assert.Equal(t, v1, v2)
	assert.NotEqual(t, v1, v3)
	assert.Len(t, v1, 2048/8)
}

func TestGroup2048_Sanity(t *testing.T) {
	grp := Group2048()
	assert.Equal(t, 2048, grp.N.BitLen())
	assert.Equal(t, big.NewInt(2), grp.G)
	assert.True(t, grp.N.ProbablyPrime(16))
}
