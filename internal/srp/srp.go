package srp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/keywarden/internal/common"
)

// ephemeralLen is the byte length of the random ephemeral secrets a and b.
const ephemeralLen = 32

// ComputeX derives the SRP private key from the account identity:
// x = H(salt ‖ H(email ":" authPW)).
func ComputeX(email string, authPW, salt []byte) *big.Int {
	inner := hashParts([]byte(email), []byte(":"), authPW)
	return new(big.Int).SetBytes(hashParts(salt, inner))
}

// ComputeVerifier computes v = g^x mod N, the value the server stores in
// place of anything password-derived. Returned padded to the group width.
func ComputeVerifier(grp *Group, email string, authPW, salt []byte) []byte {
	x := ComputeX(email, authPW, salt)
	v := new(big.Int).Exp(grp.G, x, grp.N)
	return grp.pad(v)
}

// ServerSession is the server half of one handshake: the ephemeral secret b
// and the public value B = (k·v + g^b) mod N.
type ServerSession struct {
	grp  *Group
	v    *big.Int
	b    *big.Int
	bPub *big.Int
}

// NewServerSession starts a handshake against the stored verifier, drawing
// a fresh ephemeral secret.
func NewServerSession(grp *Group, verifier []byte) (*ServerSession, error) {
	secret := make([]byte, ephemeralLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("srp: ephemeral: %w", err)
	}
	return RestoreServerSession(grp, verifier, secret)
}

// RestoreServerSession rebuilds the session from a cached ephemeral secret.
// B is deterministic given (v, b), so only those two need caching between
// the begin and complete legs.
func RestoreServerSession(grp *Group, verifier, secret []byte) (*ServerSession, error) {
	if len(verifier) == 0 || len(secret) == 0 {
		return nil, fmt.Errorf("srp: empty verifier or secret")
	}
	v := new(big.Int).SetBytes(verifier)
	b := new(big.Int).SetBytes(secret)

	// B = (k*v + g^b) mod N
	gb := new(big.Int).Exp(grp.G, b, grp.N)
	kv := new(big.Int).Mul(grp.multiplierK(), v)
	bPub := kv.Add(kv, gb)
	bPub.Mod(bPub, grp.N)

	return &ServerSession{grp: grp, v: v, b: b, bPub: bPub}, nil
}

// B returns the public value, padded to the group width.
func (s *ServerSession) B() []byte { return s.grp.pad(s.bPub) }

// Secret returns the ephemeral secret b for caching.
func (s *ServerSession) Secret() []byte { return s.b.FillBytes(make([]byte, ephemeralLen)) }

// Complete verifies the client proof and derives the shared key.
// S = (A·v^u)^b mod N, expected proof M = H(PAD(A) ‖ PAD(B) ‖ PAD(S)),
// K = H(PAD(S)). A proof mismatch, including a degenerate A, is reported as
// common.ErrIncorrectPassword; the caller cannot tell which.
func (s *ServerSession) Complete(aPub, clientProof []byte) ([]byte, error) {
	grp := s.grp
	if len(aPub) > grp.byteLen() {
		return nil, common.ErrIncorrectPassword
	}
	a := new(big.Int).SetBytes(aPub)

	// Reject A ≡ 0 (mod N); it would force S = 0 regardless of password.
	if new(big.Int).Mod(a, grp.N).Sign() == 0 {
		return nil, common.ErrIncorrectPassword
	}

	u := grp.scramblingU(a, s.bPub)
	vu := new(big.Int).Exp(s.v, u, grp.N)
	base := vu.Mul(vu, a)
	base.Mod(base, grp.N)
	shared := new(big.Int).Exp(base, s.b, grp.N)

	expected := hashParts(grp.pad(a), grp.pad(s.bPub), grp.pad(shared))
	if !hmac.Equal(expected, clientProof) {
		return nil, common.ErrIncorrectPassword
	}

	return hashParts(grp.pad(shared)), nil
}

// ClientSession is the client half: the ephemeral secret a and A = g^a.
// It exists for cmd/cli and for exercising the server in tests.
type ClientSession struct {
	grp  *Group
	a    *big.Int
	aPub *big.Int
}

// NewClientSession draws a fresh client ephemeral.
func NewClientSession(grp *Group) (*ClientSession, error) {
	secret := make([]byte, ephemeralLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("srp: ephemeral: %w", err)
	}
	a := new(big.Int).SetBytes(secret)
	return &ClientSession{
		grp:  grp,
		a:    a,
		aPub: new(big.Int).Exp(grp.G, a, grp.N),
	}, nil
}

// A returns the client public value, padded to the group width.
func (c *ClientSession) A() []byte { return c.grp.pad(c.aPub) }

// Complete consumes the server's B and produces the proof M plus the shared
// key K. S = (B − k·g^x)^(a + u·x) mod N.
func (c *ClientSession) Complete(email string, authPW, salt, bPub []byte) (proof, key []byte, err error) {
	grp := c.grp
	b := new(big.Int).SetBytes(bPub)

	if new(big.Int).Mod(b, grp.N).Sign() == 0 {
		return nil, nil, fmt.Errorf("srp: degenerate server value")
	}

	x := ComputeX(email, authPW, salt)
	u := grp.scramblingU(c.aPub, b)

	gx := new(big.Int).Exp(grp.G, x, grp.N)
	kgx := gx.Mul(grp.multiplierK(), gx)
	base := new(big.Int).Sub(b, kgx)
	base.Mod(base, grp.N)

	exp := new(big.Int).Mul(u, x)
	exp.Add(exp, c.a)
	shared := new(big.Int).Exp(base, exp, grp.N)

	proof = hashParts(grp.pad(c.aPub), grp.pad(b), grp.pad(shared))
	key = hashParts(grp.pad(shared))
	return proof, key, nil
}

// SharedKeyLen is the length of K.
const SharedKeyLen = sha256.Size
