// Package srp implements the SRP-6a password-authenticated key exchange used
// by the handshake endpoints: the server proves nothing about the stored
// verifier, the client proves knowledge of authPW, and both end up with a
// shared key K that never crossed the wire.
package srp

import (
	"crypto/sha256"
	"math/big"
	"strings"
)

// Group holds the public SRP group parameters (a safe prime N and a
// generator g). All arithmetic is mod N.
type Group struct {
	N    *big.Int
	G    *big.Int
	Bits int
}

// RFC 5054, Appendix A, 2048-bit group.
const n2048Hex = `
	AC6BDB41 324A9A9B F166DE5E 1389582F AF72B665 1987EE07 FC319294
	3DB56050 A37329CB B4A099ED 8193E075 7767A13D D52312AB 4B03310D
	CD7F48A9 DA04FD50 E8083969 EDB767B0 CF609517 9A163AB3 661A05FB
	D5FAAAE8 2918A996 2F0B93B8 55F97993 EC975EEA A80D740A DBF4FF74
	7359D041 D5C33EA7 1D281E44 6B14773B CA97B43A 23FB8016 76BD207A
	436C6481 F1D2B907 8717461A 5B9D32E6 88F87748 544523B5 24B0D57D
	5EA77A27 75D2ECFA 032CFBDB F52FB378 61602790 04E57AE6 AF874E73
	03CE5329 9CCC041C 7BC308D8 2A5698F3 A8D0C382 71AE35F8 E9DBFBB6
	94B5C803 D89F7AE4 35DE236D 525F5475 9B65E372 FCD68EF2 0FA7111F
	9E4AFF73`

var group2048 = mustGroup(n2048Hex, 2, 2048)

// Group2048 returns the RFC 5054 2048-bit group. The group is shared and
// immutable; callers must not modify the returned values.
func Group2048() *Group { return group2048 }

func mustGroup(nHex string, g int64, bits int) *Group {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, nHex)
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		panic("srp: bad group modulus")
	}
	return &Group{N: n, G: big.NewInt(g), Bits: bits}
}

// byteLen is the padded width of every value hashed or transmitted:
// the byte length of N.
func (g *Group) byteLen() int { return (g.N.BitLen() + 7) / 8 }

// pad left-pads v's big-endian bytes to the group width, per RFC 2945
// hashing rules.
func (g *Group) pad(v *big.Int) []byte {
	return v.FillBytes(make([]byte, g.byteLen()))
}

func hashParts(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// multiplierK is the SRP-6a multiplier k = H(N ‖ PAD(g)).
func (g *Group) multiplierK() *big.Int {
	return new(big.Int).SetBytes(hashParts(g.N.Bytes(), g.pad(g.G)))
}

// scramblingU is u = H(PAD(A) ‖ PAD(B)).
func (g *Group) scramblingU(a, b *big.Int) *big.Int {
	return new(big.Int).SetBytes(hashParts(g.pad(a), g.pad(b)))
}
