// Package token implements the opaque bearer credential family. Every token
// is derived from 32 random bytes (its wire form) through domain-separated
// key expansion: the public id plus the private sub-keys are slices of the
// expanded stream, so the server stores only the id and recomputes the
// sub-keys from whatever wire form a client presents.
package token

import (
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
)

const (
	// DataLen is the wire-form length: the seed handed to the client.
	DataLen = 32
	// IDLen is the public identifier length.
	IDLen = 32
	// SubKeyLen is the length of each private sub-key.
	SubKeyLen = 32
)

// Token is one live credential. ID is safe to log and is the storage lookup
// key; Data is the secret the client holds; macKey/cipherKey are recomputed,
// never persisted.
type Token struct {
	Kind Kind
	ID   []byte
	Data []byte

	macKey    []byte
	cipherKey []byte
}

// Create mints a fresh token of the given kind from new random seed material
// and returns it along with the wire form the client must be handed.
func Create(kind Kind) (*Token, []byte, error) {
	data := common.GenerateRandByteArray(DataLen)
	t, err := Reconstruct(kind, data)
	if err != nil {
		return nil, nil, err
	}
	return t, data, nil
}

// Reconstruct re-runs the expansion over client-presented wire bytes,
// reproducing the id and every sub-key the server computed at creation time.
// A wire form of the wrong length yields common.ErrInvalidToken.
func Reconstruct(kind Kind, wire []byte) (*Token, error) {
	layout, ok := layouts[kind]
	if !ok {
		return nil, fmt.Errorf("token: unknown kind %d", kind)
	}
	if len(wire) != DataLen {
		return nil, fmt.Errorf("token: wire form must be %d bytes, got %d: %w",
			DataLen, len(wire), common.ErrInvalidToken)
	}

	stream, err := cryptox.Expand(layout.label, wire, kind.KeyLen())
	if err != nil {
		return nil, err
	}

	t := &Token{
		Kind:   kind,
		ID:     stream[:IDLen],
		Data:   append([]byte(nil), wire...),
		macKey: stream[IDLen : IDLen+SubKeyLen],
	}
	if layout.hasCipherKey {
		t.cipherKey = stream[IDLen+SubKeyLen : IDLen+2*SubKeyLen]
	}
	return t, nil
}

// ReconstructHex is Reconstruct over the hex transport encoding.
func ReconstructHex(kind Kind, wireHex string) (*Token, error) {
	wire, err := hex.DecodeString(wireHex)
	if err != nil {
		return nil, fmt.Errorf("token: bad hex wire form: %w", common.ErrInvalidToken)
	}
	return Reconstruct(kind, wire)
}

// IDHex returns the public identifier in its storage/logging encoding.
func (t *Token) IDHex() string { return hex.EncodeToString(t.ID) }

// DataHex returns the wire form in its transport encoding.
func (t *Token) DataHex() string { return hex.EncodeToString(t.Data) }

// MacKey exposes the request-authentication sub-key.
func (t *Token) MacKey() []byte { return t.macKey }

// Bundle seals the concatenation of parts to whoever holds this token's wire
// form. Only kinds carrying a cipherKey can bundle.
func (t *Token) Bundle(parts ...[]byte) ([]byte, error) {
	if t.cipherKey == nil {
		return nil, fmt.Errorf("token: kind %s cannot bundle", t.Kind)
	}
	var plaintext []byte
	for _, p := range parts {
		plaintext = append(plaintext, p...)
	}
	return cryptox.SealBundle(t.macKey, t.cipherKey, plaintext)
}

// Unbundle opens a sealed bundle and splits it into numParts equal slices.
// All bundled payload parts are SubKeyLen-sized key material.
func (t *Token) Unbundle(numParts int, sealed []byte) ([][]byte, error) {
	if t.cipherKey == nil {
		return nil, fmt.Errorf("token: kind %s cannot unbundle", t.Kind)
	}
	plaintext, err := cryptox.OpenBundle(t.macKey, t.cipherKey, sealed)
	if err != nil {
		return nil, err
	}
	if len(plaintext) != numParts*SubKeyLen {
		return nil, common.ErrIntegrityFailure
	}
	parts := make([][]byte, numParts)
	for i := range parts {
		parts[i] = plaintext[i*SubKeyLen : (i+1)*SubKeyLen]
	}
	return parts, nil
}
