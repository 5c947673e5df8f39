package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/dmitrijs2005/keywarden/internal/common"
)

// MacSize is the length of the bundle authentication tag.
const MacSize = sha256.Size

// bundleCipherLabel derives the keystream a bundle is masked with. The label
// is fixed; separation between bundles comes from each token kind holding a
// distinct cipherKey.
const bundleCipherLabel = "bundle/cipher"

var ErrShortBundle = errors.New("cryptox: sealed bundle shorter than mac")

// SealBundle produces ciphertext‖mac where the ciphertext is the plaintext
// XOR-masked with a keystream expanded from cipherKey and the mac is
// HMAC-SHA256 over the ciphertext under macKey.
//
// This is the historical MAC-then-mask construction, kept bit-compatible
// with deployed credentials. It is not a modern AEAD: there is no nonce, so
// a cipherKey must never seal two different payloads. Token kinds uphold
// that by deriving a fresh cipherKey per token and bundling at most once.
func SealBundle(macKey, cipherKey, plaintext []byte) ([]byte, error) {
	ciphertext := []byte{}
	if len(plaintext) > 0 {
		stream, err := Expand(bundleCipherLabel, cipherKey, len(plaintext))
		if err != nil {
			return nil, err
		}
		ciphertext = common.XorBytes(plaintext, stream)
	}

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ciphertext)

	return mac.Sum(ciphertext), nil
}

// OpenBundle verifies the mac over the received ciphertext and only then
// unmasks it. Any mismatch yields common.ErrIntegrityFailure without
// distinguishing a bad mac from a wrong key.
func OpenBundle(macKey, cipherKey, sealed []byte) ([]byte, error) {
	if len(sealed) < MacSize {
		return nil, ErrShortBundle
	}
	ciphertext := sealed[:len(sealed)-MacSize]
	tag := sealed[len(sealed)-MacSize:]

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ciphertext)
	if !hmac.Equal(tag, mac.Sum(nil)) {
		return nil, common.ErrIntegrityFailure
	}

	if len(ciphertext) == 0 {
		return []byte{}, nil
	}
	stream, err := Expand(bundleCipherLabel, cipherKey, len(ciphertext))
	if err != nil {
		return nil, err
	}
	return common.XorBytes(ciphertext, stream), nil
}

// SealWithKey seals plaintext under a single shared key by expanding it into
// a mac key and a cipher key with a caller-chosen label. Both sides of an
// exchange holding the same key and label can seal and open symmetrically.
func SealWithKey(contextLabel string, key, plaintext []byte) ([]byte, error) {
	stream, err := Expand(contextLabel, key, 2*KeyLen)
	if err != nil {
		return nil, err
	}
	return SealBundle(stream[:KeyLen], stream[KeyLen:], plaintext)
}

// OpenWithKey reverses SealWithKey. The label must match the sealing side.
func OpenWithKey(contextLabel string, key, sealed []byte) ([]byte, error) {
	stream, err := Expand(contextLabel, key, 2*KeyLen)
	if err != nil {
		return nil, err
	}
	return OpenBundle(stream[:KeyLen], stream[KeyLen:], sealed)
}
