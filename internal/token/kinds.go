package token

// Kind selects a token's purpose label and slice layout. Purpose labels are
// the domain-separation boundary: two kinds never share derivable key
// material even when minted for the same account in the same second.
type Kind int

const (
	KindSession Kind = iota
	KindKeyFetch
	KindAccountReset
	KindPasswordForgot
	KindPasswordChange
	KindAuth
)

type layout struct {
	label        string
	hasCipherKey bool
}

var layouts = map[Kind]layout{
	KindSession:        {label: "session/create"},
	KindKeyFetch:       {label: "account/keys", hasCipherKey: true},
	KindAccountReset:   {label: "account/reset", hasCipherKey: true},
	KindPasswordForgot: {label: "password/forgot"},
	KindPasswordChange: {label: "password/change"},
	KindAuth:           {label: "auth/create", hasCipherKey: true},
}

// AuthFinishLabel is the context label sealing a fresh Auth token wire form
// under the SRP shared key at handshake completion.
const AuthFinishLabel = "auth/finish"

// Label returns the kind's purpose label mixed into key expansion.
func (k Kind) Label() string { return layouts[k].label }

// KeyLen is the total expanded key-material length for the kind:
// id plus one or two sub-keys.
func (k Kind) KeyLen() int {
	if layouts[k].hasCipherKey {
		return IDLen + 2*SubKeyLen
	}
	return IDLen + SubKeyLen
}

// StoreName is the token-store key space for the kind.
func (k Kind) StoreName() string {
	switch k {
	case KindSession:
		return "sessionTokens"
	case KindKeyFetch:
		return "keyFetchTokens"
	case KindAccountReset:
		return "accountResetTokens"
	case KindPasswordForgot:
		return "passwordForgotTokens"
	case KindPasswordChange:
		return "passwordChangeTokens"
	case KindAuth:
		return "authTokens"
	default:
		return "unknown"
	}
}

func (k Kind) String() string { return layouts[k].label }

// Kinds lists every token kind, in cascade-deletion order.
func Kinds() []Kind {
	return []Kind{
		KindSession, KindKeyFetch, KindAccountReset,
		KindPasswordForgot, KindPasswordChange, KindAuth,
	}
}

// BundleAccountKeys seals kA‖wrapKb to a KeyFetch token holder.
func (t *Token) BundleAccountKeys(kA, wrapKb []byte) ([]byte, error) {
	return t.Bundle(kA, wrapKb)
}

// UnbundleAccountKeys opens a KeyFetch bundle into (kA, wrapKb).
func (t *Token) UnbundleAccountKeys(sealed []byte) (kA, wrapKb []byte, err error) {
	parts, err := t.Unbundle(2, sealed)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// BundleTokens seals two other tokens' wire forms under an Auth token, so
// completing the handshake hands back a KeyFetch plus a Session (or
// AccountReset) credential in one encrypted round trip.
func (t *Token) BundleTokens(first, second *Token) ([]byte, error) {
	return t.Bundle(first.Data, second.Data)
}

// UnbundleTokens opens an Auth bundle back into two wire forms.
func (t *Token) UnbundleTokens(sealed []byte) (first, second []byte, err error) {
	parts, err := t.Unbundle(2, sealed)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}
