package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// hex-encoded session token on authenticated calls.
const SessionTokenHeaderName = "session_token"
