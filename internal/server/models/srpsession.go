package models

import "time"

// SRPSession is the transient server state of one handshake, cached between
// the begin and complete legs. It is consumed exactly once: taken and
// deleted atomically whichever way the exchange ends.
type SRPSession struct {
	ID        string
	UID       string
	Email     string
	Salt      []byte
	Verifier  []byte
	Secret    []byte
	CreatedAt time.Time
}
