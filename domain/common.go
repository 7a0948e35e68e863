package domain

import (
	"errors"
)

const (
	TokenTypeBearer = "bearer"
	LocalsIdentity  = "identity"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "Invalid or expired token"

	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrMalformedAuth = errors.New("malformed authorization header")
	ErrUnauthorized  = errors.New("unauthorized")
)

type IdentityState int

const (
	IdentityAnonymous IdentityState = iota
	IdentityIdentified
	IdentityRejected
)

func (s IdentityState) String() string {
	switch s {
	case IdentityAnonymous:
		return "anonymous"
	case IdentityIdentified:
		return "identified"
	case IdentityRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Identity is the outcome of resolving an optional Authorization header.
// Username is set only when State is IdentityIdentified, Reason only when
// State is IdentityRejected.
type Identity struct {
	State    IdentityState
	Username string
	Reason   error
}

func Anonymous() Identity {
	return Identity{State: IdentityAnonymous}
}

func Identified(username string) Identity {
	return Identity{State: IdentityIdentified, Username: username}
}

func Rejected(reason error) Identity {
	return Identity{State: IdentityRejected, Reason: reason}
}

func (i Identity) IsIdentified() bool {
	return i.State == IdentityIdentified
}

func (i Identity) IsRejected() bool {
	return i.State == IdentityRejected
}
