package hdkey

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidKey                 = errors.New("key is invalid")
	ErrInvalidSeed                = errors.New("seed is invalid")
	ErrDerivingHardenedFromPublic = errors.New("cannot derive a hardened key from public key")
	ErrBadChecksum                = errors.New("bad extended key checksum")
	ErrInvalidKeyLen              = errors.New("serialized extended key length is invalid")
	ErrDerivingChild              = errors.New("error deriving child key")
	ErrMaxDepthExceeded           = errors.New("max depth exceeded")
	ErrInvalidPrivateFlag         = errors.New("key private flag does not match version")
	ErrInvalidPath                = errors.New("derivation path is invalid")
	ErrNotPrivate                 = errors.New("extended key is not private")

	// ErrShaKeyInvalid is returned when HMAC output is zero or not below the
	// curve order; the caller should move to the next index
	ErrShaKeyInvalid = errors.New("generated key zero or overflow, try next one")
)
