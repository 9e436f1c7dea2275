package stark

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidInput is returned when a value that must be a field element
	// is negative, not less than the field prime, or not valid hex.
	ErrInvalidInput = ErrorKind("ErrInvalidInput")

	// ErrFieldOverflow is returned when a message field does not fit in its
	// declared bit width.
	ErrFieldOverflow = ErrorKind("ErrFieldOverflow")

	// ErrPointCollision is returned when the Pedersen accumulator and the
	// next constant point share an x coordinate.  It signals corrupted
	// constants or adversarial input and must not be retried.
	ErrPointCollision = ErrorKind("ErrPointCollision")

	// ErrUnknownTokenType is returned when a token carries a type other than
	// ETH, ERC20 or ERC721.
	ErrUnknownTokenType = ErrorKind("ErrUnknownTokenType")

	// ErrMalformedMessage is returned when a message hash cannot be
	// normalized for signing.
	ErrMalformedMessage = ErrorKind("ErrMalformedMessage")

	// ErrMissingPrivateKey is returned when signing with a public-only key
	// pair.
	ErrMissingPrivateKey = ErrorKind("ErrMissingPrivateKey")

	// ErrMalformedSignature is returned when a serialized signature has the
	// wrong width or an invalid recovery byte.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrInvalidPublicKey is returned when a public key is badly encoded or
	// not on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidPrivateKey is returned when a private key reduces to zero.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPointTable is returned when a constant point table fails
	// validation while loading.
	ErrInvalidPointTable = ErrorKind("ErrInvalidPointTable")

	// ErrGrindExhausted is returned when grinding exceeds its iteration
	// ceiling.  Reaching it means an internal invariant is broken.
	ErrGrindExhausted = ErrorKind("ErrGrindExhausted")

	// ErrDerivation is returned when the foreign key derivation capability
	// rejects a seed or path.
	ErrDerivation = ErrorKind("ErrDerivation")

	// ErrSigningFailed is returned when no usable nonce was produced.
	ErrSigningFailed = ErrorKind("ErrSigningFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the Stark curve primitives.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
