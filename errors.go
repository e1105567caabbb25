package p2p

import "errors"

// The wire layer reports every failure as one of four distinguishable kinds
// so that callers can apply different policy per kind (drop, disconnect,
// penalize) without string matching. Errors carry call-site context via
// wrapping; match with errors.Is.
var (
	// ErrMalformedShape indicates decode input that does not match the
	// packet's expected structure, eg. a byte string where a list was
	// required. The input is never partially accepted.
	ErrMalformedShape = errors.New("malformed wire shape")

	// ErrLimitExceeded indicates decode input that is structurally valid
	// but larger than the per-packet element cap. Kept distinct from
	// ErrMalformedShape so callers can treat oversized-but-well-formed
	// input differently from garbage.
	ErrLimitExceeded = errors.New("element limit exceeded")

	// ErrIntegrityMismatch indicates a computed digest that does not equal
	// the expected digest at an AssertHash call site. Fatal for the
	// operation in progress, never retried at this layer.
	ErrIntegrityMismatch = errors.New("content hash mismatch")

	// ErrInvalidKeySize indicates a private key that is not exactly
	// PrivateKeySize bytes. The key is never truncated or padded.
	ErrInvalidKeySize = errors.New("invalid private key size")
)
