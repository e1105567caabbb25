package p2p

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// DigestSize is the number of bytes in a Digest
const DigestSize = 32

// Digest is the fixed-size output of the protocol's content hash. It is a
// value type; comparing two digests with == compares content.
type Digest [DigestSize]byte

// Hash computes the Keccak-256 digest of data. Every peer on the network
// computes this exact function, so the legacy Keccak padding is load-bearing
// here; the NIST SHA-3 variant produces different digests and would break
// interoperability.
func Hash(data []byte) Digest {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DigestFromBytes converts raw bytes into a Digest, rejecting any length
// other than DigestSize
func DigestFromBytes(b []byte) (Digest, error) {
	if len(b) != DigestSize {
		return Digest{}, fmt.Errorf("digest must be %d bytes, got %d: %w", DigestSize, len(b), ErrMalformedShape)
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashMatches reports whether data hashes to expected. For callers that
// branch on the verdict; it never fails.
func HashMatches(data []byte, expected Digest) bool {
	return Hash(data) == expected
}

// AssertHash verifies that data hashes to expected and returns
// ErrIntegrityMismatch otherwise. For call sites at a trust boundary where
// any mismatch aborts the operation in progress, eg. authenticating a
// payload mid-handshake.
func AssertHash(data []byte, expected Digest) error {
	if actual := Hash(data); actual != expected {
		prom.IntegrityFailures.Inc()
		return fmt.Errorf("expected %s, computed %s: %w", expected, actual, ErrIntegrityMismatch)
	}
	return nil
}
