package p2p

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeySize is the exact length of a raw private key in bytes
	PrivateKeySize = 32
	// NodeIDSize is the length of a derived node identifier in bytes
	NodeIDSize = 64
)

// NodeID is a peer's public network identity: the raw X‖Y coordinates of its
// secp256k1 public key, without the uncompressed-point prefix byte.
type NodeID [NodeIDSize]byte

// DeriveNodeID computes the node identifier controlled by the given private
// key. The key must be exactly PrivateKeySize bytes; any other length yields
// ErrInvalidKeySize rather than a truncated or padded derivation. The call
// retains no key material.
func DeriveNodeID(privateKey []byte) (NodeID, error) {
	if len(privateKey) != PrivateKeySize {
		return NodeID{}, fmt.Errorf("private key must be %d bytes, got %d: %w", PrivateKeySize, len(privateKey), ErrInvalidKeySize)
	}

	priv := secp256k1.PrivKeyFromBytes(privateKey)
	uncompressed := priv.PubKey().SerializeUncompressed()

	// strip the 0x04 point-format prefix, leaving the 64-byte X‖Y encoding
	var id NodeID
	copy(id[:], uncompressed[1:])
	return id, nil
}

func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}
