package p2p

import (
	"encoding/binary"
	"fmt"
)

// NetworkID represents the network we are participating in (eg: test, main, etc.)
type NetworkID uint32

// NetworkID are specific uint32s to identify separate networks.
//
// The default identifiers are MainNet (the main production network), TestNet
// and LocalNet. Custom identifiers are generated from a name via
// NewNetworkID.
const (
	MainNet  NetworkID = 0xfeedbeef
	TestNet  NetworkID = 0xdeadbeef
	LocalNet NetworkID = 0xbeaded
)

// NewNetworkID converts a string to a network id by taking the first four
// bytes of its content hash
func NewNetworkID(name string) NetworkID {
	sum := Hash([]byte(name))
	return NetworkID(binary.BigEndian.Uint32(sum[:4]))
}

func (n NetworkID) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case LocalNet:
		return "LocalNet"
	default:
		return fmt.Sprintf("CustomNet ID: %x", uint32(n))
	}
}
