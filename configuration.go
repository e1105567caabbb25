package p2p

// Configuration defines the local chain identity the wire layer validates
// remote peers against
type Configuration struct {
	// Network is the NetworkID of the network to use, eg. MainNet, TestNet, etc
	Network NetworkID

	// NodeName is the internal name of the node
	NodeName string

	// ProtocolVersion is the version of the protocol this node speaks
	ProtocolVersion uint32
	// ProtocolVersionMinimum is the lowest version this node will accept
	// from a peer's status announcement
	ProtocolVersionMinimum uint32

	// GenesisHash identifies the chain itself. A peer announcing a
	// different genesis is on a different chain no matter what network id
	// it claims.
	GenesisHash Digest
}

// DefaultConfiguration returns a network configuration with sane defaults
func DefaultConfiguration() (c Configuration) {
	c.Network = MainNet
	c.NodeName = "Node0"
	c.ProtocolVersion = 1
	c.ProtocolVersionMinimum = 1
	return
}
