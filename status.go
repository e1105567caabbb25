package p2p

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// StatusPacket is the chain state exchange two peers perform right after
// connecting: protocol version, network, current head and the genesis hash
// identifying the chain itself.
//
// Wire shape: [version, network, headHash, headNumber, genesisHash].
type StatusPacket struct {
	Version     uint32
	Network     NetworkID
	HeadHash    Digest
	HeadNumber  uint64
	GenesisHash Digest
}

func (p *StatusPacket) Type() PacketType {
	return TypeStatus
}

func (p *StatusPacket) Serialize() *WireValue {
	return WireList(
		WireUint(uint64(p.Version)),
		WireUint(uint64(p.Network)),
		WireString(p.HeadHash[:]),
		WireUint(p.HeadNumber),
		WireString(p.GenesisHash[:]),
	)
}

func (p *StatusPacket) Deserialize(wire *WireValue) error {
	fields, err := wire.Items()
	if err != nil {
		return err
	}
	if len(fields) != 5 {
		return fmt.Errorf("status has %d fields, want 5: %w", len(fields), ErrMalformedShape)
	}

	version, err := fields[0].Uint()
	if err != nil {
		return fmt.Errorf("status version: %w", err)
	}
	if version > math.MaxUint32 {
		return fmt.Errorf("status version %d out of range: %w", version, ErrMalformedShape)
	}
	network, err := fields[1].Uint()
	if err != nil {
		return fmt.Errorf("status network: %w", err)
	}
	if network > math.MaxUint32 {
		return fmt.Errorf("status network %d out of range: %w", network, ErrMalformedShape)
	}

	rawHead, err := fields[2].Bytes()
	if err != nil {
		return fmt.Errorf("status head hash: %w", err)
	}
	headHash, err := DigestFromBytes(rawHead)
	if err != nil {
		return fmt.Errorf("status head hash: %w", err)
	}
	headNumber, err := fields[3].Uint()
	if err != nil {
		return fmt.Errorf("status head number: %w", err)
	}
	rawGenesis, err := fields[4].Bytes()
	if err != nil {
		return fmt.Errorf("status genesis hash: %w", err)
	}
	genesisHash, err := DigestFromBytes(rawGenesis)
	if err != nil {
		return fmt.Errorf("status genesis hash: %w", err)
	}

	p.Version = uint32(version)
	p.Network = NetworkID(network)
	p.HeadHash = headHash
	p.HeadNumber = headNumber
	p.GenesisHash = genesisHash
	return nil
}

// Handle checks the announced chain identity against the local configuration
// and records the peer's head. A mismatch means the peer belongs to a
// different network or chain; the caller decides whether to disconnect.
func (p *StatusPacket) Handle(peer *Peer) error {
	if p.Version < peer.conf.ProtocolVersionMinimum {
		return fmt.Errorf("version %d is below the minimum %d", p.Version, peer.conf.ProtocolVersionMinimum)
	}
	if p.Network != peer.conf.Network {
		return fmt.Errorf("wrong network id %x, ours is %x", uint32(p.Network), uint32(peer.conf.Network))
	}
	if p.GenesisHash != peer.conf.GenesisHash {
		return fmt.Errorf("genesis %s does not match ours %s", p.GenesisHash, peer.conf.GenesisHash)
	}

	peer.setHead(p.HeadHash, p.HeadNumber)
	peer.MarkBlock(p.HeadHash, p.HeadNumber)
	peer.logger.WithFields(log.Fields{
		"head":   p.HeadHash.String()[:8],
		"number": p.HeadNumber,
	}).Debug("peer status accepted")
	return nil
}
