package p2p

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var packageLogger = log.WithField("package", "p2p")

// MaxListElements is the maximum number of elements a list-bearing packet
// may contain after decode. The cap is a protocol constant enforced
// unconditionally: it is the only backpressure this layer has against a
// peer advertising an implausible number of items in a single message.
const MaxListElements = 256

// Packet is a typed protocol message. Every variant implements the same
// three operations:
//
//	Serialize   Packet => WireValue tree, total for any packet value that
//	            satisfies the variant's field invariants
//	Deserialize WireValue tree => Packet, validating structural shape
//	            before trusting any field value
//	Handle      the variant's protocol action against the peer the packet
//	            arrived from
//
// Packets are transient: constructed by decode or by application logic,
// consumed once by Handle, then discarded. No packet operation mutates
// state visible to another concurrent call, so the dispatcher may decode
// and handle packets for different peers without synchronization.
type Packet interface {
	Type() PacketType
	Serialize() *WireValue
	Deserialize(wire *WireValue) error
	Handle(peer *Peer) error
}

// prototypes for every variant this node understands, keyed by code point.
// New variants should be registered here and in typeStrings.
var packetPrototypes = map[PacketType]func() Packet{
	TypeStatus:         func() Packet { return new(StatusPacket) },
	TypeNewBlockHashes: func() Packet { return new(NewBlockHashesPacket) },
	TypeTransactions:   func() Packet { return new(TransactionsPacket) },
}

// NewPacket creates an empty packet of the given variant
func NewPacket(t PacketType) (Packet, error) {
	proto, ok := packetPrototypes[t]
	if !ok {
		return nil, fmt.Errorf("unknown packet type %s", t)
	}
	return proto(), nil
}

// DeserializePacket decodes a wire tree into the packet variant tagged by t.
// All decode failures surface to the caller; this layer never retries and
// never partially accepts input.
func DeserializePacket(t PacketType, wire *WireValue) (Packet, error) {
	p, err := NewPacket(t)
	if err != nil {
		return nil, err
	}

	if err := p.Deserialize(wire); err != nil {
		switch {
		case errors.Is(err, ErrLimitExceeded):
			prom.Oversized.Inc()
		case errors.Is(err, ErrMalformedShape):
			prom.Malformed.Inc()
		}
		packageLogger.WithError(err).WithField("type", t.String()).Debug("packet rejected")
		return nil, err
	}

	prom.PacketsDecoded.Inc()
	return p, nil
}
