package p2p

import "fmt"

// BlockAnnouncement is a single entry of a block hash advertisement: the
// hash of a block the peer has seen and the number it claims for it.
type BlockAnnouncement struct {
	Hash   Digest
	Number uint64
}

// NewBlockHashesPacket advertises blocks the sender has newly seen. The
// order of the announcements is significant: it reflects the order in which
// the sender advertised them, and decode preserves it.
//
// On the wire each announcement is a 2-element list [hash, number] and the
// packet is the list of those pairs. A packet with zero announcements
// encodes to, and decodes from, an empty list.
type NewBlockHashesPacket struct {
	Announcements []BlockAnnouncement
}

func (p *NewBlockHashesPacket) Type() PacketType {
	return TypeNewBlockHashes
}

func (p *NewBlockHashesPacket) Serialize() *WireValue {
	items := make([]*WireValue, 0, len(p.Announcements))
	for _, a := range p.Announcements {
		items = append(items, WireList(WireString(a.Hash[:]), WireUint(a.Number)))
	}
	return WireList(items...)
}

func (p *NewBlockHashesPacket) Deserialize(wire *WireValue) error {
	pairs, err := wire.Items()
	if err != nil {
		return err
	}
	if len(pairs) > MaxListElements {
		return fmt.Errorf("%d block announcements exceed the cap of %d: %w", len(pairs), MaxListElements, ErrLimitExceeded)
	}
	if len(pairs) == 0 {
		p.Announcements = nil
		return nil
	}

	announcements := make([]BlockAnnouncement, 0, len(pairs))
	for i, pair := range pairs {
		fields, err := pair.Items()
		if err != nil {
			return fmt.Errorf("announcement %d: %w", i, err)
		}
		if len(fields) != 2 {
			return fmt.Errorf("announcement %d has %d fields, want 2: %w", i, len(fields), ErrMalformedShape)
		}

		raw, err := fields[0].Bytes()
		if err != nil {
			return fmt.Errorf("announcement %d hash: %w", i, err)
		}
		hash, err := DigestFromBytes(raw)
		if err != nil {
			return fmt.Errorf("announcement %d hash: %w", i, err)
		}
		number, err := fields[1].Uint()
		if err != nil {
			return fmt.Errorf("announcement %d number: %w", i, err)
		}

		announcements = append(announcements, BlockAnnouncement{Hash: hash, Number: number})
	}

	p.Announcements = announcements
	return nil
}

// Handle records the peer's claimed knowledge of the advertised blocks
func (p *NewBlockHashesPacket) Handle(peer *Peer) error {
	for _, a := range p.Announcements {
		peer.MarkBlock(a.Hash, a.Number)
	}
	peer.logger.WithField("count", len(p.Announcements)).Debug("peer advertised new blocks")
	return nil
}
