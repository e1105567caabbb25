package p2p

import "fmt"

// PacketType is the numeric code point identifying a packet variant in the
// protocol's packet-type space. The dispatcher routes an incoming tagged
// message to the matching variant's decoder by this code.
type PacketType uint8

const ( // iota is reset to 0
	TypeStatus         PacketType = iota // 0x00 - chain state exchange after connecting
	TypeNewBlockHashes                   // 0x01 - "here are blocks I've just seen"
	TypeTransactions                     // 0x02 - relayed transaction payloads
)

var typeStrings = map[PacketType]string{
	TypeStatus:         "Status",
	TypeNewBlockHashes: "NewBlockHashes",
	TypeTransactions:   "Transactions",
}

func (t PacketType) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(%#x)", uint8(t))
}
