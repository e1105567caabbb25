package p2p

import "fmt"

// TransactionsPacket relays opaque transaction payloads. The codec treats
// each transaction as a byte string; interpreting its contents belongs to
// the chain layer above.
//
// Wire shape: a list of byte strings, one per transaction.
type TransactionsPacket struct {
	Transactions [][]byte
}

func (p *TransactionsPacket) Type() PacketType {
	return TypeTransactions
}

func (p *TransactionsPacket) Serialize() *WireValue {
	items := make([]*WireValue, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		items = append(items, WireString(tx))
	}
	return WireList(items...)
}

func (p *TransactionsPacket) Deserialize(wire *WireValue) error {
	items, err := wire.Items()
	if err != nil {
		return err
	}
	if len(items) > MaxListElements {
		return fmt.Errorf("%d transactions exceed the cap of %d: %w", len(items), MaxListElements, ErrLimitExceeded)
	}
	if len(items) == 0 {
		p.Transactions = nil
		return nil
	}

	txs := make([][]byte, 0, len(items))
	for i, item := range items {
		tx, err := item.Bytes()
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}

	p.Transactions = txs
	return nil
}

// Handle is a no-op: transaction pool admission lives above this layer.
// Kept as the explicit extension point so the variant still reports success
// through the uniform contract.
func (p *TransactionsPacket) Handle(peer *Peer) error {
	return nil
}
