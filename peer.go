package p2p

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

var peerLogger = packageLogger.WithField("subpack", "peer")

// maxKnownBlocks caps the per-peer knowledge set. When the cap is reached an
// arbitrary old entry is evicted for every new one, keeping memory per peer
// bounded regardless of how long the connection lives.
const maxKnownBlocks = 1024

// Peer is the handle the dispatcher passes to Packet.Handle: the identity
// and protocol state of the remote node a packet arrived from. It tracks
// which blocks the peer has claimed knowledge of, so upstream sync logic can
// avoid re-announcing them.
//
// A Peer is safe for concurrent use; the knowledge set has its own lock and
// no packet operation touches state shared between peers.
type Peer struct {
	NodeID   NodeID
	Endpoint string

	logger *log.Entry

	mtx         sync.RWMutex
	knownBlocks map[Digest]uint64 // hash -> announced block number
	headHash    Digest
	headNumber  uint64

	conf *Configuration
}

// NewPeer initializes a peer handle for the given identity
func NewPeer(conf *Configuration, id NodeID, endpoint string) *Peer {
	p := new(Peer)
	p.conf = conf
	p.NodeID = id
	p.Endpoint = endpoint
	p.knownBlocks = make(map[Digest]uint64)
	p.logger = peerLogger.WithFields(log.Fields{
		"node":     id.String()[:8],
		"endpoint": endpoint,
	})
	return p
}

// MarkBlock records that the peer claims knowledge of the given block
func (p *Peer) MarkBlock(hash Digest, number uint64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if _, ok := p.knownBlocks[hash]; !ok && len(p.knownBlocks) >= maxKnownBlocks {
		for h := range p.knownBlocks {
			delete(p.knownBlocks, h)
			break
		}
	}
	p.knownBlocks[hash] = number
}

// KnowsBlock reports whether the peer has advertised the given block
func (p *Peer) KnowsBlock(hash Digest) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	_, ok := p.knownBlocks[hash]
	return ok
}

// KnownBlockCount returns the size of the peer's knowledge set
func (p *Peer) KnownBlockCount() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return len(p.knownBlocks)
}

// setHead updates the peer's announced chain head
func (p *Peer) setHead(hash Digest, number uint64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.headHash = hash
	p.headNumber = number
}

// Head returns the chain head the peer last announced
func (p *Peer) Head() (Digest, uint64) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.headHash, p.headNumber
}

// Deliver runs a packet's protocol action against this peer
func (p *Peer) Deliver(pkt Packet) error {
	if err := pkt.Handle(p); err != nil {
		return err
	}
	prom.PacketsHandled.Inc()
	return nil
}
