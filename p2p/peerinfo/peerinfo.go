// Package peerinfo tracks lightweight per-peer and per-protocol traffic
// statistics for the request-response multiplexer. It exists purely for
// operational visibility: nothing in p2p/reqresp's protocol behaviour
// depends on what it records.
package peerinfo

import (
	"sync"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DataStats accumulates byte counters for one protocol, either scoped to a
// single peer (Info.protocols) or aggregated across all peers (Registry's
// global table).
type DataStats struct {
	mu           sync.Mutex
	Sent         uint64
	Received     uint64
	LastSent     time.Time
	LastReceived time.Time
}

func (d *DataStats) recordSent(n int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Sent += uint64(n)
	d.LastSent = time.Now()
}

func (d *DataStats) recordReceived(n int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Received += uint64(n)
	d.LastReceived = time.Now()
}

// Snapshot returns a copy of the current counters, safe to read under
// concurrent writes.
func (d *DataStats) Snapshot() DataStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DataStats{Sent: d.Sent, Received: d.Received, LastSent: d.LastSent, LastReceived: d.LastReceived}
}

// Info is one peer's traffic record, broken down by protocol.
type Info struct {
	ID peer.ID

	mu        sync.Mutex
	protocols map[protocol.ID]*DataStats
}

func newInfo(p peer.ID) *Info {
	return &Info{ID: p, protocols: make(map[protocol.ID]*DataStats)}
}

func (i *Info) ensureProtoStats(proto protocol.ID) *DataStats {
	i.mu.Lock()
	defer i.mu.Unlock()
	st, ok := i.protocols[proto]
	if !ok {
		st = &DataStats{}
		i.protocols[proto] = st
	}
	return st
}

// Protocols lists the protocols this peer has exchanged traffic on.
func (i *Info) Protocols() []protocol.ID {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]protocol.ID, 0, len(i.protocols))
	for p := range i.protocols {
		out = append(out, p)
	}
	return out
}

// PeerInfo is the traffic-accounting surface p2p/reqresp's endpoints
// report through. It is satisfied by *Registry; tests substitute a mock.
type PeerInfo interface {
	EnsurePeerInfo(peer.ID) *Info
	EnsureProtoStats(protocol.ID) *DataStats
	Protocols() []protocol.ID
	RecordReceived(n int64, proto protocol.ID, p peer.ID)
	RecordSent(n int64, proto protocol.ID, p peer.ID)
}

const defaultPeerCacheSize = 4096

// Registry is the default PeerInfo implementation. Per-peer records are
// kept in a bounded LRU so a node that has talked to many transient peers
// over its lifetime doesn't grow this table without bound; global
// per-protocol totals are kept separately and never evicted, since the
// protocol set is small and fixed at registration time.
type Registry struct {
	peers *lru.Cache[peer.ID, *Info]

	mu        sync.Mutex
	protocols map[protocol.ID]*DataStats
}

// NewRegistry creates a Registry whose peer table holds at most size
// entries, evicting the least recently used peer once full. A zero or
// negative size falls back to defaultPeerCacheSize.
func NewRegistry(size int) *Registry {
	if size <= 0 {
		size = defaultPeerCacheSize
	}
	cache, err := lru.New[peer.ID, *Info](size)
	if err != nil {
		// Only returns an error for a non-positive size, which is
		// excluded above.
		panic("peerinfo: " + err.Error())
	}
	return &Registry{peers: cache, protocols: make(map[protocol.ID]*DataStats)}
}

// EnsurePeerInfo returns p's traffic record, creating it if this is the
// first time p has been seen. Creating a new entry may evict the least
// recently used existing peer.
func (r *Registry) EnsurePeerInfo(p peer.ID) *Info {
	if info, ok := r.peers.Get(p); ok {
		return info
	}
	info := newInfo(p)
	r.peers.Add(p, info)
	return info
}

// EnsureProtoStats returns the node-wide traffic totals for proto,
// aggregated across every peer, creating the entry if this is the first
// traffic recorded for it.
func (r *Registry) EnsureProtoStats(proto protocol.ID) *DataStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.protocols[proto]
	if !ok {
		st = &DataStats{}
		r.protocols[proto] = st
	}
	return st
}

// Protocols lists every protocol with recorded traffic, node-wide.
func (r *Registry) Protocols() []protocol.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]protocol.ID, 0, len(r.protocols))
	for p := range r.protocols {
		out = append(out, p)
	}
	return out
}

// RecordReceived accounts n bytes received on proto from p, updating both
// the peer-scoped and the node-wide protocol counters.
func (r *Registry) RecordReceived(n int64, proto protocol.ID, p peer.ID) {
	r.EnsurePeerInfo(p).ensureProtoStats(proto).recordReceived(n)
	r.EnsureProtoStats(proto).recordReceived(n)
}

// RecordSent is the send-direction counterpart of RecordReceived.
func (r *Registry) RecordSent(n int64, proto protocol.ID, p peer.ID) {
	r.EnsurePeerInfo(p).ensureProtoStats(proto).recordSent(n)
	r.EnsureProtoStats(proto).recordSent(n)
}
