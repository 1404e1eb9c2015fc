package peerinfo

import (
	"testing"

	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/libp2p/go-libp2p/core/test"
	"github.com/stretchr/testify/require"
)

func TestRegistryRecordsPerPeerAndGlobalTotals(t *testing.T) {
	r := NewRegistry(8)
	p1 := test.RandPeerIDFatal(t)
	p2 := test.RandPeerIDFatal(t)
	proto := protocol.ID("/rq/1")

	r.RecordSent(10, proto, p1)
	r.RecordReceived(3, proto, p1)
	r.RecordSent(5, proto, p2)

	info1 := r.EnsurePeerInfo(p1)
	require.ElementsMatch(t, []protocol.ID{proto}, info1.Protocols())
	snap1 := info1.ensureProtoStats(proto).Snapshot()
	require.EqualValues(t, 10, snap1.Sent)
	require.EqualValues(t, 3, snap1.Received)

	global := r.EnsureProtoStats(proto).Snapshot()
	require.EqualValues(t, 15, global.Sent)
	require.EqualValues(t, 3, global.Received)
}

func TestRegistryEvictsLeastRecentlyUsedPeer(t *testing.T) {
	r := NewRegistry(1)
	p1 := test.RandPeerIDFatal(t)
	p2 := test.RandPeerIDFatal(t)

	first := r.EnsurePeerInfo(p1)
	first.ensureProtoStats("/rq/1").recordSent(1)

	r.EnsurePeerInfo(p2)

	// p1 was evicted to make room for p2; EnsurePeerInfo allocates a fresh
	// record rather than resurrecting the old one.
	again := r.EnsurePeerInfo(p1)
	require.Empty(t, again.Protocols())
}
