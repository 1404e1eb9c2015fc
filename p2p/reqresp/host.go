package reqresp

import (
	"context"

	"github.com/libp2p/go-libp2p/core/connmgr"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./host.go

// Host is the narrow slice of a libp2p host this package depends on. It is
// satisfied directly by *libp2p.Host and by mocknet hosts in tests; the
// swarm that owns dialing and connection lifecycle is the external
// collaborator named in the design's scope boundary.
type Host interface {
	// SetStreamHandler negotiates and accepts inbound substreams for a
	// protocol. Not calling it for a protocol is what makes that
	// protocol RoleOutboundOnly from the remote's point of view.
	SetStreamHandler(protocol.ID, network.StreamHandler)
	// RemoveStreamHandler undoes SetStreamHandler.
	RemoveStreamHandler(protocol.ID)
	// NewStream opens an outbound substream, negotiating the first of
	// pids the remote supports.
	NewStream(ctx context.Context, p peer.ID, pids ...protocol.ID) (network.Stream, error)
	// Network exposes connectedness queries.
	Network() network.Network
	// ConnManager exposes the connection manager, used for the fixed
	// per-protocol connection keep-alive and for optional decaying-tag
	// reputation bumps.
	ConnManager() connmgr.ConnManager
}
