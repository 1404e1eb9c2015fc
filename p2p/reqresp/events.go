package reqresp

import (
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
)

// Event is the tagged union the multiplexer surfaces to its host: an
// InboundRequestEvent, an OutboundFinishedEvent, or a pass-through
// PeerConnectednessEvent.
type Event interface {
	isEvent()
}

// InboundOutcome reports how an inbound request that reached SUBMITTED
// was resolved. Exactly one of (Err == nil, Err == ErrBusy, Err is a
// *NetworkError) holds. Elapsed is only meaningful when Err == nil and is
// for statistics only; it never influences protocol behaviour.
type InboundOutcome struct {
	Elapsed time.Duration
	Err     error
}

// OutboundOutcome reports how a request issued via SendRequest resolved.
// Err is nil on success, or one of ErrTimeout, ErrConnectionClosed,
// ErrDialFailure, ErrUnsupportedProtocol, ErrDecodeError, ErrSizeExceeded.
type OutboundOutcome struct {
	Data []byte
	Err  error
}

// InboundRequestEvent is emitted once for every inbound request that
// reached SUBMITTED, for statistics and operational visibility.
type InboundRequestEvent struct {
	Peer     peer.ID
	Protocol string
	Outcome  InboundOutcome
}

func (InboundRequestEvent) isEvent() {}

// OutboundFinishedEvent is emitted exactly once for every RequestID
// returned by SendRequest.
type OutboundFinishedEvent struct {
	RequestID RequestID
	Outcome   OutboundOutcome
}

func (OutboundFinishedEvent) isEvent() {}

// PeerConnectednessEvent is a pass-through transport control signal: the
// underlying host opened (Connected true) or closed (Connected false) a
// connection to Peer. It is emitted once per connection, so a peer with
// several connections produces several of these events. It carries
// no protocol name, since connectedness is a host-level, not
// protocol-level, property; handlers that care about a specific protocol
// should cross-reference Multiplexer.Connected.
type PeerConnectednessEvent struct {
	Peer      peer.ID
	Connected bool
}

func (PeerConnectednessEvent) isEvent() {}
