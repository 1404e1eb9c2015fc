// Package reqresp implements a request-response multiplexer for a libp2p
// host: a node registers named request-response protocols, sends outbound
// requests to connected peers, and — for protocols it advertises as
// servable — accepts inbound requests, hands them to an external response
// producer, and returns the answer within a configured deadline.
package reqresp

import (
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
)

// RequestID identifies one outstanding outbound request. It is unique
// within the lifetime of a single Multiplexer and is retired (and may be
// reused by the allocator only in the sense that the counter keeps
// advancing, never the value) as soon as the request resolves.
type RequestID uint64

// Role describes whether a protocol accepts inbound requests in addition
// to initiating outbound ones.
type Role int

const (
	// RoleOutboundOnly protocols may only be used to initiate requests;
	// inbound substreams for them are refused at negotiation time.
	RoleOutboundOnly Role = iota
	// RoleFull protocols both initiate and accept requests.
	RoleFull
)

func (r Role) String() string {
	if r == RoleFull {
		return "full"
	}
	return "outbound-only"
}

// DecayingTagSpec configures an optional connection-manager decaying tag
// that bumps a peer each time one of its inbound substreams on a protocol
// passes admission control (before the request is read), layered underneath the submission-channel backpressure as a longer-lived
// reputation signal.
type DecayingTagSpec struct {
	Interval time.Duration `mapstructure:"interval"`
	Inc      int           `mapstructure:"inc"`
	Dec      int           `mapstructure:"dec"`
	Cap      int           `mapstructure:"cap"`
}

// ProtocolConfig configures a single request-response protocol at
// registration time. It is consumed by New and is immutable afterward.
type ProtocolConfig struct {
	// Name is the wire protocol identifier, e.g. "/foo/bar/1".
	Name string `mapstructure:"name"`

	// MaxRequestSize and MaxResponseSize bound the length-prefixed
	// payload accepted in each direction. A declared length beyond the
	// bound is rejected before any payload bytes are read.
	MaxRequestSize  int `mapstructure:"max-request-size"`
	MaxResponseSize int `mapstructure:"max-response-size"`

	// RequestTimeout bounds the entire outbound exchange: dial, write,
	// and response read.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`

	// IdleTimeout and HardTimeout bound a single substream's I/O. If
	// zero, sensible defaults are applied (25s / 5m, matching the
	// node-wide stream defaults this package was generalized from).
	IdleTimeout time.Duration `mapstructure:"idle-timeout"`
	HardTimeout time.Duration `mapstructure:"hard-timeout"`

	// InboundQueueSize bounds the number of inbound substreams admitted
	// concurrently for this protocol before new ones are refused at the
	// transport level. Defaults to 100.
	InboundQueueSize int `mapstructure:"inbound-queue-size"`

	// RequestsPerInterval and Interval rate-limit inbound substream
	// admission. Defaults to 100 per second.
	RequestsPerInterval int           `mapstructure:"requests-per-interval"`
	Interval            time.Duration `mapstructure:"interval"`

	// DecayingTag optionally enables connection-manager reputation
	// bumps for this protocol.
	DecayingTag *DecayingTagSpec

	// Submission is the channel on which accepted inbound requests are
	// delivered to the external response producer. A nil Submission
	// advertises the protocol as RoleOutboundOnly; a non-nil Submission
	// advertises RoleFull. If the channel is full or closed at the
	// moment a request arrives, the reply slot is dropped and the
	// request resolves as Busy.
	Submission chan IncomingRequest
}

// IncomingRequest is a single inbound request delivered to the response
// producer. Answer is a one-shot slot: the producer must either send
// exactly one response on it, or close it to signal that it cannot answer
// (which surfaces locally as an InboundRequestEvent with ErrBusy; the
// substream is closed without writing any bytes to the peer).
type IncomingRequest struct {
	// Origin is the peer that sent the request.
	Origin peer.ID
	// Request is the raw request payload.
	Request []byte
	// Answer is the one-shot reply slot. Send(Answer) exactly once, or
	// close(Answer) to decline.
	Answer chan<- []byte
}
