package reqresp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned synchronously by SendRequest when the
	// endpoint reports the target peer is not connected.
	ErrNotConnected = errors.New("reqresp: peer is not connected")
	// ErrUnknownProtocol is returned synchronously by SendRequest when
	// the protocol name was never registered.
	ErrUnknownProtocol = errors.New("reqresp: unknown protocol")

	// ErrBusy marks an InboundRequest outcome where the response
	// producer dropped the reply slot without answering, whether
	// because the submission channel was full, closed, or the producer
	// discarded the slot after accepting it.
	ErrBusy = errors.New("reqresp: response builder busy")

	// Outbound failure reasons. Exactly one of these (or nil, for
	// success) terminates an OutboundFinished event.
	ErrTimeout             = errors.New("reqresp: request timed out")
	ErrConnectionClosed    = errors.New("reqresp: connection closed before a response was received")
	ErrDialFailure         = errors.New("reqresp: failed to open a substream to the peer")
	ErrUnsupportedProtocol = errors.New("reqresp: peer does not support the requested protocol")
	ErrDecodeError         = errors.New("reqresp: failed to decode message")
	ErrSizeExceeded        = errors.New("reqresp: message exceeds the configured size limit")
)

// DuplicateProtocolError is returned by New when two ProtocolConfig
// entries share a name.
type DuplicateProtocolError struct {
	Name string
}

func (e *DuplicateProtocolError) Error() string {
	return fmt.Sprintf("reqresp: duplicate protocol %q", e.Name)
}

// NetworkError wraps a codec or stream failure surfaced in an
// InboundRequest outcome, distinguishing it from Busy.
type NetworkError struct {
	Reason error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("reqresp: network failure: %v", e.Reason)
}

func (e *NetworkError) Unwrap() error { return e.Reason }
