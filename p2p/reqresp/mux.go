package reqresp

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/multiformats/go-multiaddr"
	"github.com/novanet/reqmux/p2p/peerinfo"
	"go.uber.org/zap"
)

// Option configures a Multiplexer at construction time.
type Option func(*Multiplexer)

// WithLog sets the structured logger used for per-substream failures.
func WithLog(l *zap.Logger) Option {
	return func(m *Multiplexer) { m.logger = l }
}

// WithMetrics enables prometheus metric collection, one tracker per
// registered protocol.
func WithMetrics() Option {
	return func(m *Multiplexer) { m.metricsEnabled = true }
}

// WithEventBuffer overrides the default size of the multiplexer's
// internal fan-in and outward event channels.
func WithEventBuffer(n int) Option {
	return func(m *Multiplexer) { m.bufferSize = n }
}

// WithPeerInfo attaches a traffic registry every endpoint reports sent and
// received byte counts to. Without it, no per-peer accounting happens.
func WithPeerInfo(pi peerinfo.PeerInfo) Option {
	return func(m *Multiplexer) { m.traffic = pi }
}

// WithClock overrides the clock every endpoint's outbound-request timeout
// bookkeeping runs against. Defaults to the real clock; tests substitute
// a clockwork.FakeClock for deterministic timeout assertions. It has no
// effect on stream I/O deadlines, which always run against real time
// since the runtime enforces them independently of this clock.
func WithClock(c clockwork.Clock) Option {
	return func(m *Multiplexer) { m.clock = c }
}

// Multiplexer is the request-response behaviour: a mapping from protocol
// name to per-protocol endpoint, a pending-response set, and the single
// cooperative step (Run/Progress) that drains both and surfaces events to
// the host.
type Multiplexer struct {
	host           Host
	logger         *zap.Logger
	metricsEnabled bool
	bufferSize     int
	traffic        peerinfo.PeerInfo
	clock          clockwork.Clock

	// sessionID correlates every log line emitted by one Multiplexer
	// instance across its lifetime, independent of RequestID (which is
	// only allocated for outbound requests).
	sessionID uuid.UUID

	mu        sync.RWMutex
	endpoints map[string]*protocolEndpoint

	nextID atomic.Uint64

	events  chan endpointEvent
	pending *PendingSet
	out     chan Event
}

// New registers the given protocols and returns a ready-to-run
// Multiplexer, or a *DuplicateProtocolError if two configs share a name.
// Registration either fully succeeds or has no effect: the duplicate
// check runs before any protocol's stream handler is installed.
func New(h Host, configs []ProtocolConfig, opts ...Option) (*Multiplexer, error) {
	m := &Multiplexer{
		host:       h,
		logger:     zap.NewNop(),
		bufferSize: 256,
		sessionID:  uuid.New(),
		endpoints:  make(map[string]*protocolEndpoint, len(configs)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = clockwork.NewRealClock()
	}
	m.logger = m.logger.With(zap.Stringer("session", m.sessionID))
	m.events = make(chan endpointEvent, m.bufferSize)
	m.pending = NewPendingSet(m.bufferSize)
	m.out = make(chan Event, m.bufferSize)

	seen := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		if _, ok := seen[cfg.Name]; ok {
			return nil, &DuplicateProtocolError{Name: cfg.Name}
		}
		seen[cfg.Name] = struct{}{}
	}

	for _, cfg := range configs {
		var tr *tracker
		if m.metricsEnabled {
			tr = newTracker(cfg.Name)
		}
		m.endpoints[cfg.Name] = newProtocolEndpoint(h, cfg, m.logger, tr, m.traffic, m.clock, m.events)
	}

	h.Network().Notify(&connectednessNotifiee{m: m})
	return m, nil
}

// connectednessNotifiee forwards the swarm's connect/disconnect signals as
// PeerConnectednessEvent, the pass-through transport control event named
// in design section 5: the original behaviour relays these untouched
// rather than interpreting them.
type connectednessNotifiee struct {
	m *Multiplexer
}

func (n *connectednessNotifiee) Listen(network.Network, multiaddr.Multiaddr)      {}
func (n *connectednessNotifiee) ListenClose(network.Network, multiaddr.Multiaddr) {}

func (n *connectednessNotifiee) Connected(_ network.Network, c network.Conn) {
	n.m.emit(PeerConnectednessEvent{Peer: c.RemotePeer(), Connected: true})
}

func (n *connectednessNotifiee) Disconnected(_ network.Network, c network.Conn) {
	n.m.emit(PeerConnectednessEvent{Peer: c.RemotePeer(), Connected: false})
}

// SendRequest initiates an outbound request. It fails synchronously only
// with ErrUnknownProtocol or ErrNotConnected; every other failure mode
// (timeout, dial failure, unsupported protocol, decode error, size
// exceeded) resolves asynchronously as an OutboundFinishedEvent carrying
// the returned RequestID.
func (m *Multiplexer) SendRequest(_ context.Context, p peer.ID, protocolName string, payload []byte, extraProtocols ...string) (RequestID, error) {
	ep := m.lookup(protocolName)
	if ep == nil {
		return 0, ErrUnknownProtocol
	}
	id := RequestID(m.nextID.Add(1))
	if err := ep.sendRequest(id, p, payload, extraProtocols...); err != nil {
		return 0, err
	}
	return id, nil
}

// SessionID identifies this Multiplexer instance for log correlation
// across the lifetime of a node process; it is independent of RequestID,
// which is only ever allocated for outbound requests.
func (m *Multiplexer) SessionID() uuid.UUID {
	return m.sessionID
}

// Connected reports whether the local node is connected to p at the
// protocol level for the named protocol.
func (m *Multiplexer) Connected(protocolName string, p peer.ID) bool {
	ep := m.lookup(protocolName)
	return ep != nil && ep.isConnected(p)
}

func (m *Multiplexer) lookup(name string) *protocolEndpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.endpoints[name]
}

// Events exposes the outward event stream for hosts that prefer to range
// over a channel instead of calling Progress in a loop.
func (m *Multiplexer) Events() <-chan Event {
	return m.out
}

// Progress is the single cooperative step a host drives: it returns the
// next Event, or ctx.Err() once ctx is done.
func (m *Multiplexer) Progress(ctx context.Context) (Event, error) {
	select {
	case ev := <-m.out:
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run drives the multiplexer until ctx is canceled. It is the
// continuously-running Go rendition of the cooperative progress loop in
// design section 4.4: every iteration first handles every pending-response
// outcome already delivered on Results, then waits for the next outcome or
// endpoint event. A task pushed while handling an endpoint event is watched
// by its own goroutine from the moment of Push; its outcome is handled on
// the first iteration after its answer channel yields or closes, with no
// ordering guarantee relative to endpoint events arriving meanwhile.
func (m *Multiplexer) Run(ctx context.Context) error {
	for {
		m.drainPending()

		select {
		case <-ctx.Done():
			return nil
		case outcome := <-m.pending.Results():
			m.handleOutcome(outcome)
		case ev := <-m.events:
			m.handleEndpointEvent(ev)
		}
	}
}

func (m *Multiplexer) drainPending() {
	for {
		select {
		case outcome := <-m.pending.Results():
			m.handleOutcome(outcome)
		default:
			return
		}
	}
}

func (m *Multiplexer) handleOutcome(o Outcome) {
	switch o.Kind {
	case OutcomePendingResponse:
		ep := m.lookup(o.Protocol)
		if ep == nil {
			// defensive: the protocol cannot be unregistered mid-flight
			// in this design, but a task must never hang a reply open.
			o.Reply.Close()
			return
		}
		if err := ep.sendResponse(o.Reply, o.Peer, o.Data); err != nil {
			m.emit(InboundRequestEvent{
				Peer:     o.Peer,
				Protocol: o.Protocol,
				Outcome:  InboundOutcome{Err: &NetworkError{Reason: err}},
			})
			return
		}
		elapsed := time.Since(o.AcceptedAt)
		if ep.metrics != nil {
			ep.metrics.serverLatency.Observe(elapsed.Seconds())
		}
		m.emit(InboundRequestEvent{
			Peer:     o.Peer,
			Protocol: o.Protocol,
			Outcome:  InboundOutcome{Elapsed: elapsed},
		})
	case OutcomeBusy:
		o.Reply.Close()
		if ep := m.lookup(o.Protocol); ep != nil {
			ep.recordBusy()
		}
		m.emit(InboundRequestEvent{
			Peer:     o.Peer,
			Protocol: o.Protocol,
			Outcome:  InboundOutcome{Err: ErrBusy},
		})
	}
}

func (m *Multiplexer) handleEndpointEvent(ev endpointEvent) {
	switch e := ev.(type) {
	case requestReceivedEvent:
		m.pending.Push(Task{
			Protocol:   e.protocol,
			Peer:       e.peer,
			Answer:     e.answer,
			Reply:      e.reply,
			AcceptedAt: e.acceptedAt,
		})
	case responseReceivedEvent:
		m.emit(OutboundFinishedEvent{RequestID: e.requestID, Outcome: OutboundOutcome{Data: e.data}})
	case outboundFailureEvent:
		m.emit(OutboundFinishedEvent{RequestID: e.requestID, Outcome: OutboundOutcome{Err: e.err}})
	case inboundFailureEvent:
		m.emit(InboundRequestEvent{Peer: e.peer, Protocol: e.protocol, Outcome: InboundOutcome{Err: e.err}})
	}
}

func (m *Multiplexer) emit(ev Event) {
	m.out <- ev
}
