package reqresp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/libp2p/go-libp2p/core/connmgr"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/novanet/reqmux/p2p/peerinfo"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	defaultIdleTimeout    = 25 * time.Second
	defaultHardTimeout    = 5 * time.Minute
	defaultInboundQueue   = 100
	defaultRequestsPerSec = 100

	// keepAliveDuration is the fixed, non-configurable connection
	// keep-alive every registered protocol installs (spec.md §3's
	// ProtocolEndpoint row and §9's keep-alive open question: hard-coded,
	// not parameterised).
	keepAliveDuration = 10 * time.Second
)

// endpointEvent is the internal tagged union an endpoint goroutine posts
// to the multiplexer's fan-in channel. It is deliberately unexported:
// hosts only ever see the Event union in events.go.
type endpointEvent interface{ isEndpointEvent() }

type requestReceivedEvent struct {
	protocol   string
	peer       peer.ID
	answer     chan []byte
	reply      ReplyStream
	acceptedAt time.Time
}

func (requestReceivedEvent) isEndpointEvent() {}

type responseReceivedEvent struct {
	protocol  string
	requestID RequestID
	data      []byte
	elapsed   time.Duration
}

func (responseReceivedEvent) isEndpointEvent() {}

type outboundFailureEvent struct {
	protocol  string
	requestID RequestID
	err       error
}

func (outboundFailureEvent) isEndpointEvent() {}

type inboundFailureEvent struct {
	peer     peer.ID
	protocol string
	err      error
}

func (inboundFailureEvent) isEndpointEvent() {}

// outboundCall tracks one in-flight outbound request so a late response
// racing a timeout (or vice versa) resolves exactly once. done signals the
// timeout watcher goroutine to exit once the call resolves by any other
// path, so it never outlives the call it is watching.
type outboundCall struct {
	stream  network.Stream
	started time.Time
	done    chan struct{}
}

// protocolEndpoint is the per-protocol component described in design
// section 4.2: it tracks connectedness, allocates and times out outbound
// requests, and accepts inbound substreams for RoleFull protocols.
type protocolEndpoint struct {
	name string
	pid  protocol.ID
	cfg  ProtocolConfig
	role Role

	host    Host
	logger  *zap.Logger
	metrics *tracker
	traffic peerinfo.PeerInfo
	clock   clockwork.Clock

	sem   *semaphore.Weighted
	limit *rate.Limiter

	decayingTag connmgr.DecayingTag

	mu       sync.Mutex
	inflight map[RequestID]*outboundCall

	kaMu     sync.Mutex
	kaTimers map[peer.ID]*time.Timer

	events chan endpointEvent

	idleTimeout time.Duration
	hardTimeout time.Duration
}

func newProtocolEndpoint(h Host, cfg ProtocolConfig, logger *zap.Logger, metrics *tracker, traffic peerinfo.PeerInfo, clock clockwork.Clock, events chan endpointEvent) *protocolEndpoint {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	role := RoleOutboundOnly
	if cfg.Submission != nil {
		role = RoleFull
	}

	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	hard := cfg.HardTimeout
	if hard <= 0 {
		hard = defaultHardTimeout
	}
	qsize := cfg.InboundQueueSize
	if qsize <= 0 {
		qsize = defaultInboundQueue
	}
	rps := cfg.RequestsPerInterval
	if rps <= 0 {
		rps = defaultRequestsPerSec
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ep := &protocolEndpoint{
		name:        cfg.Name,
		pid:         protocol.ID(cfg.Name),
		cfg:         cfg,
		role:        role,
		host:        h,
		logger:      logger,
		metrics:     metrics,
		traffic:     traffic,
		clock:       clock,
		sem:         semaphore.NewWeighted(int64(qsize)),
		limit:       rate.NewLimiter(rate.Every(interval/time.Duration(rps)), rps),
		inflight:    make(map[RequestID]*outboundCall),
		kaTimers:    make(map[peer.ID]*time.Timer),
		events:      events,
		idleTimeout: idle,
		hardTimeout: hard,
	}

	if cfg.DecayingTag != nil {
		if decayer, ok := connmgr.SupportsDecay(h.ConnManager()); ok {
			tag, err := decayer.RegisterDecayingTag(
				"reqresp:"+cfg.Name,
				cfg.DecayingTag.Interval,
				connmgr.DecayFixed(cfg.DecayingTag.Dec),
				connmgr.BumpSumBounded(0, cfg.DecayingTag.Cap),
			)
			if err != nil {
				logger.Warn("failed to register decaying tag", zap.String("protocol", cfg.Name), zap.Error(err))
			} else {
				ep.decayingTag = tag
			}
		}
	}

	if role == RoleFull {
		h.SetStreamHandler(ep.pid, ep.handleStream)
	}
	return ep
}

func (ep *protocolEndpoint) isConnected(p peer.ID) bool {
	return ep.host.Network().Connectedness(p) == network.Connected
}

// touchKeepAlive protects p's connection from the connection manager's
// pruning for keepAliveDuration past this call, the fixed per-protocol
// connection-keep-alive spec.md §3 installs at registration time.
// Repeated calls (one per exchange on this protocol) extend the window;
// once it elapses with no further activity on this protocol the
// connection is unprotected again.
func (ep *protocolEndpoint) touchKeepAlive(p peer.ID) {
	cm := ep.host.ConnManager()
	if cm == nil {
		return
	}
	tag := "reqresp-keepalive:" + ep.name
	cm.Protect(p, tag)

	ep.kaMu.Lock()
	defer ep.kaMu.Unlock()
	if t, ok := ep.kaTimers[p]; ok {
		t.Stop()
	}
	ep.kaTimers[p] = time.AfterFunc(keepAliveDuration, func() {
		cm.Unprotect(p, tag)
		ep.kaMu.Lock()
		delete(ep.kaTimers, p)
		ep.kaMu.Unlock()
	})
}

func (ep *protocolEndpoint) emit(ev endpointEvent) {
	ep.events <- ev
}

// handleStream is the libp2p stream handler for RoleFull protocols. It
// reads exactly one request, submits it for processing, and returns; the
// response is written later, once the pending-response set resolves the
// task this registers.
func (ep *protocolEndpoint) handleStream(stream network.Stream) {
	if !ep.sem.TryAcquire(1) {
		if ep.metrics != nil {
			ep.metrics.dropped.Inc()
		}
		stream.Reset()
		return
	}
	defer ep.sem.Release(1)

	if err := ep.limit.Wait(context.Background()); err != nil {
		stream.Reset()
		return
	}

	remote := stream.Conn().RemotePeer()
	ep.touchKeepAlive(remote)
	if ep.decayingTag != nil {
		ep.decayingTag.Bump(remote, ep.cfg.DecayingTag.Inc)
	}

	dadj := newDeadlineAdjuster(stream, ep.idleTimeout, ep.hardTimeout)
	rd := bufio.NewReader(dadj)
	payload, err := ReadRequest(rd, ep.cfg.MaxRequestSize)
	if err != nil {
		dadj.Close()
		if ep.metrics != nil {
			ep.metrics.failed.Inc()
		}
		ep.logger.Debug("inbound request failed",
			zap.String("protocol", ep.name),
			zap.Stringer("peer", remote),
			zap.Error(err),
		)
		ep.emit(inboundFailureEvent{peer: remote, protocol: ep.name, err: &NetworkError{Reason: err}})
		return
	}

	acceptedAt := time.Now()
	if ep.metrics != nil {
		ep.metrics.accepted.Inc()
	}
	if ep.traffic != nil {
		ep.traffic.RecordReceived(int64(len(payload)), ep.pid, remote)
	}

	answer := make(chan []byte, 1)
	ireq := IncomingRequest{Origin: remote, Request: payload, Answer: answer}
	submitted := func() (ok bool) {
		// A send on a closed Submission channel panics; treat it like a
		// full channel so the request resolves as Busy.
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		select {
		case ep.cfg.Submission <- ireq:
			return true
		default:
			return false
		}
	}()
	if !submitted {
		close(answer)
	}

	ep.emit(requestReceivedEvent{
		protocol:   ep.name,
		peer:       remote,
		answer:     answer,
		reply:      dadj,
		acceptedAt: acceptedAt,
	})
}

// sendResponse writes an answer to an accepted inbound request and closes
// the substream. Called by the multiplexer once a pending task resolves
// with OutcomePendingResponse.
func (ep *protocolEndpoint) sendResponse(reply ReplyStream, p peer.ID, data []byte) error {
	defer reply.Close()
	err := WriteResponse(reply, data)
	if err == nil {
		err = reply.CloseWrite()
	}
	if ep.metrics != nil {
		if err != nil {
			ep.metrics.failed.Inc()
		} else {
			ep.metrics.completed.Inc()
		}
	}
	if err == nil && ep.traffic != nil {
		ep.traffic.RecordSent(int64(len(data)), ep.pid, p)
	}
	return err
}

func (ep *protocolEndpoint) recordBusy() {
	if ep.metrics != nil {
		ep.metrics.busy.Inc()
	}
}

// sendRequest performs the synchronous precondition checks from design
// section 4.4 (NotConnected) and, once they pass, allocates a deadline and
// runs the dial/write/read sequence in the background. Any failure past
// this point is reported asynchronously as an OutboundFinished event,
// never as a return value.
func (ep *protocolEndpoint) sendRequest(id RequestID, p peer.ID, payload []byte, extraProtocols ...string) error {
	if !ep.isConnected(p) {
		return ErrNotConnected
	}
	ep.touchKeepAlive(p)

	call := &outboundCall{started: ep.clock.Now(), done: make(chan struct{})}
	ep.mu.Lock()
	ep.inflight[id] = call
	ep.mu.Unlock()

	go func() {
		select {
		case <-ep.clock.After(ep.cfg.RequestTimeout):
			if ep.metrics != nil {
				ep.metrics.clientTimeout.Inc()
			}
			ep.resolveOutbound(id, nil, ErrTimeout)
		case <-call.done:
		}
	}()

	go ep.runRequest(id, p, payload, extraProtocols...)
	return nil
}

func (ep *protocolEndpoint) runRequest(id RequestID, p peer.ID, payload []byte, extraProtocols ...string) {
	if len(payload) > ep.cfg.MaxRequestSize {
		ep.resolveOutbound(id, nil, ErrSizeExceeded)
		return
	}

	pids := make([]protocol.ID, 0, len(extraProtocols)+1)
	for _, s := range extraProtocols {
		pids = append(pids, protocol.ID(s))
	}
	pids = append(pids, ep.pid)

	stream, err := ep.host.NewStream(network.WithNoDial(context.Background(), "existing connection"), p, pids...)
	if err != nil {
		ep.resolveOutbound(id, nil, classifyStreamErr(err))
		return
	}

	ep.mu.Lock()
	call, ok := ep.inflight[id]
	if ok {
		call.stream = stream
	}
	ep.mu.Unlock()
	if !ok {
		// already resolved (timed out) while we were dialing
		stream.Reset()
		return
	}

	dadj := newDeadlineAdjuster(stream, ep.idleTimeout, ep.cfg.RequestTimeout)
	if err := WriteRequest(dadj, payload); err != nil {
		dadj.Close()
		ep.resolveOutbound(id, nil, ErrConnectionClosed)
		return
	}
	if err := dadj.CloseWrite(); err != nil {
		dadj.Close()
		ep.resolveOutbound(id, nil, ErrConnectionClosed)
		return
	}
	if ep.traffic != nil {
		ep.traffic.RecordSent(int64(len(payload)), ep.pid, p)
	}

	rd := bufio.NewReader(dadj)
	resp, err := ReadResponse(rd, ep.cfg.MaxResponseSize)
	dadj.Close()
	if err != nil {
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			ep.resolveOutbound(id, nil, ErrConnectionClosed)
		case errors.Is(err, ErrSizeExceeded):
			ep.resolveOutbound(id, nil, ErrSizeExceeded)
		default:
			ep.resolveOutbound(id, nil, ErrDecodeError)
		}
		return
	}
	if ep.traffic != nil {
		ep.traffic.RecordReceived(int64(len(resp)), ep.pid, p)
	}
	ep.resolveOutbound(id, resp, nil)
}

// resolveOutbound is the single choke point through which every outbound
// request terminates. The map delete under lock is the exactly-once guard
// invariant 3 (spec section 8) depends on: whichever of the timeout timer
// or the read goroutine gets here first wins, and the loser's event is
// silently discarded because its lookup misses.
func (ep *protocolEndpoint) resolveOutbound(id RequestID, data []byte, failErr error) {
	ep.mu.Lock()
	call, ok := ep.inflight[id]
	if ok {
		delete(ep.inflight, id)
	}
	ep.mu.Unlock()
	if !ok {
		return
	}
	close(call.done)

	elapsed := ep.clock.Now().Sub(call.started)
	if failErr != nil {
		if call.stream != nil {
			call.stream.Reset()
		}
		if ep.metrics != nil {
			ep.metrics.clientFailed.Inc()
		}
		ep.emit(outboundFailureEvent{protocol: ep.name, requestID: id, err: failErr})
		return
	}
	if ep.metrics != nil {
		ep.metrics.clientSucceeded.Inc()
		ep.metrics.clientLatency.Observe(elapsed.Seconds())
	}
	ep.emit(responseReceivedEvent{protocol: ep.name, requestID: id, data: data, elapsed: elapsed})
}

// classifyStreamErr maps a NewStream failure to an outbound failure
// reason. go-libp2p does not export a stable sentinel distinguishing
// "dial failed" from "peer doesn't speak this protocol" across its
// transports, so this falls back to matching the multistream negotiation
// failure's message; anything else is treated as a dial failure.
func classifyStreamErr(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "protocol") && strings.Contains(msg, "not supported") {
		return fmt.Errorf("%w: %v", ErrUnsupportedProtocol, err)
	}
	return fmt.Errorf("%w: %v", ErrDialFailure, err)
}
