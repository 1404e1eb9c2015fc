package reqresp

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mocknet "github.com/libp2p/go-libp2p/p2p/net/mock"
	"github.com/stretchr/testify/require"
)

func newLinkedPair(t *testing.T) (Host, Host) {
	t.Helper()
	mn := mocknet.New()
	a, err := mn.GenPeer()
	require.NoError(t, err)
	b, err := mn.GenPeer()
	require.NoError(t, err)
	require.NoError(t, mn.LinkAll())
	require.NoError(t, mn.ConnectAllButSelf())
	return a, b
}

func runFor(t *testing.T, m *Multiplexer) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = m.Run(ctx) }()
	return cancel
}

// S1: happy path.
func TestMultiplexerHappyPath(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	submit := make(chan IncomingRequest, 4)
	server, err := New(serverHost, []ProtocolConfig{{
		Name:             "/rq/1",
		MaxRequestSize:   1024,
		MaxResponseSize:  1024,
		RequestTimeout:   5 * time.Second,
		InboundQueueSize: 4,
		Submission:       submit,
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/1",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  5 * time.Second,
	}})
	require.NoError(t, err)
	defer runFor(t, client)()

	go func() {
		req := <-submit
		require.Equal(t, []byte{0x01, 0x02}, req.Request)
		req.Answer <- []byte{0x09}
	}()

	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/1", []byte{0x01, 0x02})
	require.NoError(t, err)

	ev := waitOutboundFinished(t, client, id)
	require.NoError(t, ev.Outcome.Err)
	require.Equal(t, []byte{0x09}, ev.Outcome.Data)

	inEv := waitInboundRequest(t, server)
	require.NoError(t, inEv.Outcome.Err)
	require.Equal(t, "/rq/1", inEv.Protocol)
}

// S2: busy — submission channel full, producer never drains.
func TestMultiplexerBusyWhenSubmissionFull(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	submit := make(chan IncomingRequest, 1)
	server, err := New(serverHost, []ProtocolConfig{{
		Name:             "/rq/1",
		MaxRequestSize:   1024,
		MaxResponseSize:  1024,
		RequestTimeout:   5 * time.Second,
		InboundQueueSize: 4,
		Submission:       submit,
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/1",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  time.Second,
	}})
	require.NoError(t, err)
	defer runFor(t, client)()

	// Fill the one submission slot and never drain it.
	submit <- IncomingRequest{}

	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/1", []byte{0xAA})
	require.NoError(t, err)

	ev := waitOutboundFinished(t, client, id)
	require.Error(t, ev.Outcome.Err)

	inEv := waitInboundRequest(t, server)
	require.ErrorIs(t, inEv.Outcome.Err, ErrBusy)
}

// S3: timeout — peer never replies.
func TestMultiplexerOutboundTimeout(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	submit := make(chan IncomingRequest, 4)
	server, err := New(serverHost, []ProtocolConfig{{
		Name:             "/rq/2",
		MaxRequestSize:   1024,
		MaxResponseSize:  1024,
		RequestTimeout:   5 * time.Second,
		InboundQueueSize: 4,
		Submission:       submit,
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/2",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  100 * time.Millisecond,
	}})
	require.NoError(t, err)
	defer runFor(t, client)()

	start := time.Now()
	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/2", []byte{0xAA})
	require.NoError(t, err)

	ev := waitOutboundFinished(t, client, id)
	require.ErrorIs(t, ev.Outcome.Err, ErrTimeout)
	require.Less(t, time.Since(start), 2*time.Second)
}

// S3b: timeout, driven by a fake clock instead of a real sleep, so the
// deadline fires deterministically without the test actually waiting out
// the configured duration.
func TestMultiplexerOutboundTimeoutWithFakeClock(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	submit := make(chan IncomingRequest, 4)
	server, err := New(serverHost, []ProtocolConfig{{
		Name:             "/rq/5",
		MaxRequestSize:   1024,
		MaxResponseSize:  1024,
		RequestTimeout:   5 * time.Second,
		InboundQueueSize: 4,
		Submission:       submit,
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	clock := clockwork.NewFakeClock()
	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/5",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  time.Hour,
	}}, WithClock(clock))
	require.NoError(t, err)
	defer runFor(t, client)()

	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/5", []byte{0xAA})
	require.NoError(t, err)

	clock.BlockUntil(1)
	clock.Advance(time.Hour)

	ev := waitOutboundFinished(t, client, id)
	require.ErrorIs(t, ev.Outcome.Err, ErrTimeout)
}

// S4: over-limit inbound — the server reports a NetworkError and the
// client's request fails.
func TestMultiplexerOverLimitInbound(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	submit := make(chan IncomingRequest, 4)
	server, err := New(serverHost, []ProtocolConfig{{
		Name:             "/rq/3",
		MaxRequestSize:   16,
		MaxResponseSize:  16,
		RequestTimeout:   5 * time.Second,
		InboundQueueSize: 4,
		Submission:       submit,
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/3",
		MaxRequestSize:  17,
		MaxResponseSize: 17,
		RequestTimeout:  time.Second,
	}})
	require.NoError(t, err)
	defer runFor(t, client)()

	oversized := make([]byte, 17)
	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/3", oversized)
	require.NoError(t, err)

	inEv := waitInboundRequest(t, server)
	require.Error(t, inEv.Outcome.Err)
	var netErr *NetworkError
	require.ErrorAs(t, inEv.Outcome.Err, &netErr)

	outEv := waitOutboundFinished(t, client, id)
	require.Error(t, outEv.Outcome.Err)
}

// S5: unknown protocol fails synchronously.
func TestMultiplexerSendRequestUnknownProtocol(t *testing.T) {
	clientHost, _ := newLinkedPair(t)
	client, err := New(clientHost, nil)
	require.NoError(t, err)
	defer runFor(t, client)()

	_, err = client.SendRequest(context.Background(), clientHost.ID(), "/nope", nil)
	require.ErrorIs(t, err, ErrUnknownProtocol)
}

// S6: outbound-only protocols refuse inbound negotiation, so a request to
// one fails.
func TestMultiplexerOutboundOnlyRefusesInbound(t *testing.T) {
	clientHost, serverHost := newLinkedPair(t)

	server, err := New(serverHost, []ProtocolConfig{{
		Name:            "/rq/4",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  5 * time.Second,
		// No Submission: RoleOutboundOnly.
	}})
	require.NoError(t, err)
	defer runFor(t, server)()

	client, err := New(clientHost, []ProtocolConfig{{
		Name:            "/rq/4",
		MaxRequestSize:  1024,
		MaxResponseSize: 1024,
		RequestTimeout:  time.Second,
	}})
	require.NoError(t, err)
	defer runFor(t, client)()

	id, err := client.SendRequest(context.Background(), serverHost.ID(), "/rq/4", []byte{0x01})
	require.NoError(t, err)

	ev := waitOutboundFinished(t, client, id)
	require.Error(t, ev.Outcome.Err)
}

func TestMultiplexerSurfacesPeerConnectedness(t *testing.T) {
	mn := mocknet.New()
	a, err := mn.GenPeer()
	require.NoError(t, err)
	b, err := mn.GenPeer()
	require.NoError(t, err)

	m, err := New(a, nil)
	require.NoError(t, err)

	require.NoError(t, mn.LinkAll())
	require.NoError(t, mn.ConnectAllButSelf())

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-m.Events():
			if pc, ok := ev.(PeerConnectednessEvent); ok {
				require.Equal(t, b.ID(), pc.Peer)
				require.True(t, pc.Connected)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for PeerConnectednessEvent")
		}
	}
}

func TestMultiplexerDuplicateProtocolRejected(t *testing.T) {
	h, _ := newLinkedPair(t)
	_, err := New(h, []ProtocolConfig{
		{Name: "/rq/1", RequestTimeout: time.Second},
		{Name: "/rq/1", RequestTimeout: time.Second},
	})
	require.Error(t, err)
	var dup *DuplicateProtocolError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "/rq/1", dup.Name)
}

func waitOutboundFinished(t *testing.T, m *Multiplexer, id RequestID) OutboundFinishedEvent {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-m.Events():
			if of, ok := ev.(OutboundFinishedEvent); ok && of.RequestID == id {
				return of
			}
		case <-deadline:
			t.Fatalf("timed out waiting for OutboundFinishedEvent for request %d", id)
		}
	}
}

func waitInboundRequest(t *testing.T, m *Multiplexer) InboundRequestEvent {
	t.Helper()
	deadline := time.After(3 * time.Second)
	select {
	case ev := <-m.Events():
		if in, ok := ev.(InboundRequestEvent); ok {
			return in
		}
		t.Fatalf("expected InboundRequestEvent, got %T", ev)
	case <-deadline:
		t.Fatal("timed out waiting for InboundRequestEvent")
	}
	return InboundRequestEvent{}
}
