package reqresp

import (
	"io"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
)

// ReplyStream is the write side of an accepted inbound request's
// substream: write the response, then close it. Implemented by
// *deadlineAdjuster in production and by fakeReply in tests.
type ReplyStream interface {
	io.Writer
	io.Closer
	CloseWrite() error
}

// OutcomeKind distinguishes the two ways a pending-response task can
// resolve.
type OutcomeKind int

const (
	// OutcomePendingResponse means the external producer answered.
	OutcomePendingResponse OutcomeKind = iota
	// OutcomeBusy means the producer dropped the reply slot unanswered.
	OutcomeBusy
)

// Task is one inbound request whose answer is being built externally.
type Task struct {
	Protocol   string
	Peer       peer.ID
	Answer     <-chan []byte
	Reply      ReplyStream
	AcceptedAt time.Time
}

// Outcome is what a Task resolves to.
type Outcome struct {
	Kind       OutcomeKind
	Protocol   string
	Peer       peer.ID
	Reply      ReplyStream
	Data       []byte
	AcceptedAt time.Time
}

// PendingSet is a dynamic, unordered collection of in-flight
// "response being built externally" tasks. It is the Go-idiomatic analog
// of a FuturesUnordered: each Push spawns a goroutine that blocks on
// exactly one channel receive and reports its single outcome on a shared
// fan-in channel, which Results exposes for draining. Insertion is safe
// to call concurrently with draining; a task is visible on Results as
// soon as — and only as soon as — its answer channel yields or closes.
type PendingSet struct {
	results chan Outcome
}

// NewPendingSet creates a set whose completion fan-in is buffered to
// capacity; a full buffer only slows down delivery of completed outcomes,
// it never blocks Push itself (Push's goroutine blocks on sending its own
// outcome, not on accepting new work).
func NewPendingSet(capacity int) *PendingSet {
	return &PendingSet{results: make(chan Outcome, capacity)}
}

// Push adds a new task to the set. It returns immediately; the task
// resolves asynchronously and is observed via Results.
func (p *PendingSet) Push(t Task) {
	go func() {
		data, ok := <-t.Answer
		if ok {
			p.results <- Outcome{
				Kind:       OutcomePendingResponse,
				Protocol:   t.Protocol,
				Peer:       t.Peer,
				Reply:      t.Reply,
				Data:       data,
				AcceptedAt: t.AcceptedAt,
			}
			return
		}
		p.results <- Outcome{
			Kind:       OutcomeBusy,
			Protocol:   t.Protocol,
			Peer:       t.Peer,
			Reply:      t.Reply,
			AcceptedAt: t.AcceptedAt,
		}
	}()
}

// Results is the channel every resolved Task's Outcome is delivered on,
// exactly once per Task.
func (p *PendingSet) Results() <-chan Outcome {
	return p.results
}
