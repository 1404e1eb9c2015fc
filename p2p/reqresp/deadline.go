package reqresp

import (
	"time"

	"github.com/libp2p/go-libp2p/core/network"
)

// deadlineAdjuster wraps a substream so that every Read or Write pushes
// the stream's I/O deadline forward by idle, while never extending it
// past the fixed cutoff established when the substream was opened. This
// is what lets the IdleTimeout idle timeout and the hard per-exchange
// timeout coexist: a chatty but healthy exchange keeps resetting the idle
// clock, but can never outlive the hard deadline.
type deadlineAdjuster struct {
	network.Stream
	idle      time.Duration
	cutoff    time.Time
	hasCutoff bool
}

func newDeadlineAdjuster(s network.Stream, idle, hard time.Duration) *deadlineAdjuster {
	d := &deadlineAdjuster{Stream: s, idle: idle}
	if hard > 0 {
		d.cutoff = time.Now().Add(hard)
		d.hasCutoff = true
	}
	d.touch()
	return d
}

func (d *deadlineAdjuster) touch() {
	next := time.Now().Add(d.idle)
	if d.hasCutoff && next.After(d.cutoff) {
		next = d.cutoff
	}
	_ = d.Stream.SetDeadline(next)
}

func (d *deadlineAdjuster) Read(p []byte) (int, error) {
	n, err := d.Stream.Read(p)
	d.touch()
	return n, err
}

func (d *deadlineAdjuster) Write(p []byte) (int, error) {
	n, err := d.Stream.Write(p)
	d.touch()
	return n, err
}
