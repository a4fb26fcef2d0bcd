package storage

import (
	"context"
	"log"
	"time"
)

const (
	queueSize    = 64
	writeTimeout = 10 * time.Second
	drainTimeout = 5 * time.Second
)

// AsyncRecorder decouples handlers from persistence latency. Record
// never blocks: interactions go onto a bounded queue and a single
// worker writes them out, so a slow or dead database cannot delay the
// next chat event. Callers get no completion signal and no error; write
// failures are logged here and nowhere else. Persisted order is not
// part of the contract.
type AsyncRecorder struct {
	rec   Recorder
	queue chan Interaction
	done  chan struct{}
}

func NewAsyncRecorder(rec Recorder) *AsyncRecorder {
	a := &AsyncRecorder{
		rec:   rec,
		queue: make(chan Interaction, queueSize),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

// Record enqueues ev for background persistence. When the queue is full
// the event is dropped and logged rather than blocking the caller.
func (a *AsyncRecorder) Record(ev Interaction) {
	select {
	case a.queue <- ev:
	default:
		log.Printf("storage: queue full, dropping interaction for user %d", ev.UserID)
	}
}

func (a *AsyncRecorder) run() {
	defer close(a.done)
	for ev := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := a.rec.RecordInteraction(ctx, ev); err != nil {
			log.Printf("storage: failed to record interaction for user %d: %v", ev.UserID, err)
		}
		cancel()
	}
}

// Close stops intake and waits up to drainTimeout for queued writes.
// Anything still unwritten after the deadline is lost. Record must not
// be called after Close.
func (a *AsyncRecorder) Close() {
	close(a.queue)
	select {
	case <-a.done:
	case <-time.After(drainTimeout):
		log.Printf("storage: drain timed out, %d interaction(s) dropped", len(a.queue))
	}
}
