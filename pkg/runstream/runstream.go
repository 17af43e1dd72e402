package runstream

import (
	"sync"
	"time"
)

// defaultRetention is how long a closed run's history stays replayable
// for late subscribers before the topic is dropped.
const defaultRetention = 5 * time.Minute

// Event is one pipeline step as it happens.
type Event struct {
	RunID  string `json:"run_id"`
	Seq    int    `json:"seq"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Broker fans pipeline events out to live subscribers per run. Events
// published before any subscriber arrives are buffered and replayed on
// subscribe, so a client connecting mid-run still sees the whole trace.
type Broker struct {
	mu        sync.Mutex
	topics    map[string]*topic
	retention time.Duration
}

type topic struct {
	history []Event
	subs    map[chan Event]struct{}
	closed  bool
}

func NewBroker() *Broker {
	return &Broker{
		topics:    make(map[string]*topic),
		retention: defaultRetention,
	}
}

// Publish records an event for the run and delivers it to subscribers.
// A slow subscriber is skipped rather than blocking the writer.
func (b *Broker) Publish(runID string, event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topic(runID)
	if t.closed {
		return
	}

	t.history = append(t.history, event)
	for ch := range t.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe returns a channel of events for the run, starting with a
// replay of everything published so far. The channel is closed when the
// run finishes or the caller unsubscribes.
func (b *Broker) Subscribe(runID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topic(runID)

	ch := make(chan Event, 64+len(t.history))
	for _, event := range t.history {
		ch <- event
	}

	if t.closed {
		close(ch)
		return ch, func() {}
	}

	t.subs[ch] = struct{}{}

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := t.subs[ch]; ok {
			delete(t.subs, ch)
			close(ch)
		}
	}

	return ch, cancel
}

// Close marks the run finished and closes all subscriber channels. The
// history stays available for late subscribers for the retention window,
// then the topic is dropped.
func (b *Broker) Close(runID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[runID]
	if !ok || t.closed {
		return
	}

	t.closed = true
	for ch := range t.subs {
		delete(t.subs, ch)
		close(ch)
	}

	time.AfterFunc(b.retention, func() {
		b.Drop(runID)
	})
}

// Drop forgets a run entirely.
func (b *Broker) Drop(runID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if t, ok := b.topics[runID]; ok {
		for ch := range t.subs {
			delete(t.subs, ch)
			close(ch)
		}
		delete(b.topics, runID)
	}
}

func (b *Broker) topic(runID string) *topic {
	t, ok := b.topics[runID]
	if !ok {
		t = &topic{subs: make(map[chan Event]struct{})}
		b.topics[runID] = t
	}
	return t
}
