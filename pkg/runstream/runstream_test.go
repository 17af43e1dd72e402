package runstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run-1")
	defer cancel()

	b.Publish("run-1", Event{RunID: "run-1", Seq: 1, Name: "parse_request"})

	select {
	case event := <-ch:
		assert.Equal(t, 1, event.Seq)
		assert.Equal(t, "parse_request", event.Name)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestLateSubscriberGetsReplay(t *testing.T) {
	b := NewBroker()

	b.Publish("run-1", Event{Seq: 1, Name: "parse_request"})
	b.Publish("run-1", Event{Seq: 2, Name: "load_rates"})

	ch, cancel := b.Subscribe("run-1")
	defer cancel()

	first := <-ch
	second := <-ch
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
}

func TestCloseEndsSubscribers(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run-1")
	defer cancel()

	b.Publish("run-1", Event{Seq: 1})
	b.Close("run-1")

	<-ch
	_, open := <-ch
	assert.False(t, open)

	// publishing after close is a no-op
	b.Publish("run-1", Event{Seq: 2})
}

func TestSubscribeAfterClose(t *testing.T) {
	b := NewBroker()

	b.Publish("run-1", Event{Seq: 1})
	b.Close("run-1")

	ch, cancel := b.Subscribe("run-1")
	defer cancel()

	event, open := <-ch
	require.True(t, open)
	assert.Equal(t, 1, event.Seq)

	_, open = <-ch
	assert.False(t, open)
}

func TestCloseEvictsAfterRetention(t *testing.T) {
	b := NewBroker()
	b.retention = 10 * time.Millisecond

	b.Publish("run-1", Event{Seq: 1})
	b.Close("run-1")

	b.mu.Lock()
	_, held := b.topics["run-1"]
	b.mu.Unlock()
	assert.True(t, held)

	assert.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		_, ok := b.topics["run-1"]
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestIndependentRuns(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe("run-1")
	defer cancel1()
	ch2, cancel2 := b.Subscribe("run-2")
	defer cancel2()

	b.Publish("run-2", Event{Seq: 1, RunID: "run-2"})

	select {
	case event := <-ch2:
		assert.Equal(t, "run-2", event.RunID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case <-ch1:
		t.Fatal("event leaked across runs")
	default:
	}
}

func TestDrop(t *testing.T) {
	b := NewBroker()

	ch, _ := b.Subscribe("run-1")
	b.Publish("run-1", Event{Seq: 1})
	b.Drop("run-1")

	<-ch
	_, open := <-ch
	assert.False(t, open)

	// a fresh subscription sees no history
	ch2, cancel := b.Subscribe("run-1")
	defer cancel()
	select {
	case <-ch2:
		t.Fatal("history survived drop")
	default:
	}
}
