// ABOUTME: Tests for the table-change notification bus.
// ABOUTME: Covers fan-out, non-blocking coalescing, and unsubscribe.
package notify

import (
	"testing"
	"time"
)

func TestPublishFansOut(t *testing.T) {
	bus := NewBus()
	_, ch1 := bus.Subscribe()
	_, ch2 := bus.Subscribe()

	bus.Publish(Change{Table: TableEntries})

	for i, ch := range []<-chan Change{ch1, ch2} {
		select {
		case got := <-ch:
			if got.Table != TableEntries {
				t.Errorf("subscriber %d got table %q, want %q", i, got.Table, TableEntries)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never received the event", i)
		}
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, ch := bus.Subscribe()

	// Nobody reads ch; publishing repeatedly must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Change{Table: TableEntries})
		}
		bus.Publish(Change{Table: TableNutritables})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The pending event was coalesced down to the latest one.
	got := <-ch
	if got.Table != TableNutritables {
		t.Errorf("coalesced event table = %q, want %q", got.Table, TableNutritables)
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected second pending event: %+v", extra)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	id, ch := bus.Subscribe()

	bus.Unsubscribe(id)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel, got a value")
		}
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	// Publishing after unsubscribe must not panic.
	bus.Publish(Change{Table: TableFoods})
	bus.Unsubscribe(id) // double unsubscribe is a no-op
}
