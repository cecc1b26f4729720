package prefs

import (
	"testing"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

func TestSubscribeAndDeliver(t *testing.T) {
	hub := NewHub(nil, nil)

	ch, cancel := hub.Subscribe("device-1")
	defer cancel()
	other, cancelOther := hub.Subscribe("device-2")
	defer cancelOther()

	event := Event{
		DeviceID:    "device-1",
		Preferences: model.Preferences{DeviceID: "device-1", DarkMode: true, FontSize: model.FontMedium},
	}
	hub.deliver(event)

	select {
	case got := <-ch:
		if !got.Preferences.DarkMode {
			t.Errorf("delivered event = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	// Events are scoped per device: the other subscriber sees nothing.
	select {
	case got := <-other:
		t.Fatalf("unrelated device received event %+v", got)
	default:
	}
}

func TestCancelledSubscriberReceivesNothing(t *testing.T) {
	hub := NewHub(nil, nil)

	ch, cancel := hub.Subscribe("device-1")
	cancel()

	// A torn-down view must never observe later updates.
	hub.deliver(Event{DeviceID: "device-1"})

	if _, open := <-ch; open {
		t.Fatal("expected closed channel after cancel")
	}

	// Double cancel is harmless.
	cancel()
}

func TestDeliverDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub(nil, nil)

	ch, cancel := hub.Subscribe("device-1")
	defer cancel()

	// Fill the buffer and keep going: deliver must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 32; i++ {
			hub.deliver(Event{DeviceID: "device-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("deliver blocked on a slow subscriber")
	}

	if len(ch) == 0 {
		t.Error("expected at least one buffered event")
	}
}
