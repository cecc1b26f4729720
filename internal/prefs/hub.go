// Package prefs implements the process-wide observable preference store.
// Every mutation is persisted by the store itself and then broadcast, so a
// dark-mode flip in one open view is observed by every other view of the
// same device without a reload, including views served by another instance.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/cache"
	"github.com/santridev/muslim-companion/internal/db"
	"github.com/santridev/muslim-companion/internal/model"
)

// Channel is the Redis pub/sub channel carrying preference change events.
const Channel = "prefs:changed"

// Event is one broadcast preference change.
type Event struct {
	DeviceID    string            `json:"device_id"`
	Preferences model.Preferences `json:"preferences"`
}

// Hub persists preference mutations and fans change events out to
// in-process subscribers. Cross-instance delivery rides the Redis channel.
type Hub struct {
	store db.Store
	cache *cache.Cache

	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	deviceID string
	ch       chan Event
}

// NewHub creates the hub around the persistent store and the Redis client.
func NewHub(store db.Store, c *cache.Cache) *Hub {
	return &Hub{
		store: store,
		cache: c,
		subs:  make(map[int]subscriber),
	}
}

// Get returns the current preferences for a device (defaults when unset).
func (h *Hub) Get(ctx context.Context, deviceID string) (model.Preferences, error) {
	return h.store.GetPreferences(ctx, deviceID)
}

// Update persists the record and broadcasts the change. Persistence happens
// first: a failed write must not notify anyone.
func (h *Hub) Update(ctx context.Context, prefs model.Preferences) (model.Preferences, error) {
	saved, err := h.store.UpsertPreferences(ctx, prefs)
	if err != nil {
		return model.Preferences{}, err
	}

	payload, err := json.Marshal(Event{DeviceID: saved.DeviceID, Preferences: saved})
	if err != nil {
		return model.Preferences{}, fmt.Errorf("marshal preference event: %w", err)
	}
	if err := h.cache.Publish(ctx, Channel, payload); err != nil {
		// Local subscribers normally receive the event back through Run's
		// Redis subscription. If publish failed, deliver locally anyway.
		log.Error().Err(err).Msg("failed to publish preference change")
		h.deliver(Event{DeviceID: saved.DeviceID, Preferences: saved})
	}
	return saved, nil
}

// Subscribe registers a watcher for one device's changes. The returned
// cancel func must be called on view teardown so stale views never receive
// updates.
func (h *Hub) Subscribe(deviceID string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = subscriber{deviceID: deviceID, ch: ch}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub.ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Run consumes the Redis channel and delivers events to local subscribers
// until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	sub := h.cache.Subscribe(ctx, Channel)
	defer func() {
		if err := sub.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close preference subscription")
		}
	}()

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Error().Err(err).Msg("malformed preference event")
				continue
			}
			h.deliver(event)
		}
	}
}

func (h *Hub) deliver(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		if sub.deviceID != event.DeviceID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Slow consumer: drop rather than block the fan-out.
		}
	}
}
