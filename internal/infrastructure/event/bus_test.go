package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testEvent implements DomainEvent for testing
type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New())}
}

// testHandler records what it handled
type testHandler struct {
	eventTypes []string
	err        error
	panics     bool
	mu         sync.Mutex
	handled    []shared.DomainEvent
}

func (h *testHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	if h.panics {
		panic("boom")
	}
	return h.err
}

func (h *testHandler) EventTypes() []string { return h.eventTypes }

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func startedBus(t *testing.T, logger *zap.Logger) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(logger)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })
	return bus
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by event type and to wildcard handlers", func(t *testing.T) {
		bus := startedBus(t, zap.NewNop())
		typed := &testHandler{eventTypes: []string{"A"}}
		all := &testHandler{}
		bus.Subscribe(typed)
		bus.Subscribe(all)

		require.NoError(t, bus.Publish(ctx, newTestEvent("A"), newTestEvent("B")))
		assert.Equal(t, 1, typed.count())
		assert.Equal(t, 2, all.count())
	})

	t.Run("handler errors and panics are logged, not returned", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		bus := startedBus(t, zap.New(core))
		failing := &testHandler{err: errors.New("nope")}
		panicking := &testHandler{panics: true}
		after := &testHandler{}
		bus.Subscribe(failing, "A")
		bus.Subscribe(panicking, "A")
		bus.Subscribe(after, "A")

		require.NoError(t, bus.Publish(ctx, newTestEvent("A")))
		assert.Equal(t, 1, after.count())
		assert.Equal(t, 2, logs.FilterMessage("handler failed to process event").Len())
	})

	t.Run("stopped bus drops events", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		bus := NewInMemoryEventBus(zap.New(core))
		h := &testHandler{}
		bus.Subscribe(h, "A")

		require.NoError(t, bus.Publish(ctx, newTestEvent("A")))
		assert.Equal(t, 0, h.count())
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		bus := startedBus(t, zap.NewNop())
		h := &testHandler{}
		bus.Subscribe(h, "A", "B")
		bus.Unsubscribe(h)

		require.NoError(t, bus.Publish(ctx, newTestEvent("A")))
		assert.Equal(t, 0, h.count())
		assert.Equal(t, 0, bus.registry.Len())
	})
}
