package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheris/airline-platform/internal/events"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventReservationCreated, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReservationCreated,
		Timestamp: time.Now(),
		Payload:   events.ReservationCreatedPayload{ReservationID: 4, CustomerName: "Ada"},
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, event.ID, received[0].ID)

	payload, ok := received[0].Payload.(events.ReservationCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(4), payload.ReservationID)
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventPaymentRecorded, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventReservationCancelled}))
	assert.False(t, called)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(events.EventPaymentRecorded, func(context.Context, events.Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventPaymentRecorded, func(context.Context, events.Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventPaymentRecorded}))
	assert.Equal(t, []string{"first", "second"}, order)
}
