package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
)

func TestPublish_DeliversToTypedSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus(nil)

	var received []shared.Event
	bus.Subscribe(shared.EventPersonDeleted, func(event shared.Event) error {
		received = append(received, event)
		return nil
	})

	require.NoError(t, bus.Publish(person.NewDeletedEvent(5)))
	require.NoError(t, bus.Publish(person.NewUpdatedEvent(mustPerson(t), "name")))

	require.Len(t, received, 1, "typed subscriber only sees its event type")
	assert.Equal(t, shared.EventPersonDeleted, received[0].EventType())
	assert.NotEmpty(t, received[0].EventID())
	assert.Equal(t, 5, received[0].Payload()["person_id"])
}

func TestPublish_DeliversToAllSubscriber(t *testing.T) {
	bus := NewInMemoryEventBus(nil)

	var types []shared.EventType
	bus.SubscribeAll(func(event shared.Event) error {
		types = append(types, event.EventType())
		return nil
	})

	require.NoError(t, bus.Publish(person.NewDeletedEvent(1)))
	require.NoError(t, bus.Publish(person.NewDeletedEvent(2)))

	assert.Equal(t, []shared.EventType{shared.EventPersonDeleted, shared.EventPersonDeleted}, types)
}

func TestPublish_HandlerFailureDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(nil)
	boom := errors.New("boom")

	delivered := 0
	bus.Subscribe(shared.EventPersonDeleted, func(shared.Event) error { return boom })
	bus.Subscribe(shared.EventPersonDeleted, func(shared.Event) error {
		delivered++
		return nil
	})

	err := bus.Publish(person.NewDeletedEvent(1))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, delivered)
}

func TestPublish_EventIDsAreUnique(t *testing.T) {
	first := person.NewDeletedEvent(1)
	second := person.NewDeletedEvent(1)
	assert.NotEqual(t, first.EventID(), second.EventID())
}

func mustPerson(t *testing.T) *person.Person {
	t.Helper()
	p, err := person.NewStudent("Carol", "0923456789", "carol@school.edu", "", "", "")
	require.NoError(t, err)
	return p
}
