package person

import (
	"github.com/tert62/COMP1551/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER EVENTS
// Emitted by the application layer whenever the roster changes.
// ══════════════════════════════════════════════════════════════════════════════

// AddedEvent is emitted when a person is added to the roster.
type AddedEvent struct {
	shared.BaseEvent
	PersonID int    `json:"person_id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Payload implements shared.Event.
func (e AddedEvent) Payload() map[string]any {
	return map[string]any{
		"person_id": e.PersonID,
		"role":      e.Role.String(),
		"name":      e.Name,
	}
}

// NewAddedEvent creates a new AddedEvent for an already-added person.
func NewAddedEvent(p *Person) AddedEvent {
	return AddedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonAdded),
		PersonID:  p.ID(),
		Role:      p.Role(),
		Name:      p.Name(),
	}
}

// UpdatedEvent is emitted when a field of a person is changed.
type UpdatedEvent struct {
	shared.BaseEvent
	PersonID int    `json:"person_id"`
	Role     Role   `json:"role"`
	Field    string `json:"field"`
}

// Payload implements shared.Event.
func (e UpdatedEvent) Payload() map[string]any {
	return map[string]any{
		"person_id": e.PersonID,
		"role":      e.Role.String(),
		"field":     e.Field,
	}
}

// NewUpdatedEvent creates a new UpdatedEvent for the changed field.
func NewUpdatedEvent(p *Person, field string) UpdatedEvent {
	return UpdatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonUpdated),
		PersonID:  p.ID(),
		Role:      p.Role(),
		Field:     field,
	}
}

// DeletedEvent is emitted when a person is removed from the roster.
type DeletedEvent struct {
	shared.BaseEvent
	PersonID int `json:"person_id"`
}

// Payload implements shared.Event.
func (e DeletedEvent) Payload() map[string]any {
	return map[string]any{
		"person_id": e.PersonID,
	}
}

// NewDeletedEvent creates a new DeletedEvent.
func NewDeletedEvent(id int) DeletedEvent {
	return DeletedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonDeleted),
		PersonID:  id,
	}
}
