package command

import (
	"errors"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/pkg/logger"
)

// RemovePersonCommand removes a person from the roster.
type RemovePersonCommand struct {
	PersonID int
}

// Validate validates the command shape.
func (c RemovePersonCommand) Validate() error {
	if c.PersonID <= 0 {
		return errors.New("remove_person: person id is required")
	}
	return nil
}

// RemovePersonHandler handles RemovePersonCommand.
type RemovePersonHandler struct {
	roster person.Repository
	events shared.EventPublisher
	log    *logger.Logger
}

// NewRemovePersonHandler creates a new handler.
func NewRemovePersonHandler(roster person.Repository, events shared.EventPublisher, log *logger.Logger) *RemovePersonHandler {
	return &RemovePersonHandler{
		roster: roster,
		events: events,
		log:    log.With(logger.Component("remove_person")),
	}
}

// Handle removes the person and reports whether a removal occurred. Removing
// an unknown id is a no-op reported through the boolean, not an error.
func (h *RemovePersonHandler) Handle(cmd RemovePersonCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	removed := h.roster.Delete(cmd.PersonID)
	if !removed {
		h.log.Debug("remove skipped, id not present", logger.PersonID(cmd.PersonID))
		return false, nil
	}

	if h.events != nil {
		if pubErr := h.events.Publish(person.NewDeletedEvent(cmd.PersonID)); pubErr != nil {
			h.log.Warn("deleted event not delivered", logger.PersonID(cmd.PersonID), logger.Err(pubErr))
		}
	}
	h.log.Info("person removed", logger.PersonID(cmd.PersonID))
	return true, nil
}
