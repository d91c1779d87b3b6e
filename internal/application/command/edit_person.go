package command

import (
	"errors"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/pkg/logger"
)

// FieldUpdates contains optional field updates. nil values mean "don't
// change". Every set field is applied through the entity's validating setter,
// so an invalid value leaves the previous one intact.
type FieldUpdates struct {
	Name      *string
	Telephone *string
	Email     *string

	// Salary applies to Teacher and Admin.
	Salary *float64

	// FullTime and WorkingHours apply to Admin.
	FullTime     *bool
	WorkingHours *int

	// Subjects apply to Teacher (two) and Student (three). nil means
	// "don't change"; empty entries clear a subject.
	Subjects []string
}

// EditPersonCommand updates fields of an existing person.
type EditPersonCommand struct {
	PersonID int
	Updates  FieldUpdates
}

// Validate validates the command shape.
func (c EditPersonCommand) Validate() error {
	if c.PersonID <= 0 {
		return errors.New("edit_person: person id is required")
	}
	return nil
}

// EditPersonHandler handles EditPersonCommand.
type EditPersonHandler struct {
	roster person.Repository
	events shared.EventPublisher
	log    *logger.Logger
}

// NewEditPersonHandler creates a new handler.
func NewEditPersonHandler(roster person.Repository, events shared.EventPublisher, log *logger.Logger) *EditPersonHandler {
	return &EditPersonHandler{
		roster: roster,
		events: events,
		log:    log.With(logger.Component("edit_person")),
	}
}

// Handle applies the updates field by field. Each field update is
// all-or-nothing; the handler stops at the first failing field and returns
// its validation error. Returns shared.ErrNotFound for an unknown id.
func (h *EditPersonHandler) Handle(cmd EditPersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, ok := h.roster.FindByID(cmd.PersonID)
	if !ok {
		return shared.ErrNotFound
	}

	for _, update := range []struct {
		field string
		apply func() error
		set   bool
	}{
		{"name", func() error { return p.SetName(*cmd.Updates.Name) }, cmd.Updates.Name != nil},
		{"telephone", func() error { return p.SetTelephone(*cmd.Updates.Telephone) }, cmd.Updates.Telephone != nil},
		{"email", func() error { return p.SetEmail(*cmd.Updates.Email) }, cmd.Updates.Email != nil},
		{"salary", func() error { return p.SetSalary(*cmd.Updates.Salary) }, cmd.Updates.Salary != nil},
		{"full_time", func() error { return p.SetFullTime(*cmd.Updates.FullTime) }, cmd.Updates.FullTime != nil},
		{"working_hours", func() error { return p.SetWorkingHours(*cmd.Updates.WorkingHours) }, cmd.Updates.WorkingHours != nil},
		{"subjects", func() error { return p.SetSubjects(cmd.Updates.Subjects...) }, cmd.Updates.Subjects != nil},
	} {
		if !update.set {
			continue
		}
		if err := update.apply(); err != nil {
			return err
		}

		if h.events != nil {
			if pubErr := h.events.Publish(person.NewUpdatedEvent(p, update.field)); pubErr != nil {
				h.log.Warn("updated event not delivered", logger.PersonID(p.ID()), logger.Err(pubErr))
			}
		}
		h.log.Info("person updated",
			logger.PersonID(p.ID()),
			logger.String("field", update.field),
		)
	}
	return nil
}
