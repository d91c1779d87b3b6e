// Package command contains write operations on the roster (CQRS - Commands).
package command

import (
	"errors"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/pkg/logger"
)

// EnrollPersonCommand contains the data to add a new person to the roster.
// The entity model is the single source of truth for field validation; the
// command only checks its own shape.
type EnrollPersonCommand struct {
	Role      person.Role
	Name      string
	Telephone string
	Email     string

	// Salary applies to Teacher and Admin.
	Salary float64

	// FullTime and WorkingHours apply to Admin.
	FullTime     bool
	WorkingHours int

	// Subjects apply to Teacher (two) and Student (three). Missing entries
	// are treated as empty.
	Subjects []string
}

// Validate validates the command shape.
func (c EnrollPersonCommand) Validate() error {
	if !c.Role.IsValid() {
		return errors.New("enroll_person: unknown role")
	}
	return nil
}

// EnrollPersonHandler handles EnrollPersonCommand.
type EnrollPersonHandler struct {
	roster person.Repository
	events shared.EventPublisher
	log    *logger.Logger
}

// NewEnrollPersonHandler creates a new handler.
func NewEnrollPersonHandler(roster person.Repository, events shared.EventPublisher, log *logger.Logger) *EnrollPersonHandler {
	return &EnrollPersonHandler{
		roster: roster,
		events: events,
		log:    log.With(logger.Component("enroll_person")),
	}
}

// Handle constructs the validated variant, adds it to the roster and publishes
// the added event. Validation failures surface unchanged so the caller can
// classify them with shared.IsValidation.
func (h *EnrollPersonHandler) Handle(cmd EnrollPersonCommand) (*person.Person, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		p   *person.Person
		err error
	)
	switch cmd.Role {
	case person.RoleTeacher:
		p, err = person.NewTeacher(cmd.Name, cmd.Telephone, cmd.Email, cmd.Salary,
			subjectAt(cmd.Subjects, 0), subjectAt(cmd.Subjects, 1))
	case person.RoleAdmin:
		p, err = person.NewAdmin(cmd.Name, cmd.Telephone, cmd.Email, cmd.Salary,
			cmd.FullTime, cmd.WorkingHours)
	case person.RoleStudent:
		p, err = person.NewStudent(cmd.Name, cmd.Telephone, cmd.Email,
			subjectAt(cmd.Subjects, 0), subjectAt(cmd.Subjects, 1), subjectAt(cmd.Subjects, 2))
	}
	if err != nil {
		return nil, err
	}

	id, err := h.roster.Add(p)
	if err != nil {
		return nil, err
	}

	if h.events != nil {
		if pubErr := h.events.Publish(person.NewAddedEvent(p)); pubErr != nil {
			h.log.Warn("added event not delivered", logger.PersonID(id), logger.Err(pubErr))
		}
	}

	h.log.Info("person enrolled",
		logger.PersonID(id),
		logger.RoleField(cmd.Role.String()),
	)
	return p, nil
}

func subjectAt(subjects []string, i int) string {
	if i < len(subjects) {
		return subjects[i]
	}
	return ""
}
