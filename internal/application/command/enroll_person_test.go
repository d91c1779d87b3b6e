package command

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/internal/infrastructure/messaging"
	"github.com/tert62/COMP1551/internal/infrastructure/persistence/memory"
	"github.com/tert62/COMP1551/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelError)
}

func TestEnrollPerson_AddsAndPublishes(t *testing.T) {
	roster := memory.NewRoster()
	bus := messaging.NewInMemoryEventBus(nil)

	var events []shared.Event
	bus.Subscribe(shared.EventPersonAdded, func(event shared.Event) error {
		events = append(events, event)
		return nil
	})

	handler := NewEnrollPersonHandler(roster, bus, testLogger())
	p, err := handler.Handle(EnrollPersonCommand{
		Role:      person.RoleTeacher,
		Name:      "Alice Smith",
		Telephone: "0901234567",
		Email:     "alice@school.edu",
		Salary:    1500,
		Subjects:  []string{"Math", "Physics"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, p.ID())
	assert.Equal(t, 1, roster.Count())

	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].Payload()["person_id"])
	assert.Equal(t, "teacher", events[0].Payload()["role"])
}

func TestEnrollPerson_EachVariant(t *testing.T) {
	roster := memory.NewRoster()
	handler := NewEnrollPersonHandler(roster, nil, testLogger())

	admin, err := handler.Handle(EnrollPersonCommand{
		Role:         person.RoleAdmin,
		Name:         "Bob Tran",
		Telephone:    "0912345678",
		Email:        "bob@school.edu",
		Salary:       1200,
		FullTime:     true,
		WorkingHours: 40,
	})
	require.NoError(t, err)
	require.NotNil(t, admin.Admin())
	assert.Equal(t, 40, admin.Admin().WorkingHours())

	student, err := handler.Handle(EnrollPersonCommand{
		Role:      person.RoleStudent,
		Name:      "Carol Diaz",
		Telephone: "0923456789",
		Email:     "carol@school.edu",
		Subjects:  []string{"Chemistry"},
	})
	require.NoError(t, err)
	require.NotNil(t, student.Student())
	assert.Equal(t, [3]string{"Chemistry", "", ""}, student.Student().Subjects())
}

func TestEnrollPerson_ValidationFailureLeavesRosterUntouched(t *testing.T) {
	roster := memory.NewRoster()
	handler := NewEnrollPersonHandler(roster, nil, testLogger())

	_, err := handler.Handle(EnrollPersonCommand{
		Role:      person.RoleStudent,
		Name:      "Dana",
		Telephone: "12345",
		Email:     "dana@school.edu",
	})

	require.ErrorIs(t, err, shared.ErrInvalidFormat)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, 0, roster.Count())
}

func TestEnrollPerson_RejectsUnknownRole(t *testing.T) {
	handler := NewEnrollPersonHandler(memory.NewRoster(), nil, testLogger())

	_, err := handler.Handle(EnrollPersonCommand{Role: "janitor", Name: "X"})
	require.Error(t, err)
}
