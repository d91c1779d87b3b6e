package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/internal/infrastructure/messaging"
	"github.com/tert62/COMP1551/internal/infrastructure/persistence/memory"
)

func seedAdmin(t *testing.T, roster *memory.Roster) *person.Person {
	t.Helper()
	p, err := person.NewAdmin("Bob Tran", "0912345678", "bob@school.edu", 1200, true, 40)
	require.NoError(t, err)
	_, err = roster.Add(p)
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestEditPerson_UpdatesFieldsAndPublishes(t *testing.T) {
	roster := memory.NewRoster()
	p := seedAdmin(t, roster)
	bus := messaging.NewInMemoryEventBus(nil)

	var fields []string
	bus.Subscribe(shared.EventPersonUpdated, func(event shared.Event) error {
		fields = append(fields, event.Payload()["field"].(string))
		return nil
	})

	handler := NewEditPersonHandler(roster, bus, testLogger())
	err := handler.Handle(EditPersonCommand{
		PersonID: p.ID(),
		Updates: FieldUpdates{
			Name:         strPtr("Robert Tran"),
			WorkingHours: intPtr(20),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Robert Tran", p.Name())
	assert.Equal(t, 20, p.Admin().WorkingHours())
	assert.Equal(t, []string{"name", "working_hours"}, fields)
}

func TestEditPerson_OutOfRangeKeepsPreviousValue(t *testing.T) {
	roster := memory.NewRoster()
	p := seedAdmin(t, roster)

	handler := NewEditPersonHandler(roster, nil, testLogger())
	err := handler.Handle(EditPersonCommand{
		PersonID: p.ID(),
		Updates:  FieldUpdates{WorkingHours: intPtr(90)},
	})

	require.ErrorIs(t, err, shared.ErrOutOfRange)
	assert.Equal(t, 40, p.Admin().WorkingHours(), "prior value must remain readable")
}

func TestEditPerson_SalaryAndContract(t *testing.T) {
	roster := memory.NewRoster()
	p := seedAdmin(t, roster)
	off := false

	handler := NewEditPersonHandler(roster, nil, testLogger())
	err := handler.Handle(EditPersonCommand{
		PersonID: p.ID(),
		Updates:  FieldUpdates{Salary: floatPtr(1350), FullTime: &off},
	})

	require.NoError(t, err)
	assert.Equal(t, 1350.0, p.Admin().Salary())
	assert.False(t, p.Admin().FullTime())
}

func TestEditPerson_UnknownID(t *testing.T) {
	handler := NewEditPersonHandler(memory.NewRoster(), nil, testLogger())

	err := handler.Handle(EditPersonCommand{
		PersonID: 99,
		Updates:  FieldUpdates{Name: strPtr("X")},
	})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEditPerson_RequiresID(t *testing.T) {
	handler := NewEditPersonHandler(memory.NewRoster(), nil, testLogger())
	require.Error(t, handler.Handle(EditPersonCommand{}))
}
