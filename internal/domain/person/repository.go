package person

// Repository defines the contract for the owning roster store. The
// implementation lives in infrastructure/persistence.
//
// Absence of a record is a normal outcome, never an error: lookups report it
// through the boolean result.
type Repository interface {
	// Add assigns the next sequential id to the person and appends it to
	// the roster. Ids start at 1, are strictly increasing and are never
	// reused, even after deletion. Returns ErrAlreadyExists if the person
	// already carries an id.
	Add(p *Person) (int, error)

	// FindByID returns the person with the given id, or false if no such
	// person exists.
	FindByID(id int) (*Person, bool)

	// GetAll returns a read view of the roster in insertion order.
	GetAll() []*Person

	// GetByRole returns the people with the given role, in insertion order.
	GetByRole(role Role) []*Person

	// Delete removes the person with the given id and reports whether a
	// removal occurred. The relative order of the remaining people is
	// preserved.
	Delete(id int) bool

	// Count returns the number of people in the roster.
	Count() int
}
