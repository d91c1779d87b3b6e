// Package memory implements the roster repository as an in-memory store. The
// roster is process-wide state: it starts empty (or demo-seeded) and is
// discarded at process exit.
package memory

import (
	"sync"

	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/internal/domain/shared"
)

// Roster is the owning in-memory collection of people. An ordered slice keeps
// insertion order as the iteration order; nextID is a monotonically increasing
// counter that is never reused, even after deletion.
//
// All access funnels through one mutex. The core model is single-threaded, but
// the lock keeps the id-uniqueness and ordering invariants intact should a
// concurrent caller ever be introduced.
type Roster struct {
	mu     sync.Mutex
	people []*person.Person
	nextID int
}

// compile-time contract check
var _ person.Repository = (*Roster)(nil)

// NewRoster creates an empty roster. The first assigned id is 1.
func NewRoster() *Roster {
	return &Roster{
		people: make([]*person.Person, 0),
		nextID: 1,
	}
}

// Add assigns the next sequential id to the person and appends it. Returns
// shared.ErrAlreadyExists if the person already carries an id.
func (r *Roster) Add(p *person.Person) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID() != 0 {
		return 0, shared.ErrAlreadyExists
	}

	id := r.nextID
	if err := p.AssignID(id); err != nil {
		return 0, err
	}
	r.nextID++
	r.people = append(r.people, p)
	return id, nil
}

// FindByID returns the person with the given id. Absence is a normal outcome
// reported through the boolean, never an error.
func (r *Roster) FindByID(id int) (*person.Person, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.people {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// GetAll returns a read view of the roster in insertion order. The returned
// slice is a copy; the entities themselves stay owned by the store.
func (r *Roster) GetAll() []*person.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := make([]*person.Person, len(r.people))
	copy(view, r.people)
	return view
}

// GetByRole returns the people with the given role, in insertion order.
func (r *Roster) GetByRole(role person.Role) []*person.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := make([]*person.Person, 0)
	for _, p := range r.people {
		if p.Role() == role {
			view = append(view, p)
		}
	}
	return view
}

// Delete removes the person with the given id and reports whether a removal
// occurred. Deleting an unknown id is a no-op, not an error. The relative
// order of the remaining people is preserved and their ids are never reused.
func (r *Roster) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.people {
		if p.ID() == id {
			r.people = append(r.people[:i], r.people[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of people currently in the roster.
func (r *Roster) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.people)
}
