// Package query contains read operations on the roster (CQRS - Queries).
package query

import (
	"github.com/tert62/COMP1551/internal/domain/person"
)

// GetPersonQuery looks a person up by id.
type GetPersonQuery struct {
	PersonID int
}

// GetPersonHandler handles GetPersonQuery.
type GetPersonHandler struct {
	roster person.Repository
}

// NewGetPersonHandler creates a new handler.
func NewGetPersonHandler(roster person.Repository) *GetPersonHandler {
	return &GetPersonHandler{roster: roster}
}

// Handle returns the person, or false if the id is not present. Absence is a
// normal outcome, never an error.
func (h *GetPersonHandler) Handle(q GetPersonQuery) (*person.Person, bool) {
	return h.roster.FindByID(q.PersonID)
}
