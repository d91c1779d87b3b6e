package query

import (
	"github.com/tert62/COMP1551/internal/domain/person"
)

// ListPeopleQuery lists the roster, optionally filtered by role.
type ListPeopleQuery struct {
	// Role filters the listing when non-nil.
	Role *person.Role
}

// ListPeopleResult carries the listing plus the roster size.
type ListPeopleResult struct {
	People []*person.Person
	Total  int
}

// ListPeopleHandler handles ListPeopleQuery.
type ListPeopleHandler struct {
	roster person.Repository
}

// NewListPeopleHandler creates a new handler.
func NewListPeopleHandler(roster person.Repository) *ListPeopleHandler {
	return &ListPeopleHandler{roster: roster}
}

// Handle returns the matching people in insertion order.
func (h *ListPeopleHandler) Handle(q ListPeopleQuery) ListPeopleResult {
	var people []*person.Person
	if q.Role != nil {
		people = h.roster.GetByRole(*q.Role)
	} else {
		people = h.roster.GetAll()
	}
	return ListPeopleResult{
		People: people,
		Total:  h.roster.Count(),
	}
}
