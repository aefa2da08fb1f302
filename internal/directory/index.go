// Package directory holds the in-memory professor catalog and resolves
// free-text surname queries against it.
package directory

import (
	"errors"

	"github.com/agnivade/levenshtein"
	"github.com/studentai/campus_bot/internal/model"
)

// ErrNoProfessors is returned by Resolve when the index holds no entries,
// i.e. the catalog fetch delivered nothing usable.
var ErrNoProfessors = errors.New("no professors available")

// Index maps surnames to the professors sharing that surname. It is built
// once at startup and never mutated afterwards, so lookups are safe from any
// handler without locking.
type Index struct {
	keys   []string // surnames in first-encountered order, for deterministic ties
	groups map[string][]model.Person
}

// Build filters the raw people catalog down to non-deleted professors and
// groups them by exact surname.
func Build(people []model.Person) *Index {
	idx := &Index{
		groups: make(map[string][]model.Person),
	}

	for _, person := range people {
		if person.IsDeleted || !person.IsProfessor() {
			continue
		}
		if _, exists := idx.groups[person.LastName]; !exists {
			idx.keys = append(idx.keys, person.LastName)
		}
		idx.groups[person.LastName] = append(idx.groups[person.LastName], person)
	}

	return idx
}

// Len returns the number of distinct surnames in the index.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Resolve finds the surname closest to query by edit distance and returns
// the full group of professors stored under it. This is a nearest-neighbour
// lookup, not a threshold match: even a wildly dissimilar query resolves to
// the closest surname, so callers must confirm the result with the user.
// Ties go to the surname encountered first when the index was built.
func (idx *Index) Resolve(query string) ([]model.Person, error) {
	if len(idx.keys) == 0 {
		return nil, ErrNoProfessors
	}

	best := idx.keys[0]
	bestDistance := levenshtein.ComputeDistance(query, best)

	for _, key := range idx.keys[1:] {
		distance := levenshtein.ComputeDistance(query, key)
		if distance < bestDistance {
			best = key
			bestDistance = distance
		}
	}

	group := idx.groups[best]
	out := make([]model.Person, len(group))
	copy(out, group)
	return out, nil
}
