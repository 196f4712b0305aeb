package selection

import (
	"sort"

	"auction-storefront/internal/models"
)

// Set tracks the auctions chosen for a bulk action. Only open auctions that
// exist in the current dataset can be selected.
type Set struct {
	ids  map[int64]struct{}
	open map[int64]bool // id -> open, for the current dataset
}

// New creates an empty Set bound to the dataset
func New(dataset []models.Auction) *Set {
	s := &Set{ids: make(map[int64]struct{})}
	s.index(dataset)
	return s
}

func (s *Set) index(dataset []models.Auction) {
	s.open = make(map[int64]bool, len(dataset))
	for _, a := range dataset {
		s.open[a.ID] = !a.Closed
	}
}

// Selectable reports whether id is an open auction in the current dataset
func (s *Set) Selectable(id int64) bool {
	return s.open[id]
}

// Select adds id and reports whether it is selected afterwards
func (s *Set) Select(id int64) bool {
	if !s.Selectable(id) {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Deselect removes id
func (s *Set) Deselect(id int64) {
	delete(s.ids, id)
}

// Toggle flips the selection of id and reports whether it is selected afterwards
func (s *Set) Toggle(id int64) bool {
	if s.Contains(id) {
		s.Deselect(id)
		return false
	}
	return s.Select(id)
}

// SelectAll selects every selectable auction in view
func (s *Set) SelectAll(view []models.Auction) int {
	added := 0
	for _, a := range view {
		if !s.Contains(a.ID) && s.Select(a.ID) {
			added++
		}
	}
	return added
}

// Contains reports whether id is selected
func (s *Set) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Prune rebinds the set to a refreshed dataset, dropping ids that vanished or closed
func (s *Set) Prune(dataset []models.Auction) {
	s.index(dataset)
	for id := range s.ids {
		if !s.open[id] {
			delete(s.ids, id)
		}
	}
}

// IDs returns the selected ids in ascending order
func (s *Set) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Set) Len() int {
	return len(s.ids)
}

func (s *Set) Clear() {
	s.ids = make(map[int64]struct{})
}
