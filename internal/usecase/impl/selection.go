package impl

import "sort"

// selectionSet tracks the entity ids the user has selected for bulk
// operations. It spans the full authoritative collection, not the filtered
// view; callers are responsible for locking.
type selectionSet struct {
	ids map[string]struct{}
}

func newSelectionSet() selectionSet {
	return selectionSet{ids: make(map[string]struct{})}
}

// toggle removes the id when present, adds it otherwise.
func (s *selectionSet) toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// selectAll replaces the selection with the given ids.
func (s *selectionSet) selectAll(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// clear empties the selection.
func (s *selectionSet) clear() {
	s.ids = make(map[string]struct{})
}

// remove drops one id, if present.
func (s *selectionSet) remove(id string) {
	delete(s.ids, id)
}

// prune drops every id not in valid. Called after each successful reload so
// the selection never references entities the collection no longer holds.
func (s *selectionSet) prune(valid map[string]struct{}) {
	for id := range s.ids {
		if _, ok := valid[id]; !ok {
			delete(s.ids, id)
		}
	}
}

func (s *selectionSet) contains(id string) bool {
	_, ok := s.ids[id]

	return ok
}

func (s *selectionSet) count() int {
	return len(s.ids)
}

// sorted returns the selected ids in deterministic order.
func (s *selectionSet) sorted() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
