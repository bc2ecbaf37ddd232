package nodes

// orderedStore is an id-keyed collection that preserves insertion order.
// Declaration order matters throughout the engine: it decides pin hover
// tie-breaks, link draw order and fan-out ordering, so plain map iteration
// is never used on entity collections.
type orderedStore[V any] struct {
	values map[ID]*V
	order  []ID
}

func newOrderedStore[V any]() orderedStore[V] {
	return orderedStore[V]{values: make(map[ID]*V)}
}

// get returns the value for id, or nil.
func (s *orderedStore[V]) get(id ID) *V {
	return s.values[id]
}

// has reports whether id is present.
func (s *orderedStore[V]) has(id ID) bool {
	_, ok := s.values[id]
	return ok
}

// getOrInsert returns the value for id, creating it with make on first
// sight. created reports whether a new entry was inserted.
func (s *orderedStore[V]) getOrInsert(id ID, make func() *V) (v *V, created bool) {
	if v, ok := s.values[id]; ok {
		return v, false
	}
	v = make()
	s.values[id] = v
	s.order = append(s.order, id)
	return v, true
}

// each calls fn for every entry in insertion order.
func (s *orderedStore[V]) each(fn func(id ID, v *V)) {
	for _, id := range s.order {
		fn(id, s.values[id])
	}
}

// ids returns the insertion-ordered id list. The returned slice is shared;
// callers that mutate the store while iterating must copy it first.
func (s *orderedStore[V]) ids() []ID {
	return s.order
}

// len returns the number of entries.
func (s *orderedStore[V]) len() int {
	return len(s.values)
}

// retain removes every entry for which keep returns false, preserving the
// order of the survivors.
func (s *orderedStore[V]) retain(keep func(id ID, v *V) bool) {
	kept := s.order[:0]
	for _, id := range s.order {
		if keep(id, s.values[id]) {
			kept = append(kept, id)
		} else {
			delete(s.values, id)
		}
	}
	s.order = kept
}
