package catalog

// Store is the process-wide registry of catalog entries. It is constructed
// once and read-only afterwards, so concurrent readers need no coordination.
type Store struct {
	entries []Entry
	byID    map[string]int
}

// NewStore builds a store from a finite sequence of entries, preserving
// their order. It fails with DuplicateEntryError when two entries share an
// identifier.
func NewStore(entries []Entry) (*Store, error) {
	s := &Store{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)

	for i, entry := range s.entries {
		if _, exists := s.byID[entry.ID]; exists {
			return nil, &DuplicateEntryError{ID: entry.ID}
		}
		s.byID[entry.ID] = i
	}

	return s, nil
}

// All returns every entry in load order. The returned slice is a copy.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByCategory returns the entries of one category in load order.
func (s *Store) ByCategory(category Category) []Entry {
	var out []Entry
	for _, entry := range s.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// ByID returns the entry with the given identifier, or NotFoundError.
func (s *Store) ByID(id string) (Entry, error) {
	i, exists := s.byID[id]
	if !exists {
		return Entry{}, &NotFoundError{ID: id}
	}
	return s.entries[i], nil
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}
