package catalog

// Store is the validated, read-only property collection. It is safe for
// concurrent use because nothing mutates it after construction.
type Store struct {
	records []Property
	bySlug  map[string]int
	byID    map[string]int
}

// NewStore indexes records that have already passed Load.
func NewStore(records []Property) *Store {
	s := &Store{
		records: records,
		bySlug:  make(map[string]int, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, p := range records {
		s.bySlug[p.Slug] = i
		s.byID[p.ID] = i
	}
	return s
}

// Len returns the number of properties.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// All returns every property in catalog order. The slice is a fresh header
// over shared records; callers must treat the elements as read-only.
func (s *Store) All() []Property {
	if s == nil {
		return nil
	}
	out := make([]Property, len(s.records))
	copy(out, s.records)
	return out
}

// BySlug returns the property with the exact slug.
func (s *Store) BySlug(slug string) (Property, error) {
	if s == nil {
		return Property{}, ErrNotFound
	}
	i, ok := s.bySlug[slug]
	if !ok {
		return Property{}, ErrNotFound
	}
	return s.records[i], nil
}

// ByID returns the property with the exact id.
func (s *Store) ByID(id string) (Property, error) {
	if s == nil {
		return Property{}, ErrNotFound
	}
	i, ok := s.byID[id]
	if !ok {
		return Property{}, ErrNotFound
	}
	return s.records[i], nil
}

// ByType returns the properties tagged with t, in catalog order.
func (s *Store) ByType(t Type) []Property {
	if s == nil {
		return nil
	}
	out := make([]Property, 0, len(s.records))
	for _, p := range s.records {
		if p.Has(t) {
			out = append(out, p)
		}
	}
	return out
}
