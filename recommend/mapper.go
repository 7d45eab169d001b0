package recommend

import (
	"fmt"

	"fertirec/artifact"
)

// Mapping is one category domain with forward and reverse lookup tables.
// It keeps the trainer's insertion order for listing.
type Mapping struct {
	domain  string
	entries []artifact.CategoryEntry
	byID    map[int]string
}

// NewMapping builds the reverse lookup table for a domain. The forward
// mapping must be bijective; a duplicate id or name means the artifact is
// corrupt and construction fails rather than letting one entry shadow
// another.
func NewMapping(domain string, entries []artifact.CategoryEntry) (*Mapping, error) {
	m := &Mapping{
		domain:  domain,
		entries: entries,
		byID:    make(map[int]string, len(entries)),
	}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if prev, ok := m.byID[e.ID]; ok {
			return nil, fmt.Errorf("%s mapping: id %d maps to both %q and %q", domain, e.ID, prev, e.Name)
		}
		if _, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%s mapping: duplicate name %q", domain, e.Name)
		}
		m.byID[e.ID] = e.Name
		seen[e.Name] = struct{}{}
	}
	return m, nil
}

// Name reverse-maps a code to its category name.
func (m *Mapping) Name(id int) (string, bool) {
	name, ok := m.byID[id]
	return name, ok
}

// Entries lists the domain in mapping-insertion order.
func (m *Mapping) Entries() []artifact.CategoryEntry { return m.entries }

func (m *Mapping) Len() int { return len(m.entries) }
