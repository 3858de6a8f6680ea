// Package participant defines participant identities and the directory
// contract used to resolve display names. Participants are owned by an
// external directory; the engine only ever holds ids.
package participant

import "sort"

// ID is an opaque participant identifier.
type ID string

// Participant pairs an id with the display name used for deterministic
// ordering. The engine never creates or destroys participants.
type Participant struct {
	ID          ID
	DisplayName string
}

// Directory resolves participant ids to display names. Implemented by the
// external participant directory; the engine never mutates directory state.
type Directory interface {
	DisplayName(id ID) string
}

// InMemoryDirectory is a map-backed Directory for callers and tests.
type InMemoryDirectory struct {
	names map[ID]string
}

// NewInMemoryDirectory builds a directory from the given participants.
func NewInMemoryDirectory(people ...Participant) *InMemoryDirectory {
	names := make(map[ID]string, len(people))
	for _, p := range people {
		names[p.ID] = p.DisplayName
	}
	return &InMemoryDirectory{names: names}
}

// Add registers or renames a participant.
func (d *InMemoryDirectory) Add(p Participant) {
	d.names[p.ID] = p.DisplayName
}

// DisplayName returns the display name for id. Unknown ids resolve to the
// raw id text so that ordering over a stale set stays total.
func (d *InMemoryDirectory) DisplayName(id ID) string {
	if name, ok := d.names[id]; ok {
		return name
	}
	return string(id)
}

// SortByDisplayName returns ids ordered by display name ascending, with the
// id itself breaking ties. Remainder cents are handed out in this order, so
// it must be reproduced exactly for a split to round-trip.
func SortByDisplayName(ids []ID, dir Directory) []ID {
	ordered := make([]ID, len(ids))
	copy(ordered, ids)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := dir.DisplayName(ordered[i]), dir.DisplayName(ordered[j])
		if a != b {
			return a < b
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}
