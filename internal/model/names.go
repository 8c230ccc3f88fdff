package model

// NameRoster is the persisted list of player names. It normally holds exactly
// MaxPlayers entries and is a superset of the active players' names.
type NameRoster []string

// DefaultNameRoster returns MaxPlayers default names
func DefaultNameRoster() NameRoster {
	names := make(NameRoster, MaxPlayers)
	for i := range names {
		names[i] = DefaultPlayerName(i)
	}
	return names
}

// Normalize pads with default names up to MaxPlayers and drops anything beyond
func (r NameRoster) Normalize() NameRoster {
	out := make(NameRoster, MaxPlayers)
	for i := range out {
		if i < len(r) {
			out[i] = r[i]
		} else {
			out[i] = DefaultPlayerName(i)
		}
	}
	return out
}

// Grow returns a roster with at least n entries, filling gaps with default names
func (r NameRoster) Grow(n int) NameRoster {
	for i := len(r); i < n; i++ {
		r = append(r, DefaultPlayerName(i))
	}
	return r
}

// At returns the name at index, or the default name if the slot doesn't exist
func (r NameRoster) At(index int) string {
	if index >= 0 && index < len(r) {
		return r[index]
	}
	return DefaultPlayerName(index)
}

// Clone returns a copy
func (r NameRoster) Clone() NameRoster {
	out := make(NameRoster, len(r))
	copy(out, r)
	return out
}
