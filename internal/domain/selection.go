package domain

import "slices"

// Selection is a multi-select filter: either All (no filtering) or a
// non-empty set of explicit members kept in insertion order. The zero value
// is All. A Selection can never be empty and never mixes All with members.
type Selection[T comparable] struct {
	members []T
}

// All returns the unfiltered selection.
func All[T comparable]() Selection[T] {
	return Selection[T]{}
}

// Only returns a selection of the given members. Duplicates are dropped and
// an empty list yields All.
func Only[T comparable](members ...T) Selection[T] {
	var out []T
	for _, m := range members {
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return Selection[T]{members: out}
}

// IsAll reports whether the selection applies no filter.
func (s Selection[T]) IsAll() bool { return len(s.members) == 0 }

// Members returns a copy of the explicit members; nil for All.
func (s Selection[T]) Members() []T { return slices.Clone(s.members) }

// Contains reports whether m passes the filter.
func (s Selection[T]) Contains(m T) bool {
	return s.IsAll() || slices.Contains(s.members, m)
}

// Has reports whether m is an explicit member.
func (s Selection[T]) Has(m T) bool { return slices.Contains(s.members, m) }

// ToggleAll handles a click on the "all" option. Turning All off would leave
// the selection empty, so the result is always All.
func (s Selection[T]) ToggleAll() Selection[T] {
	return All[T]()
}

// Toggle handles a click on an explicit member. When All is active the
// member replaces it; removing the last member falls back to All.
func (s Selection[T]) Toggle(m T) Selection[T] {
	if s.IsAll() {
		return Only(m)
	}
	if i := slices.Index(s.members, m); i >= 0 {
		return Only(slices.Delete(slices.Clone(s.members), i, i+1)...)
	}
	return Only(append(slices.Clone(s.members), m)...)
}

// Equal reports whether both selections filter the same members.
func (s Selection[T]) Equal(o Selection[T]) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for _, m := range s.members {
		if !o.Has(m) {
			return false
		}
	}
	return true
}
