package menu

import (
	"sort"
	"strings"
)

// Selection maps an option-group name to the chosen option name.
// A nil or empty Selection means the item was added with no customizations.
type Selection map[string]string

// Key returns a canonical, order-independent string form of the selection:
// the "group=option" pairs sorted by group name and joined with ";".
// Two selections with the same choices produce the same key regardless of
// map iteration order, which is what gives cart lines their identity.
func (s Selection) Key() string {
	if len(s) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(s))
	for group, option := range s {
		pairs = append(pairs, group+"="+option)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

// IsEqual reports whether two selections contain exactly the same choices.
func (s Selection) IsEqual(other Selection) bool {
	return s.Key() == other.Key()
}

// Clone returns an independent copy of the selection.
// Cloning a nil selection yields nil.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	clone := make(Selection, len(s))
	for group, option := range s {
		clone[group] = option
	}
	return clone
}
