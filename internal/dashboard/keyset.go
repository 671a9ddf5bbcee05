package dashboard

import (
	"sort"

	"github.com/dwizi/dandi/internal/keyclient"
)

// KeySet is a set of key ids. The mutating helpers return a new set and
// leave the receiver untouched.
type KeySet map[keyclient.KeyID]struct{}

func NewKeySet(ids ...keyclient.KeyID) KeySet {
	set := make(KeySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s KeySet) Has(id keyclient.KeyID) bool {
	_, ok := s[id]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

func (s KeySet) With(id keyclient.KeyID) KeySet {
	next := s.clone()
	next[id] = struct{}{}
	return next
}

func (s KeySet) Without(id keyclient.KeyID) KeySet {
	next := s.clone()
	delete(next, id)
	return next
}

func (s KeySet) Toggle(id keyclient.KeyID) KeySet {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// Retain keeps only ids present in keys.
func (s KeySet) Retain(keys []keyclient.APIKey) KeySet {
	next := make(KeySet, len(s))
	for _, key := range keys {
		if s.Has(key.ID) {
			next[key.ID] = struct{}{}
		}
	}
	return next
}

func (s KeySet) IDs() []keyclient.KeyID {
	ids := make([]keyclient.KeyID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s KeySet) clone() KeySet {
	next := make(KeySet, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}
