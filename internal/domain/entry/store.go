package entry

import "sort"

// Entry is implemented by all four entry kinds. The store only needs the
// identity and ordering key of a record.
type Entry interface {
	EntryID() int64
	EntryTimestamp() int64
}

// Store holds all entries for one baby, each kind kept descending by
// timestamp (newest first). Mutations return a new Store value; the slices
// of the receiver are never modified in place, so snapshots handed to
// readers stay valid across writes.
type Store struct {
	Feedings []Feeding
	Diapers  []Diaper
	Sleeps   []Sleep
	Growth   []Growth
}

// UpsertFeeding replaces the feeding with the same id or prepends a new one,
// then restores descending-timestamp order.
func (s Store) UpsertFeeding(f Feeding) Store {
	s.Feedings = upsert(s.Feedings, f)
	return s
}

func (s Store) UpsertDiaper(d Diaper) Store {
	s.Diapers = upsert(s.Diapers, d)
	return s
}

func (s Store) UpsertSleep(sl Sleep) Store {
	s.Sleeps = upsert(s.Sleeps, sl)
	return s
}

func (s Store) UpsertGrowth(g Growth) Store {
	s.Growth = upsert(s.Growth, g)
	return s
}

// RemoveFeeding drops the feeding with the given id. Removing an id that is
// not present is a no-op, not an error.
func (s Store) RemoveFeeding(id int64) Store {
	s.Feedings = remove(s.Feedings, id)
	return s
}

func (s Store) RemoveDiaper(id int64) Store {
	s.Diapers = remove(s.Diapers, id)
	return s
}

func (s Store) RemoveSleep(id int64) Store {
	s.Sleeps = remove(s.Sleeps, id)
	return s
}

func (s Store) RemoveGrowth(id int64) Store {
	s.Growth = remove(s.Growth, id)
	return s
}

// upsert replaces by id or prepends, then re-sorts descending by timestamp.
// The re-sort makes the ordering invariant hold regardless of insertion
// order or out-of-sequence timestamps.
func upsert[E Entry](list []E, e E) []E {
	out := make([]E, 0, len(list)+1)
	replaced := false
	for _, cur := range list {
		if cur.EntryID() == e.EntryID() {
			out = append(out, e)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append([]E{e}, out...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTimestamp() > out[j].EntryTimestamp()
	})
	return out
}

func remove[E Entry](list []E, id int64) []E {
	out := make([]E, 0, len(list))
	for _, cur := range list {
		if cur.EntryID() == id {
			continue
		}
		out = append(out, cur)
	}
	return out
}
