package stocktake

import "github.com/google/uuid"

// Reconcile merges an edited view of the sheet back into the master row set.
//
// master is the full authoritative set, displayedBefore the (possibly
// filtered and resorted) subset that was handed to the editor, and editedView
// that same subset after the editor inserted, changed, flagged-for-deletion
// and reordered rows.
//
// The pass runs delete, update, insert, normalize — in that order. It is pure
// and never fails: bad input degrades (unknown identities are skipped, blank
// new rows are dropped) instead of erroring, so an editor's work is never
// lost to validation. Row order of the result is master order with fresh
// inserts appended; positional information from the edited view is not kept.
func Reconcile(master, displayedBefore, editedView []Row) []Row {
	displayed := make(map[string]bool, len(displayedBefore))
	for _, r := range displayedBefore {
		if r.ID != "" {
			displayed[r.ID] = true
		}
	}

	// 1. Delete: flagged rows with an identity the editor was actually shown.
	// Identity-less rows cannot be deleted — they never existed in master.
	deleted := make(map[string]bool)
	for _, r := range editedView {
		if r.Delete && r.ID != "" && displayed[r.ID] {
			deleted[r.ID] = true
		}
	}

	// 2. Update: identity match, last write wins when the editor duplicated a
	// row. Identities no longer present in master are silently skipped.
	updates := make(map[string]Row)
	for _, r := range editedView {
		if r.ID != "" && !r.Delete {
			updates[r.ID] = r
		}
	}

	next := make([]Row, 0, len(master))
	existing := make(map[string]bool, len(master))
	for _, m := range master {
		existing[m.ID] = true
		if deleted[m.ID] {
			continue
		}
		if u, ok := updates[m.ID]; ok {
			// Fields outside the edited schema keep their master values.
			u.LastUpdated = m.LastUpdated
			m = u
		}
		next = append(next, m.normalize())
	}

	// 3. Insert: identity-less rows that carry real content get a fresh
	// identity, collision-checked against everything master has ever shown us
	// this pass. A row both inserted and delete-flagged in the same edit pass
	// never existed — drop it.
	for _, r := range editedView {
		if r.ID != "" || r.Delete || !r.HasKeyField() {
			continue
		}
		id := uuid.NewString()
		for existing[id] {
			id = uuid.NewString()
		}
		existing[id] = true
		r.ID = id
		next = append(next, r.normalize())
	}

	return next
}
