// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists waitlist registrations over database/sql.

Two backends are supported through the same Store: a local sqlite file
(modernc.org/sqlite, the default) and postgres (lib/pq). Both dialects
accept the $N placeholder style used here, so only the schema differs.

# Contract

	st := store.New(db)
	reg, err := st.Insert("jane@example.com", nil)
	regs, err := st.ListAll()   // newest first
	n, err := st.Count()
	removed, err := st.DeleteByID(reg.ID)
	ok, err := st.ExistsByEmail("jane@example.com")

Insert returns ErrDuplicateEmail when the email already has a live
registration. The unique index on email enforces that invariant inside
the engine, so a concurrent check-then-insert race still cannot create
a duplicate row.

Callers pass emails already normalized (trimmed, lower-cased); the
store does not re-normalize.

# Schema

	registrations (
	    id          integer, assigned by the engine
	    email       text, unique
	    created_at  timestamp, set at insert, the sort key
	    ip          text, nullable
	)
*/
package store
