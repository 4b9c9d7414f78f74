// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/atelier-ongle/waitlist-server/store"
	"github.com/atelier-ongle/waitlist-server/testutil"
)

func TestInsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	ip := "203.0.113.9"
	reg, err := st.Insert("jane@example.com", &ip)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if reg.ID <= 0 {
		t.Errorf("Expected a positive assigned id, got %d", reg.ID)
	}
	if reg.Email != "jane@example.com" {
		t.Errorf("Expected email jane@example.com, got %q", reg.Email)
	}
	if reg.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
	if reg.IP == nil || *reg.IP != ip {
		t.Errorf("Expected ip %q, got %v", ip, reg.IP)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

func TestInsert_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	if _, err := st.Insert("jane@example.com", nil); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err := st.Insert("jane@example.com", nil)
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("Expected ErrDuplicateEmail, got %v", err)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count to stay 1 after duplicate, got %d", count)
	}
}

func TestFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	inserted, err := st.Insert("jane@example.com", nil)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	reg, found, err := st.FindByID(inserted.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !found {
		t.Fatal("Expected registration to be found")
	}
	if reg.Email != "jane@example.com" {
		t.Errorf("Expected email jane@example.com, got %q", reg.Email)
	}
	if reg.IP != nil {
		t.Errorf("Expected nil ip, got %v", reg.IP)
	}

	_, found, err = st.FindByID(inserted.ID + 1000)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found {
		t.Error("Expected absent id not to be found")
	}
}

func TestListAll_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedRegistration(t, db, "a@example.com", base)
	testutil.SeedRegistration(t, db, "b@example.com", base.Add(time.Minute))
	testutil.SeedRegistration(t, db, "c@example.com", base.Add(2*time.Minute))

	regs, err := st.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	want := []string{"c@example.com", "b@example.com", "a@example.com"}
	if len(regs) != len(want) {
		t.Fatalf("Expected %d registrations, got %d", len(want), len(regs))
	}
	for i, email := range want {
		if regs[i].Email != email {
			t.Errorf("Position %d: expected %q, got %q", i, email, regs[i].Email)
		}
	}
}

func TestListAll_StableTieBreak(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	// Same timestamp: later insert wins the tie, matching the
	// dashboard's prepend behavior.
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedRegistration(t, db, "first@example.com", ts)
	testutil.SeedRegistration(t, db, "second@example.com", ts)

	regs, err := st.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("Expected 2 registrations, got %d", len(regs))
	}
	if regs[0].Email != "second@example.com" {
		t.Errorf("Expected second insert first, got %q", regs[0].Email)
	}
}

func TestListAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	regs, err := st.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if regs == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(regs) != 0 {
		t.Errorf("Expected no registrations, got %d", len(regs))
	}
}

func TestDeleteByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	reg, err := st.Insert("jane@example.com", nil)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	removed, err := st.DeleteByID(reg.ID)
	if err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if !removed {
		t.Error("Expected removed=true for present id")
	}

	count, _ := st.Count()
	if count != 0 {
		t.Errorf("Expected count 0 after delete, got %d", count)
	}

	// Idempotent: deleting again reports removed=false, no error
	removed, err = st.DeleteByID(reg.ID)
	if err != nil {
		t.Fatalf("Second DeleteByID failed: %v", err)
	}
	if removed {
		t.Error("Expected removed=false for absent id")
	}
}

func TestExistsByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	if _, err := st.Insert("jane@example.com", nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	exists, err := st.ExistsByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("Expected jane@example.com to exist")
	}

	exists, err = st.ExistsByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if exists {
		t.Error("Expected nobody@example.com not to exist")
	}
}
