// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/atelier-ongle/waitlist-server/models"
)

// ErrDuplicateEmail is returned by Insert when the normalized email
// already has a live registration.
var ErrDuplicateEmail = errors.New("email already registered")

// Store persists waitlist registrations. It expects an email that has
// already been normalized (trimmed, lower-cased) by the caller; the
// unique index on the email column is what ultimately enforces the
// no-duplicates invariant.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert creates a new registration and returns it with its assigned id.
func (s *Store) Insert(email string, ip *string) (models.Registration, error) {
	reg := models.Registration{
		Email:     email,
		CreatedAt: time.Now().UTC(),
		IP:        ip,
	}

	err := s.db.QueryRow(`
		INSERT INTO registrations (email, created_at, ip)
		VALUES ($1, $2, $3)
		RETURNING id
	`, reg.Email, reg.CreatedAt, reg.IP).Scan(&reg.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Registration{}, ErrDuplicateEmail
		}
		return models.Registration{}, fmt.Errorf("failed to insert registration: %w", err)
	}

	return reg, nil
}

// FindByID returns the registration with the given id, and whether it exists.
func (s *Store) FindByID(id int64) (models.Registration, bool, error) {
	var reg models.Registration
	err := s.db.QueryRow(`
		SELECT id, email, created_at, ip
		FROM registrations
		WHERE id = $1
	`, id).Scan(&reg.ID, &reg.Email, &reg.CreatedAt, &reg.IP)

	if err == sql.ErrNoRows {
		return models.Registration{}, false, nil
	}
	if err != nil {
		return models.Registration{}, false, fmt.Errorf("failed to query registration: %w", err)
	}

	return reg, true, nil
}

// ListAll returns every registration, newest first. The id tie-break
// keeps the order stable when two rows share a timestamp.
func (s *Store) ListAll() ([]models.Registration, error) {
	rows, err := s.db.Query(`
		SELECT id, email, created_at, ip
		FROM registrations
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.ID, &reg.Email, &reg.CreatedAt, &reg.IP); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registrations: %w", err)
	}

	return registrations, nil
}

// Count returns the number of live registrations.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM registrations`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

// DeleteByID removes a registration and reports whether a row was
// actually removed. Deleting an absent id is not an error.
func (s *Store) DeleteByID(id int64) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete registration: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// ExistsByEmail reports whether a registration exists for the
// normalized email.
func (s *Store) ExistsByEmail(email string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM registrations WHERE email = $1`, email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// isUniqueViolation recognizes a unique-constraint failure from either
// supported driver: postgres error code 23505, or the sqlite constraint
// message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
