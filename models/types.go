// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Event type constants for the live update channel
const (
	EventInit               = "init"
	EventNewRegistration    = "new_registration"
	EventDeleteRegistration = "delete_registration"
)

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type SubmitRegistrationRequest struct {
	Email string `json:"email"`
}

// Response types

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SubmitRegistrationResponse struct {
	Success      bool         `json:"success"`
	Registration Registration `json:"registration"`
}

type ListRegistrationsResponse struct {
	Registrations []Registration `json:"registrations"`
	Count         int            `json:"count"`
}

// Domain types

// Registration is one waitlist signup. Email is stored normalized
// (trimmed, lower-cased); IP is the originating address if known.
type Registration struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IP        *string   `json:"ip,omitempty"`
}

// Event is one payload on the live update channel. Type decides which
// of the optional fields is meaningful; use the constructors below so
// nothing outside this package builds a partial event.
type Event struct {
	Type         string        `json:"type"`
	Count        int           `json:"count"`
	Registration *Registration `json:"registration,omitempty"`
	ID           int64         `json:"id,omitempty"`
}

// InitEvent seeds a newly connected subscriber with the current count.
func InitEvent(count int) Event {
	return Event{Type: EventInit, Count: count}
}

// NewRegistrationEvent announces a signup together with the new total.
func NewRegistrationEvent(reg Registration, count int) Event {
	return Event{Type: EventNewRegistration, Count: count, Registration: &reg}
}

// DeleteRegistrationEvent announces a removal together with the new total.
func DeleteRegistrationEvent(id int64, count int) Event {
	return Event{Type: EventDeleteRegistration, Count: count, ID: id}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
