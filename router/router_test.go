// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/atelier-ongle/waitlist-server/hub"
	"github.com/atelier-ongle/waitlist-server/models"
	"github.com/atelier-ongle/waitlist-server/session"
	"github.com/atelier-ongle/waitlist-server/store"
	"github.com/atelier-ongle/waitlist-server/testutil"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := testutil.SetupTestDB(t)
	handler := NewRouter(store.New(db), session.NewRegistry(), hub.New(), testutil.GetTestConfig())

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestRootEndpoint(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestPreflight(t *testing.T) {
	srv := setupServer(t)

	req, _ := http.NewRequest("OPTIONS", srv.URL+"/api/waitlist", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", resp.StatusCode)
	}
	if origin := resp.Header.Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Expected Allow-Origin *, got %q", origin)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := setupServer(t)

	// Wrong method on a registered path
	resp, err := http.Get(srv.URL + "/api/auth/login")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

// TestLiveUpdateLoop drives the public surface end to end: a websocket
// subscriber sees init, then the signup submitted over plain HTTP.
func TestLiveUpdateLoop(t *testing.T) {
	srv := setupServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var ev models.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("Failed to read init event: %v", err)
	}
	if ev.Type != models.EventInit || ev.Count != 0 {
		t.Fatalf("Expected init with count 0, got %+v", ev)
	}

	body, _ := json.Marshal(models.SubmitRegistrationRequest{Email: "jane@example.com"})
	resp, err := http.Post(srv.URL+"/api/waitlist", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("Failed to read broadcast: %v", err)
	}
	if ev.Type != models.EventNewRegistration {
		t.Errorf("Expected new_registration, got %s", ev.Type)
	}
	if ev.Count != 1 {
		t.Errorf("Expected count 1, got %d", ev.Count)
	}
	if ev.Registration == nil || ev.Registration.Email != "jane@example.com" {
		t.Errorf("Unexpected registration payload: %+v", ev.Registration)
	}
}
