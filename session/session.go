// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// tokenBytes is the entropy of a session token. 32 bytes = 256 bits.
const tokenBytes = 32

// Registry holds the set of currently-valid admin session tokens.
// State is in-memory only: a process restart logs every admin out,
// which is the intended behavior for the single shared credential.
type Registry struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]struct{})}
}

// Issue generates a new unguessable token and records it as valid.
func (r *Registry) Issue() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(b)

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()

	return token, nil
}

// IsValid reports whether the token is currently valid.
func (r *Registry) IsValid(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tokens[token]
	return ok
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}
