// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session issues and validates ephemeral admin session tokens.

Tokens are 32 bytes of crypto/rand output, hex-encoded. The Registry is
a process-wide in-memory set with no expiry and no persistence: a token
stays valid until it is revoked (logout) or the process restarts. There
is exactly one shared admin credential, so tokens carry no identity.

	sessions := session.NewRegistry()
	token, err := sessions.Issue()
	sessions.IsValid(token) // true
	sessions.Revoke(token)
	sessions.IsValid(token) // false
*/
package session
