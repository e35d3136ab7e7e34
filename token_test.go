package main

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestNewTokenSecret(t *testing.T) {
	a := newTokenSecret()
	b := newTokenSecret()
	if a == b {
		t.Error("two secrets should not collide")
	}
	raw, err := base64.RawURLEncoding.DecodeString(a)
	if err != nil {
		t.Fatalf("secret is not url-safe base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("secret is %d bytes, want 32", len(raw))
	}
}

func TestHashTokenSecret(t *testing.T) {
	h1 := hashTokenSecret("secret")
	h2 := hashTokenSecret("secret")
	if !bytes.Equal(h1, h2) {
		t.Error("hash should be deterministic")
	}
	if bytes.Equal(h1, hashTokenSecret("other")) {
		t.Error("different secrets should hash differently")
	}
	if len(h1) != 32 {
		t.Errorf("hash is %d bytes, want 32", len(h1))
	}
}

func TestTokenLifetime(t *testing.T) {
	if tokenLifetime(TokenPurposePasswordReset) >= tokenLifetime(TokenPurposeEmailVerification) {
		t.Error("password reset tokens should be shorter lived than verification tokens")
	}
	if tokenLifetime(TokenPurposeInvitation) <= tokenLifetime(TokenPurposeEmailVerification) {
		t.Error("invitations should outlive verification tokens")
	}
}
