//go:generate go tool go-enum --no-iota --values
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// Account tokens back the email verification, password reset and invitation
// flows. Only the sha256 of the secret is stored; the secret itself goes out
// in the email link and is never seen again. ConsumeAccountToken spends the
// row in the same statement that validates it, so a token works exactly once.
//
// ENUM(
//
//	EmailVerification = 0,
//	PasswordReset     = 1,
//	Invitation        = 2,
//
// )
type TokenPurpose int32

const (
	verificationTokenLifetime = 48 * time.Hour
	passwordResetLifetime     = 2 * time.Hour
	invitationLifetime        = 14 * 24 * time.Hour
)

func newTokenSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func hashTokenSecret(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

func tokenLifetime(purpose TokenPurpose) time.Duration {
	switch purpose {
	case TokenPurposePasswordReset:
		return passwordResetLifetime
	case TokenPurposeInvitation:
		return invitationLifetime
	default:
		return verificationTokenLifetime
	}
}
