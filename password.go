package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 10

// Local accounts exist alongside Google sign-in for adopters who do not want
// to use an external identity. Responses to login, registration and reset
// requests never reveal whether an address is registered.

func (server *Server) registerPageHandler(w http.ResponseWriter, r *http.Request) {
	invite, _ := server.getQueryValue(r, "invite")
	_ = RegisterPage(&CommonData{BuildKey: server.BuildKey}, invite).Render(r.Context(), w)
}

func (server *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := server.getFormValues(r, "email", "display-name", "password")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(fields["password"]) < minPasswordLength {
		http.Error(w, fmt.Sprintf("password must be at least %d characters", minPasswordLength), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields["password"]), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	invite, _ := server.getFormValue(r, "invite")

	var userID int32
	var invited bool
	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		if invite != "" {
			tok, err := q.ConsumeAccountToken(ctx, ConsumeAccountTokenParams{
				TokenHash: hashTokenSecret(invite),
				Purpose:   int32(TokenPurposeInvitation),
			})
			if err == nil && tok.Email == fields["email"] {
				invited = true
			}
		}

		var err error
		userID, err = q.AddLocalUser(ctx, AddLocalUserParams{
			Email:        fields["email"],
			DisplayName:  fields["display-name"],
			PasswordHash: string(hash),
			AccessLevel:  int32(AccessLevelUser),
		})
		if err != nil {
			return err
		}

		if invited {
			return q.MarkEmailVerified(ctx, userID)
		}
		return nil
	}); err != nil {
		// Most likely a duplicate email; do not leak which
		log.Warn().Err(err).Msg("registration failed")
		_ = RegisterDonePage(&CommonData{BuildKey: server.BuildKey}).Render(ctx, w)
		return
	}

	if !invited {
		server.startEmailVerification(ctx, userID, fields["email"])
	}

	_ = RegisterDonePage(&CommonData{BuildKey: server.BuildKey}).Render(ctx, w)
}

func (server *Server) startEmailVerification(ctx context.Context, userID int32, email string) {
	secret := newTokenSecret()
	if err := server.Queries.AddAccountToken(ctx, AddAccountTokenParams{
		AppuserID: pgtype.Int4{Int32: userID, Valid: true},
		Email:     email,
		TokenHash: hashTokenSecret(secret),
		Purpose:   int32(TokenPurposeEmailVerification),
		Expires:   pgtype.Timestamptz{Time: time.Now().Add(tokenLifetime(TokenPurposeEmailVerification)), Valid: true},
	}); err != nil {
		log.Error().Err(err).Msg("storing verification token")
		return
	}
	server.Mail.SendVerification(email, server.Config.Shelter.PublicURL+"/verify-email?token="+secret)
}

func (server *Server) verifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	secret, err := server.getQueryValue(r, "token")
	if err != nil {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	tok, err := server.Queries.ConsumeAccountToken(ctx, ConsumeAccountTokenParams{
		TokenHash: hashTokenSecret(secret),
		Purpose:   int32(TokenPurposeEmailVerification),
	})
	if err != nil {
		http.Error(w, "invalid or expired link", http.StatusBadRequest)
		return
	}

	if tok.AppuserID.Valid {
		if err := server.Queries.MarkEmailVerified(ctx, tok.AppuserID.Int32); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (server *Server) passwordLoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := server.getFormValues(r, "email", "password")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := server.Queries.GetUserByEmail(ctx, fields["email"])
	if err != nil || !user.PasswordHash.Valid {
		// Compare against a dummy hash so both paths cost the same
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0XB/PNEGhkFNaSgVy7wx1r1pmO2"), []byte(fields["password"]))
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(fields["password"])); err != nil {
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
		return
	}

	if !user.EmailVerified.Valid {
		http.Error(w, "email not verified", http.StatusUnauthorized)
		return
	}

	sess, _ := server.Cookies.Get(r, "auth")
	sess.Values["user_id"] = user.ID
	sess.Values["email"] = user.Email
	_ = sess.Save(r, w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (server *Server) forgotPasswordPageHandler(w http.ResponseWriter, r *http.Request) {
	_ = ForgotPasswordPage(&CommonData{BuildKey: server.BuildKey}).Render(r.Context(), w)
}

func (server *Server) forgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, err := server.getFormValue(r, "email")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := server.Queries.GetUserByEmail(ctx, email)
	if err == nil && user.PasswordHash.Valid {
		secret := newTokenSecret()
		if err := server.Queries.AddAccountToken(ctx, AddAccountTokenParams{
			AppuserID: pgtype.Int4{Int32: user.ID, Valid: true},
			Email:     email,
			TokenHash: hashTokenSecret(secret),
			Purpose:   int32(TokenPurposePasswordReset),
			Expires:   pgtype.Timestamptz{Time: time.Now().Add(tokenLifetime(TokenPurposePasswordReset)), Valid: true},
		}); err != nil {
			log.Error().Err(err).Msg("storing reset token")
		} else {
			server.Mail.SendPasswordReset(email, server.Config.Shelter.PublicURL+"/reset-password?token="+secret)
		}
	} else if errors.Is(err, pgx.ErrNoRows) {
		log.Info().Msg("password reset requested for unknown address")
	}

	// Same response whether or not the address exists
	_ = ResetRequestedPage(&CommonData{BuildKey: server.BuildKey}).Render(ctx, w)
}

func (server *Server) resetPasswordPageHandler(w http.ResponseWriter, r *http.Request) {
	secret, err := server.getQueryValue(r, "token")
	if err != nil {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}
	_ = ResetPasswordPage(&CommonData{BuildKey: server.BuildKey}, secret).Render(r.Context(), w)
}

func (server *Server) resetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := server.getFormValues(r, "token", "password")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(fields["password"]) < minPasswordLength {
		http.Error(w, fmt.Sprintf("password must be at least %d characters", minPasswordLength), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields["password"]), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		tok, err := q.ConsumeAccountToken(ctx, ConsumeAccountTokenParams{
			TokenHash: hashTokenSecret(fields["token"]),
			Purpose:   int32(TokenPurposePasswordReset),
		})
		if err != nil {
			return err
		}
		if !tok.AppuserID.Valid {
			return fmt.Errorf("reset token without user")
		}
		return q.SetPasswordHash(ctx, SetPasswordHashParams{
			ID:           tok.AppuserID.Int32,
			PasswordHash: string(hash),
		})
	}); err != nil {
		http.Error(w, "invalid or expired link", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}
