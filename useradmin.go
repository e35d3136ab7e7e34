package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func (server *Server) userAdminHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	users, err := server.Queries.GetAppusers(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = UserAdminPage(commonData, users).Render(ctx, w)
}

func (server *Server) setAccessLevelHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	userID, err := server.getPathID(r, "user")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	levelStr, err := server.getFormValue(r, "access-level")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}
	level, err := ParseAccessLevel(levelStr)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	// Admins cannot lock themselves out
	if userID == commonData.User.AppuserID && level < AccessLevelAdmin {
		server.renderError(w, r, commonData, fmt.Errorf("cannot lower your own access level"))
		return
	}

	if err := server.Queries.SetAccessLevel(ctx, SetAccessLevelParams{
		ID:          userID,
		AccessLevel: int32(level),
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("Access level set to %s", level)
	server.redirectToReferer(w, r)
}

func (server *Server) userConfirmScrubHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	userID, err := server.getPathID(r, "user")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	user, err := server.Queries.GetUser(ctx, userID)
	if err != nil {
		server.renderError(w, r, commonData, fmt.Errorf("%w: user %d", ErrNotFound, userID))
		return
	}

	_ = ConfirmScrubPage(commonData, user).Render(ctx, w)
}

// userDoScrubHandler anonymizes the account instead of deleting the row, so
// application and event history stays intact.
func (server *Server) userDoScrubHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	userID, err := server.getPathID(r, "user")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if userID == commonData.User.AppuserID {
		server.renderError(w, r, commonData, fmt.Errorf("cannot scrub your own account"))
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		if err := q.ScrubAppuser(ctx, userID); err != nil {
			return err
		}
		return q.DeleteTokensForUser(ctx, userID)
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("User scrubbed")
	server.redirect(w, r, "/users")
}

func (server *Server) inviteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	email, err := server.getFormValue(r, "email")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	secret := newTokenSecret()
	if err := server.Queries.AddAccountToken(ctx, AddAccountTokenParams{
		Email:     email,
		TokenHash: hashTokenSecret(secret),
		Purpose:   int32(TokenPurposeInvitation),
		Expires:   pgtype.Timestamptz{Time: time.Now().Add(tokenLifetime(TokenPurposeInvitation)), Valid: true},
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	server.Mail.SendInvitation(email, server.Config.Shelter.PublicURL+"/register?invite="+secret)

	commonData.Success("Invitation sent to %s", email)
	server.redirectToReferer(w, r)
}

func (server *Server) inviteDeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	id, err := server.getPathID(r, "id")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Queries.DeleteAccountToken(ctx, id); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("Invitation withdrawn")
	server.redirectToReferer(w, r)
}
