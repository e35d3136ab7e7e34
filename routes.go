package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

func (server *Server) adminRootHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	invitations, err := server.Queries.GetOpenInvitations(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = AdminRootPage(commonData, invitations).Render(ctx, w)
}

func (server *Server) renderError(w http.ResponseWriter, r *http.Request, commonData *CommonData, err error) {
	ctx := r.Context()
	w.WriteHeader(getStatusCode(err))
	_ = ErrorPage(commonData, err).Render(ctx, w)
	logError(r, err)
}

func ajaxError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	logError(r, err)
	w.WriteHeader(statusCode)
}

func logError(r *http.Request, err error) {
	log.Error().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Err(err).
		Msg("handler error")
}

func (server *Server) fourOhFourHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)
	server.renderError(w, r, commonData, fmt.Errorf("%w: %s", ErrNotFound, r.RequestURI))
}

func jsonHandler[T any](
	server *Server,
	w http.ResponseWriter,
	r *http.Request,
	f func(q *Queries, req T) error,
) {
	ctx := r.Context()

	bytes, err := io.ReadAll(r.Body)
	if err != nil {
		ajaxError(w, r, err, http.StatusBadRequest)
		return
	}
	var recv T
	if err := json.Unmarshal(bytes, &recv); err != nil {
		ajaxError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		return f(q, recv)
	}); err != nil {
		ajaxError(w, r, err, getStatusCode(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
