//go:generate go tool go-enum --no-iota --values
package main

import "net/http"

// None is the absence of an authenticated session; it satisfies no
// capability.
//
// ENUM(
//
//	None      = 0,
//	User      = 1,
//	Volunteer = 2,
//	Staff     = 3,
//	Admin     = 4,
//
// )
type AccessLevel int32

func (server *Server) accessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)
	_ = AccessLevelPage(commonData).Render(ctx, w)
}
