package main

import (
	"net/http"
)

type DashboardData struct {
	Available []GetAnimalsByStatusRow
	Pending   []GetAnimalsByStatusRow
	OpenTasks []GetOpenTasksRow
	NPending  int
}

// dashboardHandler is the staff/volunteer landing page. Logged-in adopters
// without the dashboard capability are sent to the public listing instead.
func (server *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	if !commonData.User.HasCapability(CapViewDashboard) {
		server.redirect(w, r, "/adoptable")
		return
	}

	available, err := server.Queries.GetAnimalsByStatus(ctx, int32(ListingStatusAVAILABLE))
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	pending, err := server.Queries.GetAnimalsByStatus(ctx, int32(ListingStatusPENDING_ADOPTION))
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	tasks, err := server.Queries.GetOpenTasks(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	data := &DashboardData{
		Available: available,
		Pending:   pending,
		OpenTasks: tasks,
	}

	if commonData.User.HasCapability(CapManageApplications) {
		applications, err := server.Queries.GetPendingApplications(ctx)
		if err != nil {
			server.renderError(w, r, commonData, err)
			return
		}
		data.NPending = len(applications)
	}

	_ = DashboardPage(commonData, data).Render(ctx, w)
}

func (server *Server) postPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	// Display name is the only self-serve preference so far
	name, err := server.getFormValue(r, "display-name")
	if err != nil || name == "" {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Queries.SetDisplayName(ctx, SetDisplayNameParams{
		ID:          commonData.User.AppuserID,
		DisplayName: name,
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("Preferences saved")
	server.redirectToReferer(w, r)
}
