package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func (server *Server) tasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	tasks, err := server.Queries.GetOpenTasks(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	users, err := server.Queries.GetAppusers(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	// Only staff and volunteers can be assignees
	assignees := FilterSlice(users, func(u GetAppusersRow) bool {
		return AccessLevel(u.AccessLevel) >= AccessLevelVolunteer
	})

	_ = TasksPage(commonData, tasks, assignees).Render(ctx, w)
}

func (server *Server) postTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	title, err := server.getFormValue(r, "title")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	opt := server.getOptionalFormValues(r, "details", "animal", "assignee", "due-date")

	params := AddTaskParams{
		Title:     title,
		Details:   pgtype.Text{String: opt["details"], Valid: opt["details"] != ""},
		CreatedBy: commonData.User.AppuserID,
	}
	if id, err := strconv.ParseInt(opt["animal"], 10, 32); err == nil {
		params.AnimalID = pgtype.Int4{Int32: int32(id), Valid: true}
	}
	if server.getCheckboxValue(r, "assign-to-me") {
		params.AssigneeID = pgtype.Int4{Int32: commonData.User.AppuserID, Valid: true}
	} else if id, err := strconv.ParseInt(opt["assignee"], 10, 32); err == nil {
		params.AssigneeID = pgtype.Int4{Int32: int32(id), Valid: true}
	}
	if d, err := time.Parse("2006-01-02", opt["due-date"]); err == nil {
		params.DueDate = pgtype.Date{Time: d, Valid: true}
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		_, err := q.AddTask(ctx, params)
		return err
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("Task added")
	server.redirectToReferer(w, r)
}

// completeTaskHandler marks a task done. The guarded update means a task
// completed twice in a race still reports done exactly once.
func (server *Server) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	taskID, err := server.getPathID(r, "task")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	tag, err := server.Queries.CompleteTask(ctx, CompleteTaskParams{
		ID:     taskID,
		DoneBy: commonData.User.AppuserID,
	})
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}
	if tag.RowsAffected() == 0 {
		commonData.Info("Task was already done")
	} else {
		commonData.Success("Task done")
	}

	server.redirectToReferer(w, r)
}

func (server *Server) assignTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	taskID, err := server.getPathID(r, "task")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	var assignee pgtype.Int4
	if id, err := server.getFormID(r, "assignee"); err == nil {
		assignee = pgtype.Int4{Int32: id, Valid: true}
	}

	if err := server.Queries.AssignTask(ctx, AssignTaskParams{
		ID:         taskID,
		AssigneeID: assignee,
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	server.redirectToReferer(w, r)
}
