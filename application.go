package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (server *Server) submitApplicationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	motivation, _ := server.getFormValue(r, "motivation")

	// One active application per applicant per animal; resubmission just
	// points back at the existing one.
	existing, err := server.Queries.GetActiveApplication(ctx, GetActiveApplicationParams{
		AnimalID:    animalID,
		ApplicantID: commonData.User.AppuserID,
	})
	if err == nil {
		commonData.Info("You already have an application for this animal")
		server.redirect(w, r, fmt.Sprintf("/applications#application-%d", existing.ID))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		animal, err := q.GetAnimal(ctx, animalID)
		if err != nil {
			return fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
		}

		if err := checkSubmitApplication(animal.Status()); err != nil {
			return err
		}

		appID, err := q.AddApplication(ctx, AddApplicationParams{
			AnimalID:    animalID,
			ApplicantID: commonData.User.AppuserID,
			Status:      int32(ApplicationStatusPENDING),
			Motivation:  pgtype.Text{String: motivation, Valid: motivation != ""},
		})
		if err != nil {
			return err
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:     animalID,
			AppuserID:    commonData.User.AppuserID,
			EventID:      int32(AnimalEventApplicationSubmitted),
			AssociatedID: pgtype.Int4{Int32: appID, Valid: true},
			Note:         "",
			Time:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	applicationsTotal.Inc()
	commonData.Success("Application submitted")
	server.redirect(w, r, "/applications")
}

func (server *Server) ownApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	rows, err := server.Queries.GetApplicationsForApplicant(ctx, commonData.User.AppuserID)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = OwnApplicationsPage(commonData, rows).Render(ctx, w)
}

func (server *Server) pendingApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	rows, err := server.Queries.GetPendingApplications(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = PendingApplicationsPage(commonData, rows).Render(ctx, w)
}

// approveApplicationHandler implements first-approval-wins. The whole
// decision runs in one transaction: whether another approved application
// already holds primary, what the animal's status is, and the guarded
// transition to PENDING_ADOPTION all commit or roll back together.
func (server *Server) approveApplicationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	appID, err := server.getPathID(r, "application")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	var plan ApprovalPlan
	var application AdoptionApplication
	var animal Animal
	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		application, err = q.GetApplication(ctx, appID)
		if err != nil {
			return fmt.Errorf("%w: application %d", ErrNotFound, appID)
		}
		if application.AppStatus() != ApplicationStatusPENDING {
			return fmt.Errorf("application is already %s", application.AppStatus())
		}

		animal, err = q.GetAnimal(ctx, application.AnimalID)
		if err != nil {
			return err
		}

		hasPrimary, err := q.HasPrimaryApplication(ctx, application.AnimalID)
		if err != nil {
			return err
		}

		plan, err = planApproval(animal.Status(), hasPrimary)
		if err != nil {
			return err
		}

		if err := q.ApproveApplication(ctx, ApproveApplicationParams{
			ID:        appID,
			IsPrimary: plan.IsPrimary,
			DecidedBy: commonData.User.AppuserID,
		}); err != nil {
			return err
		}

		if plan.NewStatus == ListingStatusPENDING_ADOPTION {
			tag, err := q.MarkAnimalPending(ctx, application.AnimalID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				// Lost the race against a concurrent approval
				return stateConflict("approve application", ListingStatusPENDING_ADOPTION)
			}
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:     application.AnimalID,
			AppuserID:    commonData.User.AppuserID,
			EventID:      int32(AnimalEventApplicationApproved),
			AssociatedID: pgtype.Int4{Int32: appID, Valid: true},
			Note:         "",
			Time:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if applicant, err := server.Queries.GetUser(ctx, application.ApplicantID); err == nil {
		server.Mail.SendApplicationDecision(applicant.Email, animal.Name, "approved", server.Config.URLForAnimal(animal.ID))
	}

	if plan.IsPrimary {
		commonData.Success("Application approved; adoption is now pending")
	} else {
		commonData.Success("Application approved and waitlisted")
	}
	server.redirectToReferer(w, r)
}

// Rejecting the primary does not move the animal back to AVAILABLE on its
// own; staff relist explicitly when the adoption has fallen through.
func (server *Server) rejectApplicationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	appID, err := server.getPathID(r, "application")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	var application AdoptionApplication
	var animal Animal
	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		application, err = q.GetApplication(ctx, appID)
		if err != nil {
			return fmt.Errorf("%w: application %d", ErrNotFound, appID)
		}
		if application.AppStatus() == ApplicationStatusREJECTED {
			return fmt.Errorf("application is already %s", application.AppStatus())
		}

		animal, err = q.GetAnimal(ctx, application.AnimalID)
		if err != nil {
			return err
		}

		if err := q.RejectApplication(ctx, RejectApplicationParams{
			ID:        appID,
			DecidedBy: commonData.User.AppuserID,
		}); err != nil {
			return err
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:     application.AnimalID,
			AppuserID:    commonData.User.AppuserID,
			EventID:      int32(AnimalEventApplicationRejected),
			AssociatedID: pgtype.Int4{Int32: appID, Valid: true},
			Note:         "",
			Time:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if applicant, err := server.Queries.GetUser(ctx, application.ApplicantID); err == nil {
		server.Mail.SendApplicationDecision(applicant.Email, animal.Name, "rejected", server.Config.URLForAnimal(animal.ID))
	}

	commonData.Success("Application rejected")
	server.redirectToReferer(w, r)
}
