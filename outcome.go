package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func (server *Server) outcomePageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	animal, err := server.Queries.GetAnimal(ctx, animalID)
	if err != nil {
		server.renderError(w, r, commonData, fmt.Errorf("%w: animal %d", ErrNotFound, animalID))
		return
	}

	if err := checkRecordOutcome(animal.Status()); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	applications, err := server.Queries.GetApplicationsForAnimal(ctx, animalID)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	approved := FilterSlice(applications, func(a GetApplicationsForAnimalRow) bool {
		return ApplicationStatus(a.Status) == ApplicationStatusAPPROVED
	})

	_ = OutcomePage(commonData, animal, approved).Render(ctx, w)
}

// recordOutcomeHandler closes an adoption cycle: it writes the outcome row
// and archives the animal in one transaction. The guarded archive update is
// what enforces one outcome per cycle under concurrent submissions.
func (server *Server) recordOutcomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	outcomeTypeStr, err := server.getFormValue(r, "outcome-type")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}
	outcomeType, err := ParseOutcomeType(outcomeTypeStr)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	opt := server.getOptionalFormValues(r, "partner", "owner-name", "note", "outcome-date")

	outcomeDate := pgtype.Date{Time: time.Now(), Valid: true}
	if d, err := time.Parse("2006-01-02", opt["outcome-date"]); err == nil {
		outcomeDate = pgtype.Date{Time: d, Valid: true}
	}

	var applicationID pgtype.Int4
	if outcomeType == OutcomeTypeADOPTION {
		id, err := server.getFormID(r, "application")
		if err != nil {
			server.renderError(w, r, commonData, fmt.Errorf("an adoption outcome needs an application: %w", err))
			return
		}
		applicationID = pgtype.Int4{Int32: id, Valid: true}
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		animal, err := q.GetAnimal(ctx, animalID)
		if err != nil {
			return fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
		}

		if err := checkRecordOutcome(animal.Status()); err != nil {
			return err
		}

		if applicationID.Valid {
			application, err := q.GetApplication(ctx, applicationID.Int32)
			if err != nil {
				return fmt.Errorf("%w: application %d", ErrNotFound, applicationID.Int32)
			}
			if application.AnimalID != animalID {
				return fmt.Errorf("application %d is not for animal %d", applicationID.Int32, animalID)
			}
			if application.AppStatus() != ApplicationStatusAPPROVED {
				return fmt.Errorf("application %d is %s, not %s", applicationID.Int32, application.AppStatus(), ApplicationStatusAPPROVED)
			}
		}

		tag, err := q.ArchiveAnimal(ctx, animalID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// Someone else archived first
			return stateConflict("record outcome", ListingStatusARCHIVED)
		}

		outcomeID, err := q.AddOutcome(ctx, AddOutcomeParams{
			AnimalID:      animalID,
			OutcomeType:   int32(outcomeType),
			ApplicationID: applicationID,
			Partner:       pgtype.Text{String: opt["partner"], Valid: opt["partner"] != ""},
			OwnerName:     pgtype.Text{String: opt["owner-name"], Valid: opt["owner-name"] != ""},
			Note:          pgtype.Text{String: opt["note"], Valid: opt["note"] != ""},
			OutcomeDate:   outcomeDate,
			StaffID:       commonData.User.AppuserID,
		})
		if err != nil {
			return err
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:     animalID,
			AppuserID:    commonData.User.AppuserID,
			EventID:      int32(AnimalEventOutcomeRecorded),
			AssociatedID: pgtype.Int4{Int32: outcomeID, Valid: true},
			Note:         outcomeType.String(),
			Time:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	outcomesTotal.WithLabelValues(outcomeType.String()).Inc()
	commonData.Success("Outcome recorded")
	server.redirect(w, r, fmt.Sprintf("/animal/%d", animalID))
}

// setOutcomeNoteHandler is the corrective edit: the note can be amended
// after the fact, the rest of the outcome record is immutable.
func (server *Server) setOutcomeNoteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	outcomeID, err := server.getPathID(r, "outcome")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	note, err := server.getFormValue(r, "note")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Queries.SetOutcomeNote(ctx, SetOutcomeNoteParams{
		ID:   outcomeID,
		Note: pgtype.Text{String: note, Valid: note != ""},
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	server.redirectToReferer(w, r)
}
