package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func (server *Server) intakePageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	species, err := server.Queries.GetSpecies(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	breeds, err := server.Queries.GetBreeds(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = IntakePage(commonData, species, breeds).Render(ctx, w)
}

func (server *Server) postIntakeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	name, err := server.getFormValue(r, "name")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	speciesID, err := server.getFormID(r, "species")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	opt := server.getOptionalFormValues(r, "breed", "color", "sex", "size", "weight-kg", "birth-date", "health-status", "description")

	params := AddAnimalParams{
		Name:          name,
		SpeciesID:     speciesID,
		Color:         pgtype.Text{String: opt["color"], Valid: opt["color"] != ""},
		HealthStatus:  pgtype.Text{String: opt["health-status"], Valid: opt["health-status"] != ""},
		Description:   pgtype.Text{String: opt["description"], Valid: opt["description"] != ""},
		ListingStatus: int32(ListingStatusAVAILABLE),
	}
	if breedID, err := strconv.ParseInt(opt["breed"], 10, 32); err == nil {
		params.BreedID = pgtype.Int4{Int32: int32(breedID), Valid: true}
	}
	if sex, err := ParseSex(opt["sex"]); err == nil {
		params.Sex = int32(sex)
	}
	if size, err := ParseSize(opt["size"]); err == nil {
		params.Size = int32(size)
	}
	if kg, err := strconv.ParseFloat(opt["weight-kg"], 64); err == nil {
		params.WeightKg = pgtype.Float8{Float64: kg, Valid: true}
	}
	if bd, err := time.Parse("2006-01-02", opt["birth-date"]); err == nil {
		params.BirthDate = pgtype.Date{Time: bd, Valid: true}
	}

	var animalID int32
	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		var err error
		animalID, err = q.AddAnimal(ctx, params)
		if err != nil {
			return err
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:  animalID,
			AppuserID: commonData.User.AppuserID,
			EventID:   int32(AnimalEventIntake),
			Note:      "",
			Time:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return fmt.Errorf("recording intake: %w", err)
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	intakesTotal.Inc()
	commonData.Success("%s is now listed", name)
	server.redirect(w, r, fmt.Sprintf("/animal/%d", animalID))
}

func (server *Server) getAnimalHandler(w http.ResponseWriter, r *http.Request) {
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

	events, err := server.Queries.GetEventsForAnimal(ctx, animalID)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	species, err := server.Queries.GetSpecies(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	breeds, err := server.Queries.GetBreeds(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	view := AnimalView{
		Animal: animal,
		Events: events,
	}
	if idx := Find(species, func(s Species) bool { return s.ID == animal.SpeciesID }); idx != -1 {
		view.SpeciesName = species[idx].Name
	}
	if animal.BreedID.Valid {
		if idx := Find(breeds, func(b Breed) bool { return b.ID == animal.BreedID.Int32 }); idx != -1 {
			view.BreedName = breeds[idx].Name
		}
	}

	// Staff see the application list inline
	if commonData.User.HasCapability(CapManageApplications) {
		applications, err := server.Queries.GetApplicationsForAnimal(ctx, animalID)
		if err != nil {
			server.renderError(w, r, commonData, err)
			return
		}
		view.Applications = applications
	}

	if animal.Status() == ListingStatusARCHIVED && commonData.User.HasCapability(CapManageOutcomes) {
		outcome, err := server.Queries.GetOutcomeForAnimal(ctx, animalID)
		if err == nil {
			view.Outcome = &outcome
		}
	}

	_ = AnimalPage(commonData, view, species, breeds).Render(ctx, w)
}

func (server *Server) animalsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	status := ListingStatusAVAILABLE
	if str, err := server.getQueryValue(r, "status"); err == nil {
		if parsed, err := ParseListingStatus(str); err == nil {
			status = parsed
		}
	}

	rows, err := server.Queries.GetAnimalsByStatus(ctx, int32(status))
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	_ = AnimalListPage(commonData, status, rows).Render(ctx, w)
}

func (server *Server) updateAnimalHandler(w http.ResponseWriter, r *http.Request) {
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

	name, err := server.getFormValue(r, "name")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	speciesID, err := server.getFormID(r, "species")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	opt := server.getOptionalFormValues(r, "breed", "color", "sex", "size", "weight-kg", "birth-date", "health-status", "description")

	params := UpdateAnimalParams{
		ID:           animalID,
		Name:         name,
		SpeciesID:    speciesID,
		Sex:          animal.Sex,
		Size:         animal.Size,
		Color:        pgtype.Text{String: opt["color"], Valid: opt["color"] != ""},
		HealthStatus: pgtype.Text{String: opt["health-status"], Valid: opt["health-status"] != ""},
		Description:  pgtype.Text{String: opt["description"], Valid: opt["description"] != ""},
	}
	if breedID, err := strconv.ParseInt(opt["breed"], 10, 32); err == nil {
		params.BreedID = pgtype.Int4{Int32: int32(breedID), Valid: true}
	}
	if sex, err := ParseSex(opt["sex"]); err == nil {
		params.Sex = int32(sex)
	}
	if size, err := ParseSize(opt["size"]); err == nil {
		params.Size = int32(size)
	}
	if kg, err := strconv.ParseFloat(opt["weight-kg"], 64); err == nil {
		params.WeightKg = pgtype.Float8{Float64: kg, Valid: true}
	}
	if bd, err := time.Parse("2006-01-02", opt["birth-date"]); err == nil {
		params.BirthDate = pgtype.Date{Time: bd, Valid: true}
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		if err := q.UpdateAnimal(ctx, params); err != nil {
			return err
		}

		note := ""
		if name != animal.Name {
			note = fmt.Sprintf("'%s' -> '%s'", animal.Name, name)
		}
		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:  animalID,
			AppuserID: commonData.User.AppuserID,
			EventID:   int32(AnimalEventUpdated),
			Note:      note,
			Time:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	server.redirectToReferer(w, r)
}

// reintakeHandler returns a previously archived animal to the adoptable pool.
// The guarded update makes the archived check hold under concurrent requests.
func (server *Server) reintakeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		animal, err := q.GetAnimal(ctx, animalID)
		if err != nil {
			return fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
		}

		if err := checkReintake(animal.Status()); err != nil {
			return err
		}

		tag, err := q.ReintakeAnimal(ctx, animalID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return stateConflict("process re-intake", animal.Status())
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:  animalID,
			AppuserID: commonData.User.AppuserID,
			EventID:   int32(AnimalEventReintake),
			Note:      "",
			Time:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	intakesTotal.Inc()
	commonData.Success("Animal is available again")
	server.redirectToReferer(w, r)
}

// relistHandler reopens a PENDING_ADOPTION animal, for when a primary
// approval falls through without an outcome (adopter backed out).
func (server *Server) relistHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		animal, err := q.GetAnimal(ctx, animalID)
		if err != nil {
			return fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
		}

		if err := checkRelist(animal.Status()); err != nil {
			return err
		}

		tag, err := q.RelistAnimal(ctx, animalID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return stateConflict("relist animal", animal.Status())
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:  animalID,
			AppuserID: commonData.User.AppuserID,
			EventID:   int32(AnimalEventRelisted),
			Note:      "",
			Time:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	commonData.Success("Animal is available again")
	server.redirectToReferer(w, r)
}

func (server *Server) uploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}
	defer file.Close()

	if header.Size > MaxImageSize {
		server.renderError(w, r, commonData, fmt.Errorf("photo too large"))
		return
	}

	id, err := server.FileBackend.Upload(ctx, file, FileInfo{
		FileName: header.Filename,
		MIMEInfo: header.Header,
		Size:     header.Size,
		Created:  time.Now(),
		Creator:  commonData.User.AppuserID,
	})
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	if err := server.Transaction(ctx, func(ctx context.Context, q *Queries) error {
		if err := q.SetAnimalPhoto(ctx, SetAnimalPhotoParams{
			ID:      animalID,
			PhotoID: pgtype.Text{String: id, Valid: true},
		}); err != nil {
			return err
		}

		if _, err := q.AddAnimalEvent(ctx, AddAnimalEventParams{
			AnimalID:  animalID,
			AppuserID: commonData.User.AppuserID,
			EventID:   int32(AnimalEventPhotoChanged),
			Note:      header.Filename,
			Time:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return err
		}
		return nil
	}); err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	// Old photo is unreferenced now
	if animal.PhotoID.Valid {
		if err := server.FileBackend.Delete(ctx, animal.PhotoID.String); err != nil {
			commonData.Warning("could not remove previous photo: %v", err)
		}
	}

	server.redirectToReferer(w, r)
}

func (server *Server) photoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := server.getPathValue(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := uuid.Validate(id); err != nil {
		http.Error(w, "bad photo id", http.StatusBadRequest)
		return
	}

	info, err := server.FileBackend.ReadInfo(ctx, id)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	file, err := server.FileBackend.Open(ctx, id, info)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", info.MIMEContentType())
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = io.Copy(w, file)
}
