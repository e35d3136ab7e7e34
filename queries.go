package main

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so the same Queries
// value works inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// ---- Animals

const addAnimal = `
INSERT INTO animal (name, species_id, breed_id, color, sex, size, weight_kg, birth_date, listing_status, health_status, description, time_intake)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
RETURNING id
`

type AddAnimalParams struct {
	Name          string
	SpeciesID     int32
	BreedID       pgtype.Int4
	Color         pgtype.Text
	Sex           int32
	Size          int32
	WeightKg      pgtype.Float8
	BirthDate     pgtype.Date
	ListingStatus int32
	HealthStatus  pgtype.Text
	Description   pgtype.Text
}

func (q *Queries) AddAnimal(ctx context.Context, arg AddAnimalParams) (int32, error) {
	row := q.db.QueryRow(ctx, addAnimal,
		arg.Name,
		arg.SpeciesID,
		arg.BreedID,
		arg.Color,
		arg.Sex,
		arg.Size,
		arg.WeightKg,
		arg.BirthDate,
		arg.ListingStatus,
		arg.HealthStatus,
		arg.Description,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getAnimal = `
SELECT id, name, species_id, breed_id, color, sex, size, weight_kg, birth_date, listing_status, health_status, description, photo_id, time_intake, time_archived
FROM animal
WHERE id = $1
`

func (q *Queries) GetAnimal(ctx context.Context, id int32) (Animal, error) {
	row := q.db.QueryRow(ctx, getAnimal, id)
	var a Animal
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.SpeciesID,
		&a.BreedID,
		&a.Color,
		&a.Sex,
		&a.Size,
		&a.WeightKg,
		&a.BirthDate,
		&a.ListingStatus,
		&a.HealthStatus,
		&a.Description,
		&a.PhotoID,
		&a.TimeIntake,
		&a.TimeArchived,
	)
	return a, err
}

const getAnimalsByStatus = `
SELECT a.id, a.name, a.listing_status, a.sex, a.size, a.birth_date, a.photo_id, a.time_intake, a.time_archived, s.name AS species, b.name AS breed
FROM animal a
JOIN species s ON s.id = a.species_id
LEFT JOIN breed b ON b.id = a.breed_id
WHERE a.listing_status = $1
ORDER BY a.time_intake DESC
`

type GetAnimalsByStatusRow struct {
	ID            int32
	Name          string
	ListingStatus int32
	Sex           int32
	Size          int32
	BirthDate     pgtype.Date
	PhotoID       pgtype.Text
	TimeIntake    pgtype.Timestamptz
	TimeArchived  pgtype.Timestamptz
	Species       string
	Breed         pgtype.Text
}

func (q *Queries) GetAnimalsByStatus(ctx context.Context, status int32) ([]GetAnimalsByStatusRow, error) {
	rows, err := q.db.Query(ctx, getAnimalsByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetAnimalsByStatusRow
	for rows.Next() {
		var i GetAnimalsByStatusRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.ListingStatus,
			&i.Sex,
			&i.Size,
			&i.BirthDate,
			&i.PhotoID,
			&i.TimeIntake,
			&i.TimeArchived,
			&i.Species,
			&i.Breed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateAnimal = `
UPDATE animal
SET name = $2, species_id = $3, breed_id = $4, color = $5, sex = $6, size = $7, weight_kg = $8, birth_date = $9, health_status = $10, description = $11
WHERE id = $1
`

type UpdateAnimalParams struct {
	ID           int32
	Name         string
	SpeciesID    int32
	BreedID      pgtype.Int4
	Color        pgtype.Text
	Sex          int32
	Size         int32
	WeightKg     pgtype.Float8
	BirthDate    pgtype.Date
	HealthStatus pgtype.Text
	Description  pgtype.Text
}

func (q *Queries) UpdateAnimal(ctx context.Context, arg UpdateAnimalParams) error {
	_, err := q.db.Exec(ctx, updateAnimal,
		arg.ID,
		arg.Name,
		arg.SpeciesID,
		arg.BreedID,
		arg.Color,
		arg.Sex,
		arg.Size,
		arg.WeightKg,
		arg.BirthDate,
		arg.HealthStatus,
		arg.Description,
	)
	return err
}

const setAnimalPhoto = `
UPDATE animal SET photo_id = $2 WHERE id = $1
`

type SetAnimalPhotoParams struct {
	ID      int32
	PhotoID pgtype.Text
}

func (q *Queries) SetAnimalPhoto(ctx context.Context, arg SetAnimalPhotoParams) error {
	_, err := q.db.Exec(ctx, setAnimalPhoto, arg.ID, arg.PhotoID)
	return err
}

// Guarded transitions: the WHERE clause carries the expected status, so a
// concurrent transition loses the race and reports zero rows affected.

const markAnimalPending = `
UPDATE animal SET listing_status = $2 WHERE id = $1 AND listing_status = $3
`

func (q *Queries) MarkAnimalPending(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, markAnimalPending, id, int32(ListingStatusPENDING_ADOPTION), int32(ListingStatusAVAILABLE))
}

const archiveAnimal = `
UPDATE animal SET listing_status = $2, time_archived = now() WHERE id = $1 AND listing_status <> $2
`

func (q *Queries) ArchiveAnimal(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, archiveAnimal, id, int32(ListingStatusARCHIVED))
}

const reintakeAnimal = `
UPDATE animal SET listing_status = $2, time_archived = NULL, time_intake = now() WHERE id = $1 AND listing_status = $3
`

func (q *Queries) ReintakeAnimal(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, reintakeAnimal, id, int32(ListingStatusAVAILABLE), int32(ListingStatusARCHIVED))
}

const relistAnimal = `
UPDATE animal SET listing_status = $2 WHERE id = $1 AND listing_status = $3
`

func (q *Queries) RelistAnimal(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, relistAnimal, id, int32(ListingStatusAVAILABLE), int32(ListingStatusPENDING_ADOPTION))
}

// ---- Adoption applications

const addApplication = `
INSERT INTO adoption_application (animal_id, applicant_id, status, is_primary, motivation, time_submitted)
VALUES ($1, $2, $3, false, $4, now())
RETURNING id
`

type AddApplicationParams struct {
	AnimalID    int32
	ApplicantID int32
	Status      int32
	Motivation  pgtype.Text
}

func (q *Queries) AddApplication(ctx context.Context, arg AddApplicationParams) (int32, error) {
	row := q.db.QueryRow(ctx, addApplication, arg.AnimalID, arg.ApplicantID, arg.Status, arg.Motivation)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getApplication = `
SELECT id, animal_id, applicant_id, status, is_primary, motivation, time_submitted, time_decided, decided_by
FROM adoption_application
WHERE id = $1
`

func (q *Queries) GetApplication(ctx context.Context, id int32) (AdoptionApplication, error) {
	row := q.db.QueryRow(ctx, getApplication, id)
	var a AdoptionApplication
	err := row.Scan(
		&a.ID,
		&a.AnimalID,
		&a.ApplicantID,
		&a.Status,
		&a.IsPrimary,
		&a.Motivation,
		&a.TimeSubmitted,
		&a.TimeDecided,
		&a.DecidedBy,
	)
	return a, err
}

const getActiveApplication = `
SELECT id, animal_id, applicant_id, status, is_primary, motivation, time_submitted, time_decided, decided_by
FROM adoption_application
WHERE animal_id = $1 AND applicant_id = $2 AND status <> $3
ORDER BY time_submitted DESC
LIMIT 1
`

type GetActiveApplicationParams struct {
	AnimalID    int32
	ApplicantID int32
}

// GetActiveApplication returns the applicant's non-rejected application for
// the animal, or pgx.ErrNoRows.
func (q *Queries) GetActiveApplication(ctx context.Context, arg GetActiveApplicationParams) (AdoptionApplication, error) {
	row := q.db.QueryRow(ctx, getActiveApplication, arg.AnimalID, arg.ApplicantID, int32(ApplicationStatusREJECTED))
	var a AdoptionApplication
	err := row.Scan(
		&a.ID,
		&a.AnimalID,
		&a.ApplicantID,
		&a.Status,
		&a.IsPrimary,
		&a.Motivation,
		&a.TimeSubmitted,
		&a.TimeDecided,
		&a.DecidedBy,
	)
	return a, err
}

const hasPrimaryApplication = `
SELECT EXISTS(
	SELECT 1 FROM adoption_application
	WHERE animal_id = $1 AND status = $2 AND is_primary
)
`

func (q *Queries) HasPrimaryApplication(ctx context.Context, animalID int32) (bool, error) {
	row := q.db.QueryRow(ctx, hasPrimaryApplication, animalID, int32(ApplicationStatusAPPROVED))
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getApplicationsForAnimal = `
SELECT aa.id, aa.animal_id, aa.applicant_id, aa.status, aa.is_primary, aa.motivation, aa.time_submitted, aa.time_decided, u.display_name AS applicant_name, u.email AS applicant_email
FROM adoption_application aa
JOIN appuser u ON u.id = aa.applicant_id
WHERE aa.animal_id = $1
ORDER BY aa.time_submitted
`

type GetApplicationsForAnimalRow struct {
	ID             int32
	AnimalID       int32
	ApplicantID    int32
	Status         int32
	IsPrimary      bool
	Motivation     pgtype.Text
	TimeSubmitted  pgtype.Timestamptz
	TimeDecided    pgtype.Timestamptz
	ApplicantName  string
	ApplicantEmail string
}

func (q *Queries) GetApplicationsForAnimal(ctx context.Context, animalID int32) ([]GetApplicationsForAnimalRow, error) {
	rows, err := q.db.Query(ctx, getApplicationsForAnimal, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetApplicationsForAnimalRow
	for rows.Next() {
		var i GetApplicationsForAnimalRow
		if err := rows.Scan(
			&i.ID,
			&i.AnimalID,
			&i.ApplicantID,
			&i.Status,
			&i.IsPrimary,
			&i.Motivation,
			&i.TimeSubmitted,
			&i.TimeDecided,
			&i.ApplicantName,
			&i.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getApplicationsForApplicant = `
SELECT aa.id, aa.animal_id, aa.status, aa.is_primary, aa.time_submitted, aa.time_decided, a.name AS animal_name
FROM adoption_application aa
JOIN animal a ON a.id = aa.animal_id
WHERE aa.applicant_id = $1
ORDER BY aa.time_submitted DESC
`

type GetApplicationsForApplicantRow struct {
	ID            int32
	AnimalID      int32
	Status        int32
	IsPrimary     bool
	TimeSubmitted pgtype.Timestamptz
	TimeDecided   pgtype.Timestamptz
	AnimalName    string
}

func (q *Queries) GetApplicationsForApplicant(ctx context.Context, applicantID int32) ([]GetApplicationsForApplicantRow, error) {
	rows, err := q.db.Query(ctx, getApplicationsForApplicant, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetApplicationsForApplicantRow
	for rows.Next() {
		var i GetApplicationsForApplicantRow
		if err := rows.Scan(
			&i.ID,
			&i.AnimalID,
			&i.Status,
			&i.IsPrimary,
			&i.TimeSubmitted,
			&i.TimeDecided,
			&i.AnimalName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getPendingApplications = `
SELECT aa.id, aa.animal_id, aa.applicant_id, aa.time_submitted, a.name AS animal_name, u.display_name AS applicant_name
FROM adoption_application aa
JOIN animal a ON a.id = aa.animal_id
JOIN appuser u ON u.id = aa.applicant_id
WHERE aa.status = $1
ORDER BY aa.time_submitted
`

type GetPendingApplicationsRow struct {
	ID            int32
	AnimalID      int32
	ApplicantID   int32
	TimeSubmitted pgtype.Timestamptz
	AnimalName    string
	ApplicantName string
}

func (q *Queries) GetPendingApplications(ctx context.Context) ([]GetPendingApplicationsRow, error) {
	rows, err := q.db.Query(ctx, getPendingApplications, int32(ApplicationStatusPENDING))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetPendingApplicationsRow
	for rows.Next() {
		var i GetPendingApplicationsRow
		if err := rows.Scan(
			&i.ID,
			&i.AnimalID,
			&i.ApplicantID,
			&i.TimeSubmitted,
			&i.AnimalName,
			&i.ApplicantName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const approveApplication = `
UPDATE adoption_application
SET status = $2, is_primary = $3, time_decided = now(), decided_by = $4
WHERE id = $1
`

type ApproveApplicationParams struct {
	ID        int32
	IsPrimary bool
	DecidedBy int32
}

func (q *Queries) ApproveApplication(ctx context.Context, arg ApproveApplicationParams) error {
	_, err := q.db.Exec(ctx, approveApplication, arg.ID, int32(ApplicationStatusAPPROVED), arg.IsPrimary, arg.DecidedBy)
	return err
}

const rejectApplication = `
UPDATE adoption_application
SET status = $2, is_primary = false, time_decided = now(), decided_by = $3
WHERE id = $1
`

type RejectApplicationParams struct {
	ID        int32
	DecidedBy int32
}

func (q *Queries) RejectApplication(ctx context.Context, arg RejectApplicationParams) error {
	_, err := q.db.Exec(ctx, rejectApplication, arg.ID, int32(ApplicationStatusREJECTED), arg.DecidedBy)
	return err
}

// ---- Outcomes

const addOutcome = `
INSERT INTO outcome (animal_id, outcome_type, application_id, partner, owner_name, note, outcome_date, staff_id, time_created)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING id
`

type AddOutcomeParams struct {
	AnimalID      int32
	OutcomeType   int32
	ApplicationID pgtype.Int4
	Partner       pgtype.Text
	OwnerName     pgtype.Text
	Note          pgtype.Text
	OutcomeDate   pgtype.Date
	StaffID       int32
}

func (q *Queries) AddOutcome(ctx context.Context, arg AddOutcomeParams) (int32, error) {
	row := q.db.QueryRow(ctx, addOutcome,
		arg.AnimalID,
		arg.OutcomeType,
		arg.ApplicationID,
		arg.Partner,
		arg.OwnerName,
		arg.Note,
		arg.OutcomeDate,
		arg.StaffID,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getOutcomeForAnimal = `
SELECT o.id, o.animal_id, o.outcome_type, o.application_id, o.partner, o.owner_name, o.note, o.outcome_date, o.staff_id, o.time_created, u.display_name AS staff_name
FROM outcome o
JOIN appuser u ON u.id = o.staff_id
WHERE o.animal_id = $1
ORDER BY o.time_created DESC
LIMIT 1
`

type GetOutcomeForAnimalRow struct {
	ID            int32
	AnimalID      int32
	OutcomeType   int32
	ApplicationID pgtype.Int4
	Partner       pgtype.Text
	OwnerName     pgtype.Text
	Note          pgtype.Text
	OutcomeDate   pgtype.Date
	StaffID       int32
	TimeCreated   pgtype.Timestamptz
	StaffName     string
}

func (q *Queries) GetOutcomeForAnimal(ctx context.Context, animalID int32) (GetOutcomeForAnimalRow, error) {
	row := q.db.QueryRow(ctx, getOutcomeForAnimal, animalID)
	var o GetOutcomeForAnimalRow
	err := row.Scan(
		&o.ID,
		&o.AnimalID,
		&o.OutcomeType,
		&o.ApplicationID,
		&o.Partner,
		&o.OwnerName,
		&o.Note,
		&o.OutcomeDate,
		&o.StaffID,
		&o.TimeCreated,
		&o.StaffName,
	)
	return o, err
}

const setOutcomeNote = `
UPDATE outcome SET note = $2 WHERE id = $1
`

type SetOutcomeNoteParams struct {
	ID   int32
	Note pgtype.Text
}

func (q *Queries) SetOutcomeNote(ctx context.Context, arg SetOutcomeNoteParams) error {
	_, err := q.db.Exec(ctx, setOutcomeNote, arg.ID, arg.Note)
	return err
}

// ---- Animal events

const addAnimalEvent = `
INSERT INTO animal_event (animal_id, appuser_id, event_id, associated_id, note, time)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type AddAnimalEventParams struct {
	AnimalID     int32
	AppuserID    int32
	EventID      int32
	AssociatedID pgtype.Int4
	Note         string
	Time         pgtype.Timestamptz
}

func (q *Queries) AddAnimalEvent(ctx context.Context, arg AddAnimalEventParams) (int32, error) {
	row := q.db.QueryRow(ctx, addAnimalEvent,
		arg.AnimalID,
		arg.AppuserID,
		arg.EventID,
		arg.AssociatedID,
		arg.Note,
		arg.Time,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getEventsForAnimal = `
SELECT e.id, e.animal_id, e.appuser_id, e.event_id, e.associated_id, e.note, e.time, u.display_name AS user_name, u.avatar_url
FROM animal_event e
JOIN appuser u ON u.id = e.appuser_id
WHERE e.animal_id = $1
ORDER BY e.time DESC
`

type GetEventsForAnimalRow struct {
	ID           int32
	AnimalID     int32
	AppuserID    int32
	EventID      int32
	AssociatedID pgtype.Int4
	Note         string
	Time         pgtype.Timestamptz
	UserName     string
	AvatarUrl    pgtype.Text
}

func (q *Queries) GetEventsForAnimal(ctx context.Context, animalID int32) ([]GetEventsForAnimalRow, error) {
	rows, err := q.db.Query(ctx, getEventsForAnimal, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetEventsForAnimalRow
	for rows.Next() {
		var i GetEventsForAnimalRow
		if err := rows.Scan(
			&i.ID,
			&i.AnimalID,
			&i.AppuserID,
			&i.EventID,
			&i.AssociatedID,
			&i.Note,
			&i.Time,
			&i.UserName,
			&i.AvatarUrl,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// ---- Users

const upsertUser = `
INSERT INTO appuser (google_sub, email, display_name, avatar_url, access_level, time_created)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (email) DO UPDATE
SET google_sub = EXCLUDED.google_sub, display_name = EXCLUDED.display_name, avatar_url = EXCLUDED.avatar_url
RETURNING id
`

type UpsertUserParams struct {
	GoogleSub   string
	Email       string
	DisplayName string
	AvatarUrl   pgtype.Text
}

func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) (int32, error) {
	row := q.db.QueryRow(ctx, upsertUser, arg.GoogleSub, arg.Email, arg.DisplayName, arg.AvatarUrl, int32(AccessLevelUser))
	var id int32
	err := row.Scan(&id)
	return id, err
}

const addLocalUser = `
INSERT INTO appuser (email, display_name, password_hash, access_level, time_created)
VALUES ($1, $2, $3, $4, now())
RETURNING id
`

type AddLocalUserParams struct {
	Email        string
	DisplayName  string
	PasswordHash string
	AccessLevel  int32
}

func (q *Queries) AddLocalUser(ctx context.Context, arg AddLocalUserParams) (int32, error) {
	row := q.db.QueryRow(ctx, addLocalUser, arg.Email, arg.DisplayName, arg.PasswordHash, arg.AccessLevel)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getUser = `
SELECT id, email, display_name, avatar_url, access_level, password_hash, email_verified
FROM appuser
WHERE id = $1
`

type GetUserRow struct {
	ID            int32
	Email         string
	DisplayName   string
	AvatarUrl     pgtype.Text
	AccessLevel   int32
	PasswordHash  pgtype.Text
	EmailVerified pgtype.Timestamptz
}

func (q *Queries) GetUser(ctx context.Context, id int32) (GetUserRow, error) {
	row := q.db.QueryRow(ctx, getUser, id)
	var u GetUserRow
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.AvatarUrl,
		&u.AccessLevel,
		&u.PasswordHash,
		&u.EmailVerified,
	)
	return u, err
}

const getUserByEmail = `
SELECT id, email, display_name, avatar_url, access_level, password_hash, email_verified
FROM appuser
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (GetUserRow, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var u GetUserRow
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.AvatarUrl,
		&u.AccessLevel,
		&u.PasswordHash,
		&u.EmailVerified,
	)
	return u, err
}

const getAppusers = `
SELECT id, email, display_name, avatar_url, access_level, email_verified
FROM appuser
ORDER BY display_name
`

type GetAppusersRow struct {
	ID            int32
	Email         string
	DisplayName   string
	AvatarUrl     pgtype.Text
	AccessLevel   int32
	EmailVerified pgtype.Timestamptz
}

func (q *Queries) GetAppusers(ctx context.Context) ([]GetAppusersRow, error) {
	rows, err := q.db.Query(ctx, getAppusers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetAppusersRow
	for rows.Next() {
		var i GetAppusersRow
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.DisplayName,
			&i.AvatarUrl,
			&i.AccessLevel,
			&i.EmailVerified,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const setAccessLevel = `
UPDATE appuser SET access_level = $2 WHERE id = $1
`

type SetAccessLevelParams struct {
	ID          int32
	AccessLevel int32
}

func (q *Queries) SetAccessLevel(ctx context.Context, arg SetAccessLevelParams) error {
	_, err := q.db.Exec(ctx, setAccessLevel, arg.ID, arg.AccessLevel)
	return err
}

const setPasswordHash = `
UPDATE appuser SET password_hash = $2 WHERE id = $1
`

type SetPasswordHashParams struct {
	ID           int32
	PasswordHash string
}

func (q *Queries) SetPasswordHash(ctx context.Context, arg SetPasswordHashParams) error {
	_, err := q.db.Exec(ctx, setPasswordHash, arg.ID, arg.PasswordHash)
	return err
}

const setDisplayName = `
UPDATE appuser SET display_name = $2 WHERE id = $1
`

type SetDisplayNameParams struct {
	ID          int32
	DisplayName string
}

func (q *Queries) SetDisplayName(ctx context.Context, arg SetDisplayNameParams) error {
	_, err := q.db.Exec(ctx, setDisplayName, arg.ID, arg.DisplayName)
	return err
}

const markEmailVerified = `
UPDATE appuser SET email_verified = now() WHERE id = $1
`

func (q *Queries) MarkEmailVerified(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, markEmailVerified, id)
	return err
}

const scrubAppuser = `
UPDATE appuser
SET display_name = 'deleted user', email = 'deleted-' || id || '@invalid', avatar_url = NULL, google_sub = NULL, password_hash = NULL, access_level = $2
WHERE id = $1
`

func (q *Queries) ScrubAppuser(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, scrubAppuser, id, int32(AccessLevelNone))
	return err
}

const deleteTokensForUser = `
DELETE FROM account_token WHERE appuser_id = $1
`

func (q *Queries) DeleteTokensForUser(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, deleteTokensForUser, id)
	return err
}

// ---- Account tokens

const addAccountToken = `
INSERT INTO account_token (appuser_id, email, token_hash, purpose, time_created, expires)
VALUES ($1, $2, $3, $4, now(), $5)
`

type AddAccountTokenParams struct {
	AppuserID pgtype.Int4
	Email     string
	TokenHash []byte
	Purpose   int32
	Expires   pgtype.Timestamptz
}

func (q *Queries) AddAccountToken(ctx context.Context, arg AddAccountTokenParams) error {
	_, err := q.db.Exec(ctx, addAccountToken, arg.AppuserID, arg.Email, arg.TokenHash, arg.Purpose, arg.Expires)
	return err
}

const consumeAccountToken = `
UPDATE account_token
SET used_at = now()
WHERE token_hash = $1 AND purpose = $2 AND used_at IS NULL AND expires > now()
RETURNING id, appuser_id, email
`

type ConsumeAccountTokenParams struct {
	TokenHash []byte
	Purpose   int32
}

type ConsumeAccountTokenRow struct {
	ID        int32
	AppuserID pgtype.Int4
	Email     string
}

// ConsumeAccountToken is the single-shot token check: the row is spent in
// the same statement that validates it. pgx.ErrNoRows means invalid,
// expired or already used.
func (q *Queries) ConsumeAccountToken(ctx context.Context, arg ConsumeAccountTokenParams) (ConsumeAccountTokenRow, error) {
	row := q.db.QueryRow(ctx, consumeAccountToken, arg.TokenHash, arg.Purpose)
	var t ConsumeAccountTokenRow
	err := row.Scan(&t.ID, &t.AppuserID, &t.Email)
	return t, err
}

const getOpenInvitations = `
SELECT id, email, time_created, expires
FROM account_token
WHERE purpose = $1 AND used_at IS NULL AND expires > now()
ORDER BY time_created DESC
`

type GetOpenInvitationsRow struct {
	ID          int32
	Email       string
	TimeCreated pgtype.Timestamptz
	Expires     pgtype.Timestamptz
}

func (q *Queries) GetOpenInvitations(ctx context.Context) ([]GetOpenInvitationsRow, error) {
	rows, err := q.db.Query(ctx, getOpenInvitations, int32(TokenPurposeInvitation))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetOpenInvitationsRow
	for rows.Next() {
		var i GetOpenInvitationsRow
		if err := rows.Scan(&i.ID, &i.Email, &i.TimeCreated, &i.Expires); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteAccountToken = `
DELETE FROM account_token WHERE id = $1
`

func (q *Queries) DeleteAccountToken(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, deleteAccountToken, id)
	return err
}

const deleteExpiredTokens = `
DELETE FROM account_token WHERE expires <= now() OR used_at IS NOT NULL
`

func (q *Queries) DeleteExpiredTokens(ctx context.Context) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteExpiredTokens)
}

// ---- Species and breeds

const getSpecies = `
SELECT id, name FROM species ORDER BY name
`

func (q *Queries) GetSpecies(ctx context.Context) ([]Species, error) {
	rows, err := q.db.Query(ctx, getSpecies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Species
	for rows.Next() {
		var i Species
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const addSpecies = `
INSERT INTO species (name) VALUES ($1) RETURNING id
`

func (q *Queries) AddSpecies(ctx context.Context, name string) (int32, error) {
	row := q.db.QueryRow(ctx, addSpecies, name)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const renameSpecies = `
UPDATE species SET name = $2 WHERE id = $1
`

type RenameSpeciesParams struct {
	ID   int32
	Name string
}

func (q *Queries) RenameSpecies(ctx context.Context, arg RenameSpeciesParams) error {
	_, err := q.db.Exec(ctx, renameSpecies, arg.ID, arg.Name)
	return err
}

const getBreeds = `
SELECT id, species_id, name FROM breed ORDER BY name
`

func (q *Queries) GetBreeds(ctx context.Context) ([]Breed, error) {
	rows, err := q.db.Query(ctx, getBreeds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Breed
	for rows.Next() {
		var i Breed
		if err := rows.Scan(&i.ID, &i.SpeciesID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const addBreed = `
INSERT INTO breed (species_id, name) VALUES ($1, $2) RETURNING id
`

type AddBreedParams struct {
	SpeciesID int32
	Name      string
}

func (q *Queries) AddBreed(ctx context.Context, arg AddBreedParams) (int32, error) {
	row := q.db.QueryRow(ctx, addBreed, arg.SpeciesID, arg.Name)
	var id int32
	err := row.Scan(&id)
	return id, err
}

// ---- Tasks

const addTask = `
INSERT INTO task (title, details, animal_id, assignee_id, created_by, due_date, time_created)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING id
`

type AddTaskParams struct {
	Title      string
	Details    pgtype.Text
	AnimalID   pgtype.Int4
	AssigneeID pgtype.Int4
	CreatedBy  int32
	DueDate    pgtype.Date
}

func (q *Queries) AddTask(ctx context.Context, arg AddTaskParams) (int32, error) {
	row := q.db.QueryRow(ctx, addTask,
		arg.Title,
		arg.Details,
		arg.AnimalID,
		arg.AssigneeID,
		arg.CreatedBy,
		arg.DueDate,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const getTask = `
SELECT id, title, details, animal_id, assignee_id, created_by, due_date, time_created, done_at, done_by
FROM task
WHERE id = $1
`

func (q *Queries) GetTask(ctx context.Context, id int32) (Task, error) {
	row := q.db.QueryRow(ctx, getTask, id)
	var t Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Details,
		&t.AnimalID,
		&t.AssigneeID,
		&t.CreatedBy,
		&t.DueDate,
		&t.TimeCreated,
		&t.DoneAt,
		&t.DoneBy,
	)
	return t, err
}

const getOpenTasks = `
SELECT t.id, t.title, t.details, t.animal_id, t.assignee_id, t.due_date, t.time_created, u.display_name AS assignee_name, a.name AS animal_name
FROM task t
LEFT JOIN appuser u ON u.id = t.assignee_id
LEFT JOIN animal a ON a.id = t.animal_id
WHERE t.done_at IS NULL
ORDER BY t.due_date NULLS LAST, t.time_created
`

type GetOpenTasksRow struct {
	ID           int32
	Title        string
	Details      pgtype.Text
	AnimalID     pgtype.Int4
	AssigneeID   pgtype.Int4
	DueDate      pgtype.Date
	TimeCreated  pgtype.Timestamptz
	AssigneeName pgtype.Text
	AnimalName   pgtype.Text
}

func (q *Queries) GetOpenTasks(ctx context.Context) ([]GetOpenTasksRow, error) {
	rows, err := q.db.Query(ctx, getOpenTasks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetOpenTasksRow
	for rows.Next() {
		var i GetOpenTasksRow
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Details,
			&i.AnimalID,
			&i.AssigneeID,
			&i.DueDate,
			&i.TimeCreated,
			&i.AssigneeName,
			&i.AnimalName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const completeTask = `
UPDATE task SET done_at = now(), done_by = $2 WHERE id = $1 AND done_at IS NULL
`

type CompleteTaskParams struct {
	ID     int32
	DoneBy int32
}

func (q *Queries) CompleteTask(ctx context.Context, arg CompleteTaskParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, completeTask, arg.ID, arg.DoneBy)
}

const assignTask = `
UPDATE task SET assignee_id = $2 WHERE id = $1
`

type AssignTaskParams struct {
	ID         int32
	AssigneeID pgtype.Int4
}

func (q *Queries) AssignTask(ctx context.Context, arg AssignTaskParams) error {
	_, err := q.db.Exec(ctx, assignTask, arg.ID, arg.AssigneeID)
	return err
}
