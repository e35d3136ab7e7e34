package main

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Animal struct {
	ID            int32
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
	PhotoID       pgtype.Text
	TimeIntake    pgtype.Timestamptz
	TimeArchived  pgtype.Timestamptz
}

func (a Animal) Status() ListingStatus {
	return ListingStatus(a.ListingStatus)
}

type AdoptionApplication struct {
	ID            int32
	AnimalID      int32
	ApplicantID   int32
	Status        int32
	IsPrimary     bool
	Motivation    pgtype.Text
	TimeSubmitted pgtype.Timestamptz
	TimeDecided   pgtype.Timestamptz
	DecidedBy     pgtype.Int4
}

func (a AdoptionApplication) AppStatus() ApplicationStatus {
	return ApplicationStatus(a.Status)
}

// Active means the application still occupies the applicant's slot for the
// animal: anything not REJECTED.
func (a AdoptionApplication) Active() bool {
	return a.AppStatus() != ApplicationStatusREJECTED
}

type Outcome struct {
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
}

func (o Outcome) Type() OutcomeType {
	return OutcomeType(o.OutcomeType)
}

type Appuser struct {
	ID            int32
	Email         string
	DisplayName   string
	AvatarUrl     pgtype.Text
	AccessLevel   int32
	GoogleSub     pgtype.Text
	PasswordHash  pgtype.Text
	EmailVerified pgtype.Timestamptz
	TimeCreated   pgtype.Timestamptz
}

type Species struct {
	ID   int32
	Name string
}

type Breed struct {
	ID        int32
	SpeciesID int32
	Name      string
}

type Task struct {
	ID          int32
	Title       string
	Details     pgtype.Text
	AnimalID    pgtype.Int4
	AssigneeID  pgtype.Int4
	CreatedBy   int32
	DueDate     pgtype.Date
	TimeCreated pgtype.Timestamptz
	DoneAt      pgtype.Timestamptz
	DoneBy      pgtype.Int4
}

type AccountToken struct {
	ID          int32
	AppuserID   pgtype.Int4
	Email       string
	TokenHash   []byte
	Purpose     int32
	TimeCreated pgtype.Timestamptz
	Expires     pgtype.Timestamptz
	UsedAt      pgtype.Timestamptz
}

type AnimalEventRow struct {
	ID           int32
	AnimalID     int32
	AppuserID    int32
	EventID      int32
	AssociatedID pgtype.Int4
	Note         string
	Time         pgtype.Timestamptz
}
