package main

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func FormID(prefix, field string, id int32) string {
	return fmt.Sprintf("%s%s-%d", prefix, field, id)
}

// ---- Animal

type AnimalView struct {
	Animal      Animal
	SpeciesName string
	BreedName   string

	// Optional
	Events       []GetEventsForAnimalRow
	Applications []GetApplicationsForAnimalRow
	Outcome      *GetOutcomeForAnimalRow
}

func AnimalURL(id int32) string {
	return fmt.Sprintf("/animal/%d", id)
}

func (av AnimalView) URL() string {
	return AnimalURL(av.Animal.ID)
}

func (av AnimalView) URLSuffix(suffix string) string {
	return fmt.Sprintf("/animal/%d/%s", av.Animal.ID, suffix)
}

func (av AnimalView) StatusClass() string {
	switch av.Animal.Status() {
	case ListingStatusAVAILABLE:
		return "text-success"
	case ListingStatusPENDING_ADOPTION:
		return "text-warning"
	default:
		return "text-muted"
	}
}

func PhotoURL(photoID pgtype.Text) string {
	if !photoID.Valid {
		return ""
	}
	return fmt.Sprintf("/photo/%s/photo", photoID.String)
}

// AgeString renders a rough age from the birth date, the way shelters list
// it ("3 years", "5 months", "under a month").
func AgeString(birthDate pgtype.Date) string {
	if !birthDate.Valid {
		return "unknown age"
	}
	months := monthsSince(birthDate.Time, time.Now())
	switch {
	case months >= 24:
		return fmt.Sprintf("%d years", months/12)
	case months >= 12:
		return "1 year"
	case months >= 1:
		return fmt.Sprintf("%d months", months)
	default:
		return "under a month"
	}
}

func monthsSince(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

// ---- Species

type SpeciesWithBreeds struct {
	Species Species
	Breeds  []Breed
}

// ---- Time formatting

func FormatTime(t pgtype.Timestamptz) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02 15:04")
}

func FormatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
