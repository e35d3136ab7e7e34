package main

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestMonthsSince(t *testing.T) {
	ref := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		from time.Time
		want int
	}{
		{"same day", ref, 0},
		{"two weeks ago", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 0},
		{"one month", time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), 1},
		{"almost one month", time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC), 0},
		{"one year", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 12},
		{"three years", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 36},
		{"future date clamps to zero", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := monthsSince(tt.from, ref); got != tt.want {
				t.Errorf("monthsSince = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAgeString(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		birth pgtype.Date
		want  string
	}{
		{"unknown", pgtype.Date{}, "unknown age"},
		{"newborn", pgtype.Date{Time: now.AddDate(0, 0, -5), Valid: true}, "under a month"},
		{"five months", pgtype.Date{Time: now.AddDate(0, -5, -1), Valid: true}, "5 months"},
		{"one year", pgtype.Date{Time: now.AddDate(-1, -2, -1), Valid: true}, "1 year"},
		{"three years", pgtype.Date{Time: now.AddDate(-3, -1, -1), Valid: true}, "3 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeString(tt.birth); got != tt.want {
				t.Errorf("AgeString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhotoURL(t *testing.T) {
	if got := PhotoURL(pgtype.Text{}); got != "" {
		t.Errorf("PhotoURL of null = %q, want empty", got)
	}
	id := pgtype.Text{String: "0b25ec9b-6168-4f19-a161-1d8dc832ec92", Valid: true}
	want := "/photo/0b25ec9b-6168-4f19-a161-1d8dc832ec92/photo"
	if got := PhotoURL(id); got != want {
		t.Errorf("PhotoURL = %q, want %q", got, want)
	}
}

func TestAnimalViewURLs(t *testing.T) {
	av := AnimalView{Animal: Animal{ID: 42}}
	if got := av.URL(); got != "/animal/42" {
		t.Errorf("URL = %q", got)
	}
	if got := av.URLSuffix("relist"); got != "/animal/42/relist" {
		t.Errorf("URLSuffix = %q", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status ListingStatus
		want   string
	}{
		{ListingStatusAVAILABLE, "text-success"},
		{ListingStatusPENDING_ADOPTION, "text-warning"},
		{ListingStatusARCHIVED, "text-muted"},
	}
	for _, tt := range tests {
		av := AnimalView{Animal: Animal{ListingStatus: int32(tt.status)}}
		if got := av.StatusClass(); got != tt.want {
			t.Errorf("StatusClass(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
