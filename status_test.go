package main

import "testing"

func TestListingStatusStrings(t *testing.T) {
	tests := []struct {
		status ListingStatus
		want   string
	}{
		{ListingStatusUNKNOWN, "UNKNOWN"},
		{ListingStatusAVAILABLE, "AVAILABLE"},
		{ListingStatusPENDING_ADOPTION, "PENDING_ADOPTION"},
		{ListingStatusARCHIVED, "ARCHIVED"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseListingStatus(tt.want)
		if err != nil {
			t.Errorf("ParseListingStatus(%q): %v", tt.want, err)
		}
		if parsed != tt.status {
			t.Errorf("ParseListingStatus(%q) = %v, want %v", tt.want, parsed, tt.status)
		}
	}
}

func TestParseListingStatusInvalid(t *testing.T) {
	if _, err := ParseListingStatus("ADOPTED"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestOutcomeTypeRoundTrip(t *testing.T) {
	for _, ot := range OutcomeTypeValues() {
		parsed, err := ParseOutcomeType(ot.String())
		if err != nil {
			t.Errorf("ParseOutcomeType(%q): %v", ot.String(), err)
			continue
		}
		if parsed != ot {
			t.Errorf("round trip for %s gave %s", ot, parsed)
		}
	}
}

func TestApplicationStatusStrings(t *testing.T) {
	tests := []struct {
		status ApplicationStatus
		want   string
	}{
		{ApplicationStatusPENDING, "PENDING"},
		{ApplicationStatusAPPROVED, "APPROVED"},
		{ApplicationStatusREJECTED, "REJECTED"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAccessLevelOrdering(t *testing.T) {
	order := []AccessLevel{AccessLevelNone, AccessLevelUser, AccessLevelVolunteer, AccessLevelStaff, AccessLevelAdmin}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%s should be below %s", order[i-1], order[i])
		}
	}
}
