package main

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckSubmitApplication(t *testing.T) {
	tests := []struct {
		status  ListingStatus
		wantErr bool
	}{
		{ListingStatusAVAILABLE, false},
		{ListingStatusPENDING_ADOPTION, true},
		{ListingStatusARCHIVED, true},
		{ListingStatusUNKNOWN, true},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := checkSubmitApplication(tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSubmitApplication(%s) = %v, wantErr %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestCheckSubmitApplicationConflictMessage(t *testing.T) {
	err := checkSubmitApplication(ListingStatusPENDING_ADOPTION)
	if err == nil {
		t.Fatal("expected error")
	}
	var conflict *StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %T", err)
	}
	if !strings.Contains(err.Error(), "PENDING_ADOPTION") {
		t.Errorf("error message %q should name the current status", err.Error())
	}
	if getStatusCode(err) != 409 {
		t.Errorf("getStatusCode = %d, want 409", getStatusCode(err))
	}
}

func TestCheckRecordOutcome(t *testing.T) {
	tests := []struct {
		status  ListingStatus
		wantErr bool
	}{
		{ListingStatusAVAILABLE, false},
		{ListingStatusPENDING_ADOPTION, false},
		{ListingStatusARCHIVED, true},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := checkRecordOutcome(tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkRecordOutcome(%s) = %v, wantErr %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestCheckReintake(t *testing.T) {
	tests := []struct {
		status  ListingStatus
		wantErr bool
	}{
		{ListingStatusARCHIVED, false},
		{ListingStatusAVAILABLE, true},
		{ListingStatusPENDING_ADOPTION, true},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := checkReintake(tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkReintake(%s) = %v, wantErr %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestCheckRelist(t *testing.T) {
	tests := []struct {
		status  ListingStatus
		wantErr bool
	}{
		{ListingStatusPENDING_ADOPTION, false},
		{ListingStatusAVAILABLE, true},
		{ListingStatusARCHIVED, true},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := checkRelist(tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkRelist(%s) = %v, wantErr %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestPlanApproval(t *testing.T) {
	tests := []struct {
		name       string
		status     ListingStatus
		hasPrimary bool
		want       ApprovalPlan
		wantErr    bool
	}{
		{
			name:   "first approval wins primary and starts the adoption",
			status: ListingStatusAVAILABLE,
			want:   ApprovalPlan{IsPrimary: true, NewStatus: ListingStatusPENDING_ADOPTION},
		},
		{
			name:       "second approval is waitlisted",
			status:     ListingStatusPENDING_ADOPTION,
			hasPrimary: true,
			want:       ApprovalPlan{},
		},
		{
			name:   "primary slot reopened, no second transition",
			status: ListingStatusPENDING_ADOPTION,
			want:   ApprovalPlan{IsPrimary: true},
		},
		{
			name:       "available with stray primary treated as waitlisted",
			status:     ListingStatusAVAILABLE,
			hasPrimary: true,
			want:       ApprovalPlan{},
		},
		{
			name:    "archived animal cannot take approvals",
			status:  ListingStatusARCHIVED,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planApproval(tt.status, tt.hasPrimary)
			if (err != nil) != tt.wantErr {
				t.Fatalf("planApproval(%s, %v) error = %v, wantErr %v", tt.status, tt.hasPrimary, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("planApproval(%s, %v) = %+v, want %+v", tt.status, tt.hasPrimary, got, tt.want)
			}
		})
	}
}
