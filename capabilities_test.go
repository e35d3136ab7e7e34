package main

import "testing"

func TestRegistryCoversEveryCapability(t *testing.T) {
	for _, cap := range CapabilityValues() {
		if _, ok := RequiredAccessLevel[cap]; !ok {
			t.Errorf("capability %s has no required access level", cap)
		}
	}
	if len(RequiredAccessLevel) != len(CapabilityValues()) {
		t.Errorf("registry has %d entries, want %d", len(RequiredAccessLevel), len(CapabilityValues()))
	}
}

func TestNoneIsDeniedEverything(t *testing.T) {
	for _, cap := range CapabilityValues() {
		if AccessLevelNone.HasCapability(cap) {
			t.Errorf("AccessLevelNone should not have %s", cap)
		}
	}
}

func TestAdminHasEverything(t *testing.T) {
	for _, cap := range CapabilityValues() {
		if !AccessLevelAdmin.HasCapability(cap) {
			t.Errorf("AccessLevelAdmin should have %s", cap)
		}
	}
}

func TestCapabilityOrdering(t *testing.T) {
	tests := []struct {
		level AccessLevel
		cap   Capability
		want  bool
	}{
		{AccessLevelUser, CapSubmitApplication, true},
		{AccessLevelUser, CapViewAnimal, false},
		{AccessLevelUser, CapAnimalIntake, false},
		{AccessLevelVolunteer, CapSubmitApplication, true},
		{AccessLevelVolunteer, CapViewAnimal, true},
		{AccessLevelVolunteer, CapCompleteTask, true},
		{AccessLevelVolunteer, CapManageApplications, false},
		{AccessLevelStaff, CapAnimalIntake, true},
		{AccessLevelStaff, CapManageOutcomes, true},
		{AccessLevelStaff, CapManageRoles, false},
		{AccessLevelStaff, CapDebug, false},
		{AccessLevelAdmin, CapManageRoles, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.cap.String(), func(t *testing.T) {
			if got := tt.level.HasCapability(tt.cap); got != tt.want {
				t.Errorf("%s.HasCapability(%s) = %v, want %v", tt.level, tt.cap, got, tt.want)
			}
		})
	}
}

func TestUnknownCapabilityDenied(t *testing.T) {
	if AccessLevelAdmin.HasCapability(Capability(999)) {
		t.Error("unregistered capability should be denied even for admins")
	}
}
