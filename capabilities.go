//go:generate go tool go-enum --no-iota --noprefix --prefix=Cap
package main

import "slices"

// ENUM(
// SubmitApplication,
// ViewOwnApplications,
// SetOwnPreferences,
// ViewDashboard,
// ViewAnimal,
// ViewTasks,
// CompleteTask,
// AnimalIntake,
// AnimalUpdate,
// AnimalReintake,
// AnimalRelist,
// ManageApplications,
// ManageOutcomes,
// ManageTasks,
// ManageSpecies,
// ViewAllUsers,
// UploadPhoto,
// ViewAdminTools,
// ManageRoles,
// DeleteUsers,
// InviteUsers,
// Debug,
// )
type Capability int32

// RequiredAccessLevel is the permission registry: every capability maps to
// the minimum access level that may exercise it. Fixed at build time.
var RequiredAccessLevel = map[Capability]AccessLevel{
	CapSubmitApplication:   AccessLevelUser,
	CapViewOwnApplications: AccessLevelUser,
	CapSetOwnPreferences:   AccessLevelUser,

	CapViewDashboard: AccessLevelVolunteer,
	CapViewAnimal:    AccessLevelVolunteer,
	CapViewTasks:     AccessLevelVolunteer,
	CapCompleteTask:  AccessLevelVolunteer,

	CapAnimalIntake:       AccessLevelStaff,
	CapAnimalUpdate:       AccessLevelStaff,
	CapAnimalReintake:     AccessLevelStaff,
	CapAnimalRelist:       AccessLevelStaff,
	CapManageApplications: AccessLevelStaff,
	CapManageOutcomes:     AccessLevelStaff,
	CapManageTasks:        AccessLevelStaff,
	CapManageSpecies:      AccessLevelStaff,
	CapViewAllUsers:       AccessLevelStaff,
	CapUploadPhoto:        AccessLevelStaff,

	CapViewAdminTools: AccessLevelAdmin,
	CapManageRoles:    AccessLevelAdmin,
	CapDeleteUsers:    AccessLevelAdmin,
	CapInviteUsers:    AccessLevelAdmin,
	CapDebug:          AccessLevelAdmin,
}

// HasCapability answers the permission check for one actor role. A caller
// without a session has AccessLevelNone and is denied every capability, as is
// any capability missing from the registry.
func (al AccessLevel) HasCapability(cap Capability) bool {
	required, ok := RequiredAccessLevel[cap]
	if !ok || al == AccessLevelNone {
		return false
	}
	return al >= required
}

var AccessLevelToCapabilities = func() (out struct {
	User      []Capability
	Volunteer []Capability
	Staff     []Capability
	Admin     []Capability
}) {
	for cap, al := range RequiredAccessLevel {
		switch al {
		case AccessLevelUser:
			out.User = append(out.User, cap)
		case AccessLevelVolunteer:
			out.Volunteer = append(out.Volunteer, cap)
		case AccessLevelStaff:
			out.Staff = append(out.Staff, cap)
		case AccessLevelAdmin:
			out.Admin = append(out.Admin, cap)
		}
	}
	slices.Sort(out.User)
	slices.Sort(out.Volunteer)
	slices.Sort(out.Staff)
	slices.Sort(out.Admin)
	return out
}()
