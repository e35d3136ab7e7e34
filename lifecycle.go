package main

import (
	"fmt"
)

// StateConflictError is a blocked lifecycle action: the animal was not in the
// status the action requires. Carries the current status for display.
type StateConflictError struct {
	Action  string
	Current ListingStatus
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s: animal is %s", e.Action, e.Current)
}

func stateConflict(action string, current ListingStatus) error {
	return &StateConflictError{Action: action, Current: current}
}

// checkSubmitApplication gates submitApplication: only AVAILABLE animals take
// new applications.
func checkSubmitApplication(current ListingStatus) error {
	if current != ListingStatusAVAILABLE {
		return stateConflict("apply for adoption", current)
	}
	return nil
}

// checkRecordOutcome gates recordOutcome: one outcome per adoption cycle, so
// an animal that is already ARCHIVED is already processed.
func checkRecordOutcome(current ListingStatus) error {
	if current == ListingStatusARCHIVED {
		return stateConflict("record outcome", current)
	}
	return nil
}

// checkReintake gates re-intake: only legal from ARCHIVED.
func checkReintake(current ListingStatus) error {
	if current != ListingStatusARCHIVED {
		return stateConflict("process re-intake", current)
	}
	return nil
}

// checkRelist gates the explicit staff relist action that makes a
// PENDING_ADOPTION animal available again.
func checkRelist(current ListingStatus) error {
	if current != ListingStatusPENDING_ADOPTION {
		return stateConflict("relist animal", current)
	}
	return nil
}

// ApprovalPlan is the outcome of planning one application approval.
// NewStatus is UNKNOWN when the approval causes no lifecycle transition.
type ApprovalPlan struct {
	IsPrimary bool
	NewStatus ListingStatus
}

// planApproval decides what approving an application does, given the animal's
// current status and whether another application already holds primary.
// First approval wins primary and moves the animal to PENDING_ADOPTION;
// later approvals are waitlisted. If the primary slot opened up again (the
// previous primary was rejected) while the animal stayed PENDING_ADOPTION,
// the next approval takes primary without a second transition.
func planApproval(current ListingStatus, hasPrimary bool) (ApprovalPlan, error) {
	switch current {
	case ListingStatusAVAILABLE:
		if hasPrimary {
			// Inconsistent but harmless: treat as waitlisted.
			return ApprovalPlan{}, nil
		}
		return ApprovalPlan{IsPrimary: true, NewStatus: ListingStatusPENDING_ADOPTION}, nil
	case ListingStatusPENDING_ADOPTION:
		if hasPrimary {
			return ApprovalPlan{}, nil
		}
		return ApprovalPlan{IsPrimary: true}, nil
	default:
		return ApprovalPlan{}, stateConflict("approve application", current)
	}
}
