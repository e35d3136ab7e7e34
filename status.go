//go:generate go tool go-enum --no-iota --values
package main

// Listing statuses are stored on the animal row as int32; the names are the
// display form used in blocked-action messages.
//
// ENUM(
//
//	UNKNOWN          = 0,
//	AVAILABLE        = 1,
//	PENDING_ADOPTION = 2,
//	ARCHIVED         = 3,
//
// )
type ListingStatus int32

// ENUM(
//
//	PENDING  = 0,
//	APPROVED = 1,
//	REJECTED = 2,
//
// )
type ApplicationStatus int32

// ENUM(
//
//	ADOPTION        = 0,
//	TRANSFER_OUT    = 1,
//	RETURN_TO_OWNER = 2,
//	DECEASED        = 3,
//	OTHER           = 4,
//
// )
type OutcomeType int32

// ENUM(
//
//	Unknown = 0,
//	Male    = 1,
//	Female  = 2,
//
// )
type Sex int32

// ENUM(
//
//	Unknown    = 0,
//	Small      = 1,
//	Medium     = 2,
//	Large      = 3,
//	ExtraLarge = 4,
//
// )
type Size int32
