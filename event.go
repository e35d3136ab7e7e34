//go:generate go tool go-enum --no-iota --values
package main

// Animal events are the append-only history shown on the animal page. Rows
// are written in the same transaction as the mutation they describe.
//
// ENUM(
//
//	Intake               = 0,
//	ApplicationSubmitted = 1,
//	ApplicationApproved  = 2,
//	ApplicationRejected  = 3,
//	OutcomeRecorded      = 4,
//	Reintake             = 5,
//	Relisted             = 6,
//	Updated              = 7,
//	PhotoChanged         = 8,
//
// )
type AnimalEvent int32
