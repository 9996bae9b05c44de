// Package service implements the business logic of the Front Desk API.
//
// Services own every rule the dashboard relies on: reservation creation and
// editing, the status transition table with its two-phase confirmation,
// the room-availability index, and the all-or-nothing seed ingestion.
// Storage is abstracted behind the ReservationRepository interface so that
// services never touch the underlying map directly.
//
// All errors returned by service methods are defined in errors.go, keeping
// error handling in handlers predictable.
package service
