// Package model defines domain entities and data structures for the Front Desk API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Reservation: a guest's booked stay with a lifecycle status
//   - Status: one of the seven fixed lifecycle stages a reservation can occupy
//   - RawReservation: the untrusted record shape of the seed dataset
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Reservation struct {
//	    ID        string `json:"id"`
//	    GuestName string `json:"guestName"`
//	    Status    Status `json:"status"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
