// Package repository holds the in-memory stores for rooms, guests and
// reservations. Each store keeps records in insertion order inside a
// growable slice and maintains an auxiliary key-to-index map so that
// key lookups and uniqueness checks do not rescan the slice. The
// stores perform no locking of their own; the engine serializes all
// access behind a single lock so that multi-store operations observe
// a consistent snapshot.
//
// Sentinel errors shared by the stores live in this file so that
// handlers can translate them into HTTP responses with errors.Is.
package repository

import "errors"

// ErrRoomNotFound is returned when no room carries the requested number.
var ErrRoomNotFound = errors.New("room not found")

// ErrGuestNotFound is returned when a guest lookup by national ID or
// guest ID misses.
var ErrGuestNotFound = errors.New("guest not found")

// ErrReservationNotFound is returned when no reservation carries the
// requested ID.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrDuplicateRoom is returned when inserting a room whose number is
// already taken. Room numbers are globally unique and never reused.
var ErrDuplicateRoom = errors.New("room number already exists")

// ErrDuplicateGuest is returned when inserting a guest whose national
// ID is already registered.
var ErrDuplicateGuest = errors.New("national id already registered")
