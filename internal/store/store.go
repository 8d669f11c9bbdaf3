package store

import (
	"errors"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// ErrNotFound is returned by RemoveByID when no record carries the id.
var ErrNotFound = errors.New("reservation not found")

// RemovedInfo describes the record deleted by RemoveByID, enough for
// the caller to restore the flight's seats.
type RemovedInfo struct {
	FlightNumber   string
	PassengerCount int
}

// ReservationStore is the durable reservation log. Append is the only
// way records enter the store; RemoveByID is the only way they leave.
type ReservationStore interface {
	Append(rec *domain.Reservation) error
	RemoveByID(id int) (*RemovedInfo, error)
	FindByDate(date string) ([]*domain.Reservation, error)
}
