package reservation

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/store"
	"github.com/Domenick1991/airreserve/pkg/logger"
)

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrInsufficientSeats   = errors.New("not enough seats available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoPassengers        = errors.New("at least one passenger is required")
)

// UseCase is the reservation surface the console works against.
type UseCase interface {
	Book(category domain.Category, flightNumber string, passengers []domain.Passenger) (*domain.Reservation, *Receipt, error)
	Cancel(id int) (*CancelResult, error)
	SearchByDate(date string) ([]*domain.Reservation, error)
}

// Inventory is the catalog surface the service needs.
type Inventory interface {
	FindByNumber(category domain.Category, number string) *domain.Flight
	FindAnyCategory(number string) *domain.Flight
	BookSeats(f *domain.Flight, n int)
	CancelSeats(f *domain.Flight, n int)
}

// Receipt is the display view of a completed booking.
type Receipt struct {
	ReservationID  int
	FlightNumber   string
	DepartureCity  string
	Destination    string
	DepartureTime  string
	FlightDate     string
	PassengerCount int
	TotalFare      float64
	Passengers     []domain.Passenger
}

// CancelResult reports a completed cancellation. SeatsRestored is false
// when the record was removed but its flight no longer exists in the
// catalog, so the seats could not be returned.
type CancelResult struct {
	ReservationID  int
	FlightNumber   string
	PassengerCount int
	SeatsRestored  bool
	SeatsAvailable int
}

// Service mediates between the flight catalog and the reservation
// store; it holds no reservation state of its own, every query re-reads
// the store.
type Service struct {
	catalog Inventory
	store   store.ReservationStore
	ids     IDGenerator
	logger  *logger.Logger
}

func NewService(catalog Inventory, st store.ReservationStore, ids IDGenerator, log *logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		store:   st,
		ids:     ids,
		logger:  log.Named("reservation"),
	}
}

// Book reserves seats on the flight for the given passengers, persists
// the reservation record, and returns it with a receipt view.
func (s *Service) Book(category domain.Category, flightNumber string, passengers []domain.Passenger) (*domain.Reservation, *Receipt, error) {
	if len(passengers) == 0 {
		return nil, nil, ErrNoPassengers
	}
	flight := s.catalog.FindByNumber(category, flightNumber)
	if flight == nil {
		return nil, nil, ErrFlightNotFound
	}
	if len(passengers) > flight.SeatsAvailable {
		return nil, nil, ErrInsufficientSeats
	}

	rec := &domain.Reservation{
		ID:           s.ids.NextID(),
		FlightNumber: flight.Number,
		FlightDate:   flight.Date,
		TotalFare:    flight.FarePerSeat * float64(len(passengers)),
		Passengers:   passengers,
	}

	// Seats come off the inventory before the append, as the original
	// tool did: a failed append leaves them decremented.
	s.catalog.BookSeats(flight, len(passengers))
	if err := s.store.Append(rec); err != nil {
		s.logger.Error("failed to persist reservation",
			logger.Int("id", rec.ID), logger.Error(err))
		return nil, nil, fmt.Errorf("persist reservation: %w", err)
	}

	s.logger.Info("reservation booked",
		logger.Int("id", rec.ID),
		logger.String("flight", flight.Number),
		logger.Int("passengers", len(passengers)),
		logger.Float64("total_fare", rec.TotalFare))
	return rec, s.receipt(rec, flight), nil
}

// Cancel removes the first record carrying id from the store and
// restores its seats to the matching flight. A removed record whose
// flight is unknown still counts as cancelled; SeatsRestored reports
// the difference.
func (s *Service) Cancel(id int) (*CancelResult, error) {
	removed, err := s.store.RemoveByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("remove reservation %d: %w", id, err)
	}

	result := &CancelResult{
		ReservationID:  id,
		FlightNumber:   removed.FlightNumber,
		PassengerCount: removed.PassengerCount,
	}

	flight := s.catalog.FindAnyCategory(removed.FlightNumber)
	if flight == nil {
		s.logger.Warn("cancelled reservation references unknown flight",
			logger.Int("id", id),
			logger.String("flight", removed.FlightNumber))
		return result, nil
	}

	s.catalog.CancelSeats(flight, removed.PassengerCount)
	result.SeatsRestored = true
	result.SeatsAvailable = flight.SeatsAvailable

	s.logger.Info("reservation cancelled",
		logger.Int("id", id),
		logger.String("flight", flight.Number),
		logger.Int("seats_restored", removed.PassengerCount))
	return result, nil
}

// SearchByDate returns the reservations whose flight date equals date.
// The date is an opaque string; no parsing or normalization happens.
func (s *Service) SearchByDate(date string) ([]*domain.Reservation, error) {
	return s.store.FindByDate(date)
}

func (s *Service) receipt(rec *domain.Reservation, flight *domain.Flight) *Receipt {
	return &Receipt{
		ReservationID:  rec.ID,
		FlightNumber:   flight.Number,
		DepartureCity:  flight.DepartureCity,
		Destination:    flight.Destination,
		DepartureTime:  flight.DepartureTime,
		FlightDate:     flight.Date,
		PassengerCount: len(rec.Passengers),
		TotalFare:      rec.TotalFare,
		Passengers:     rec.Passengers,
	}
}

var _ UseCase = (*Service)(nil)
