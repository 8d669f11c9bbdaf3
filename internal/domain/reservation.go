package domain

// Passenger is one traveller on a reservation. Persisted as a single
// "name age" line; never mutated after booking.
type Passenger struct {
	Name string
	Age  int
}

// Reservation is one booking transaction as persisted in the store.
// IDs are drawn from a bounded range and are not guaranteed unique.
type Reservation struct {
	ID           int
	FlightNumber string
	FlightDate   string
	TotalFare    float64
	Passengers   []Passenger
}

func (r Reservation) PassengerCount() int { return len(r.Passengers) }
