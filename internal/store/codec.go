package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// sentinel terminates each record's passenger block in the store file.
const sentinel = "-----"

// encodeRecord renders one record in the store framing: a header line
// `id flightNumber flightDate passengerCount totalFare`, one line per
// passenger, then the sentinel.
func encodeRecord(rec *domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s %d %s\n",
		rec.ID, rec.FlightNumber, rec.FlightDate, len(rec.Passengers), formatFare(rec.TotalFare))
	for _, p := range rec.Passengers {
		fmt.Fprintf(&b, "%s %d\n", p.Name, p.Age)
	}
	b.WriteString(sentinel + "\n")
	return b.String()
}

// formatFare prints fares the way the store has always held them:
// integral amounts without a decimal point.
func formatFare(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// header is the parsed first line of a record.
type header struct {
	id             int
	flightNumber   string
	flightDate     string
	passengerCount int
	totalFare      float64
}

// parseHeader parses a record header line. Callers treat an error as a
// malformed record and skip forward to the next sentinel.
func parseHeader(line string) (header, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return header{}, fmt.Errorf("header has %d fields, want 5", len(fields))
	}
	var h header
	var err error
	if h.id, err = strconv.Atoi(fields[0]); err != nil {
		return header{}, fmt.Errorf("bad reservation id %q: %w", fields[0], err)
	}
	h.flightNumber = fields[1]
	h.flightDate = fields[2]
	if h.passengerCount, err = strconv.Atoi(fields[3]); err != nil {
		return header{}, fmt.Errorf("bad passenger count %q: %w", fields[3], err)
	}
	if h.totalFare, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return header{}, fmt.Errorf("bad fare %q: %w", fields[4], err)
	}
	return h, nil
}

// parsePassenger splits a "name age" line. Passenger lines were never
// validated on write, so a line without a trailing number is kept whole
// as the name rather than dropped.
func parsePassenger(line string) domain.Passenger {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Passenger{Name: line}
	}
	age, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return domain.Passenger{Name: line}
	}
	return domain.Passenger{
		Name: strings.Join(fields[:len(fields)-1], " "),
		Age:  age,
	}
}
