package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/airreserve/internal/catalog"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/reservation"
	"github.com/Domenick1991/airreserve/internal/store"
	"github.com/Domenick1991/airreserve/pkg/logger"
)

type stubIDs struct {
	id int
}

func (s stubIDs) NextID() int { return s.id }

// newTestConsole wires a real catalog, a real file store in a temp dir,
// and a deterministic id generator behind a scripted session.
func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer, *catalog.Catalog) {
	t.Helper()

	cat := catalog.New(nil, logger.Nop())
	require.NoError(t, cat.Load(domain.CategoryDomestic,
		strings.NewReader("DL100 NewYork Boston 09:00 12-05-2026 50")))

	storePath := filepath.Join(t.TempDir(), "reservations.txt")
	require.NoError(t, os.WriteFile(storePath, nil, 0o644))
	fileStore := store.NewFileStore(storePath, logger.Nop())

	service := reservation.NewService(cat, fileStore, stubIDs{id: 4242}, logger.Nop())

	out := &bytes.Buffer{}
	return New(cat, service, strings.NewReader(input), out), out, cat
}

func TestConsole_Exit(t *testing.T) {
	c, out, _ := newTestConsole(t, "6\n")
	c.Run()
	assert.Contains(t, out.String(), "Thank you for using the Flight Reservation System!")
}

func TestConsole_InvalidChoice(t *testing.T) {
	c, out, _ := newTestConsole(t, "9\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "Invalid choice! Please try again.")
}

func TestConsole_DisplayFlights(t *testing.T) {
	c, out, _ := newTestConsole(t, "1\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "Available Flights:")
	assert.Contains(t, out.String(), "DL100")
	assert.Contains(t, out.String(), "$100.00")
}

func TestConsole_DisplayFlights_EmptyCategory(t *testing.T) {
	c, out, _ := newTestConsole(t, "2\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "No available flights.")
}

func TestConsole_BookTicket(t *testing.T) {
	script := strings.Join([]string{
		"3",     // book a ticket
		"1",     // domestic
		"DL100", // flight number
		"2",     // passengers
		"Alice", "30",
		"Bob", "25",
		"6", // exit
	}, "\n") + "\n"

	c, out, cat := newTestConsole(t, script)
	c.Run()

	assert.Contains(t, out.String(), "*** Booking Receipt ***")
	assert.Contains(t, out.String(), "Reservation ID: 4242")
	assert.Contains(t, out.String(), "Total Fare: $200.00")
	assert.Contains(t, out.String(), "Name: Alice, Age: 30")

	flight := cat.FindByNumber(domain.CategoryDomestic, "DL100")
	assert.Equal(t, 48, flight.SeatsAvailable)
}

func TestConsole_BookTicket_FlightNotFound(t *testing.T) {
	script := "3\n1\nZZ999\n1\nAlice\n30\n6\n"
	c, out, _ := newTestConsole(t, script)
	c.Run()
	assert.Contains(t, out.String(), "Flight not found!")
}

func TestConsole_BookTicket_InsufficientSeats(t *testing.T) {
	script := strings.Join([]string{
		"3", "1", "DL100", "51",
	}, "\n") + "\n"
	// 51 passengers against 50 seats; feed exactly 51 name/age pairs.
	for i := 0; i < 51; i++ {
		script += "P\n20\n"
	}
	script += "6\n"

	c, out, cat := newTestConsole(t, script)
	c.Run()

	assert.Contains(t, out.String(), "Not enough seats available!")
	flight := cat.FindByNumber(domain.CategoryDomestic, "DL100")
	assert.Equal(t, 50, flight.SeatsAvailable)
}

func TestConsole_CancelReservation(t *testing.T) {
	script := "3\n1\nDL100\n1\nAlice\n30\n4\n4242\n6\n"
	c, out, cat := newTestConsole(t, script)
	c.Run()

	assert.Contains(t, out.String(), "Reservation with ID 4242 has been canceled.")
	assert.Contains(t, out.String(), "Updated seats for flight DL100: 50 seats now available.")

	flight := cat.FindByNumber(domain.CategoryDomestic, "DL100")
	assert.Equal(t, 50, flight.SeatsAvailable)
}

func TestConsole_CancelReservation_NotFound(t *testing.T) {
	c, out, _ := newTestConsole(t, "4\n9999\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "Reservation ID not found.")
}

func TestConsole_SearchByDate(t *testing.T) {
	script := "3\n1\nDL100\n1\nAlice\n30\n5\n12-05-2026\n6\n"
	c, out, _ := newTestConsole(t, script)
	c.Run()

	assert.Contains(t, out.String(), "*** Reservation on 12-05-2026 ***")
	assert.Contains(t, out.String(), "Reservation ID: 4242")
	assert.Contains(t, out.String(), "Alice 30")
}

func TestConsole_SearchByDate_NoResults(t *testing.T) {
	c, out, _ := newTestConsole(t, "5\n01-01-2030\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "No reservations found for the date: 01-01-2030")
}

func TestConsole_NonNumericChoiceReprompts(t *testing.T) {
	c, out, _ := newTestConsole(t, "abc\n6\n")
	c.Run()
	assert.Contains(t, out.String(), "Please enter a number.")
	assert.Contains(t, out.String(), "Thank you for using the Flight Reservation System!")
}

func TestConsole_EOFEndsLoop(t *testing.T) {
	c, _, _ := newTestConsole(t, "")
	c.Run() // must return, not spin
}
