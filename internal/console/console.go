package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/reservation"
)

// Catalog is the inventory surface the console needs for listings.
type Catalog interface {
	List(category domain.Category) []*domain.Flight
}

// Console drives the interactive menu over the reservation use case.
// Input and output are injected so sessions can be scripted in tests.
type Console struct {
	catalog Catalog
	service reservation.UseCase
	in      *bufio.Scanner
	out     io.Writer
}

func New(catalog Catalog, service reservation.UseCase, in io.Reader, out io.Writer) *Console {
	return &Console{
		catalog: catalog,
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const menu = `
	|------------------------------------------------------------------|
	| WELCOME TO AIRLINE FLIGHT RESERVATION SYSTEM                     |
	|------------------------------------------------------------------|
	| 1) DISPLAY DOMESTIC FLIGHTS                                      |
	| 2) DISPLAY INTERNATIONAL FLIGHTS                                 |
	| 3) BOOK A TICKET                                                 |
	| 4) CANCEL A RESERVATION                                          |
	| 5) SEARCH RESERVATIONS BY DATE                                   |
	| 6) EXIT                                                          |
	|------------------------------------------------------------------|
`

// Run processes menu selections until the user exits or input ends.
// Errors from individual operations are reported to the user and the
// loop continues; nothing here is fatal.
func (c *Console) Run() {
	for {
		fmt.Fprint(c.out, menu)
		choice, ok := c.promptInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			c.displayFlights(domain.CategoryDomestic)
		case 2:
			c.displayFlights(domain.CategoryInternational)
		case 3:
			c.bookTicket()
		case 4:
			c.cancelReservation()
		case 5:
			c.searchByDate()
		case 6:
			fmt.Fprintln(c.out, "Thank you for using the Flight Reservation System!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice! Please try again.")
		}
	}
}

func (c *Console) displayFlights(category domain.Category) {
	flights := c.catalog.List(category)
	if len(flights) == 0 {
		fmt.Fprintln(c.out, "No available flights.")
		return
	}
	fmt.Fprintln(c.out, "Available Flights:")
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Flight", "From", "To", "Departure", "Date", "Seats", "Fare"})
	for _, f := range flights {
		table.Append([]string{
			f.Number,
			f.DepartureCity,
			f.Destination,
			f.DepartureTime,
			f.Date,
			strconv.Itoa(f.SeatsAvailable),
			fmt.Sprintf("$%.2f", f.FarePerSeat),
		})
	}
	table.Render()
}

func (c *Console) bookTicket() {
	fmt.Fprintln(c.out, "1. Domestic Flight")
	fmt.Fprintln(c.out, "2. International Flight")
	kind, ok := c.promptInt("Enter your choice: ")
	if !ok {
		return
	}
	category := domain.CategoryInternational
	if kind == 1 {
		category = domain.CategoryDomestic
	}
	c.displayFlights(category)

	flightNumber, ok := c.prompt("Enter flight number to book: ")
	if !ok {
		return
	}
	count, ok := c.promptInt("Enter number of passengers: ")
	if !ok {
		return
	}
	if count < 1 {
		fmt.Fprintln(c.out, "At least one passenger is required.")
		return
	}

	passengers := make([]domain.Passenger, 0, count)
	for i := 0; i < count; i++ {
		name, ok := c.prompt(fmt.Sprintf("Enter name of passenger %d: ", i+1))
		if !ok {
			return
		}
		age, ok := c.promptInt(fmt.Sprintf("Enter age of passenger %d: ", i+1))
		if !ok {
			return
		}
		passengers = append(passengers, domain.Passenger{Name: name, Age: age})
	}

	_, receipt, err := c.service.Book(category, flightNumber, passengers)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printReceipt(receipt)
}

func (c *Console) cancelReservation() {
	id, ok := c.promptInt("Enter Reservation ID to cancel: ")
	if !ok {
		return
	}
	result, err := c.service.Cancel(id)
	if err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "Reservation with ID %d has been canceled.\n", result.ReservationID)
	if result.SeatsRestored {
		fmt.Fprintf(c.out, "Updated seats for flight %s: %d seats now available.\n",
			result.FlightNumber, result.SeatsAvailable)
	} else {
		fmt.Fprintf(c.out, "Flight number %s not found; seats were not restored.\n",
			result.FlightNumber)
	}
}

func (c *Console) searchByDate() {
	date, ok := c.prompt("Enter the flight date (DD-MM-YYYY): ")
	if !ok {
		return
	}
	records, err := c.service.SearchByDate(date)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintf(c.out, "No reservations found for the date: %s\n", date)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(c.out, "\n*** Reservation on %s ***\n", date)
		fmt.Fprintf(c.out, "Reservation ID: %d\n", rec.ID)
		fmt.Fprintf(c.out, "Flight Number: %s\n", rec.FlightNumber)
		fmt.Fprintf(c.out, "Number of Passengers: %d\n", rec.PassengerCount())
		fmt.Fprintf(c.out, "Total Fare: $%.2f\n", rec.TotalFare)
		for _, p := range rec.Passengers {
			fmt.Fprintf(c.out, "%s %d\n", p.Name, p.Age)
		}
	}
}

func (c *Console) printReceipt(r *reservation.Receipt) {
	fmt.Fprintln(c.out, "\n*** Booking Receipt ***")
	fmt.Fprintf(c.out, "Reservation ID: %d\n", r.ReservationID)
	fmt.Fprintf(c.out, "Flight Number: %s\n", r.FlightNumber)
	fmt.Fprintf(c.out, "Departure City: %s\n", r.DepartureCity)
	fmt.Fprintf(c.out, "Destination: %s\n", r.Destination)
	fmt.Fprintf(c.out, "Departure Time: %s\n", r.DepartureTime)
	fmt.Fprintf(c.out, "Flight Date: %s\n", r.FlightDate)
	fmt.Fprintf(c.out, "Number of Passengers: %d\n", r.PassengerCount)
	fmt.Fprintf(c.out, "Total Fare: $%.2f\n", r.TotalFare)
	for _, p := range r.Passengers {
		fmt.Fprintf(c.out, "Name: %s, Age: %d\n", p.Name, p.Age)
	}
	fmt.Fprintln(c.out, "*************************")
}

func (c *Console) reportError(err error) {
	switch {
	case errors.Is(err, reservation.ErrFlightNotFound):
		fmt.Fprintln(c.out, "Flight not found!")
	case errors.Is(err, reservation.ErrInsufficientSeats):
		fmt.Fprintln(c.out, "Not enough seats available!")
	case errors.Is(err, reservation.ErrReservationNotFound):
		fmt.Fprintln(c.out, "Reservation ID not found.")
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

// prompt reads one trimmed line; ok is false once input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptInt(label string) (int, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}
