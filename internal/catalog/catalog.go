package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/pkg/logger"
)

// Catalog is the in-memory flight inventory, one namespace per category.
// It owns its Flight instances for the lifetime of the process.
type Catalog struct {
	flights map[domain.Category][]*domain.Flight
	fares   map[domain.Category]float64
	logger  *logger.Logger
}

func New(fares map[domain.Category]float64, log *logger.Logger) *Catalog {
	if fares == nil {
		fares = domain.DefaultFares
	}
	return &Catalog{
		flights: make(map[domain.Category][]*domain.Flight),
		fares:   fares,
		logger:  log.Named("catalog"),
	}
}

// Load parses whitespace-delimited flight rows from r into the given
// category. Each row is `number departureCity destination departureTime
// date seats`; the fare comes from the category fare table. Malformed
// rows are logged and skipped.
func (c *Catalog) Load(category domain.Category, r io.Reader) error {
	fare := c.fares[category]
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 6 {
			c.logger.Warn("skipping malformed flight row",
				logger.String("category", string(category)),
				logger.Int("line", line),
				logger.Int("fields", len(fields)))
			continue
		}
		seats, err := strconv.Atoi(fields[5])
		if err != nil || seats < 0 {
			c.logger.Warn("skipping flight row with bad seat count",
				logger.String("category", string(category)),
				logger.Int("line", line),
				logger.String("seats", fields[5]))
			continue
		}
		c.flights[category] = append(c.flights[category], &domain.Flight{
			Number:         fields[0],
			DepartureCity:  fields[1],
			Destination:    fields[2],
			DepartureTime:  fields[3],
			Date:           fields[4],
			SeatsAvailable: seats,
			FarePerSeat:    fare,
			Category:       category,
		})
	}
	return scanner.Err()
}

// LoadFile opens path and loads its rows into category.
func (c *Catalog) LoadFile(category domain.Category, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open flight file %s: %w", path, err)
	}
	defer f.Close()
	return c.Load(category, f)
}

// List returns the flights of one category in load order.
func (c *Catalog) List(category domain.Category) []*domain.Flight {
	return c.flights[category]
}

// FindByNumber returns the flight with the given number within one
// category, or nil if absent.
func (c *Catalog) FindByNumber(category domain.Category, number string) *domain.Flight {
	for _, f := range c.flights[category] {
		if f.Number == number {
			return f
		}
	}
	return nil
}

// FindAnyCategory looks the number up across both categories, domestic
// first; used by cancellation, which does not know the category of the
// removed record.
func (c *Catalog) FindAnyCategory(number string) *domain.Flight {
	for _, category := range []domain.Category{domain.CategoryDomestic, domain.CategoryInternational} {
		if f := c.FindByNumber(category, number); f != nil {
			return f
		}
	}
	return nil
}

// BookSeats takes n seats off the flight. Callers must have checked
// availability: the catalog itself does not.
func (c *Catalog) BookSeats(f *domain.Flight, n int) {
	f.SeatsAvailable -= n
}

// CancelSeats restores n seats. Must be called at most once per
// cancelled reservation or the count can exceed the original capacity.
func (c *Catalog) CancelSeats(f *domain.Flight, n int) {
	f.SeatsAvailable += n
}
