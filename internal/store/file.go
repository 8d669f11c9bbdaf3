package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/pkg/logger"
)

// FileStore persists reservations as an append-only UTF-8 text file.
// The file is owned exclusively by this process; a handle is held only
// for the duration of a single call and released on every exit path.
type FileStore struct {
	path   string
	logger *logger.Logger
}

func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, logger: log.Named("store")}
}

// Append writes rec at the end of the store file, creating it if needed.
func (s *FileStore) Append(rec *domain.Reservation) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store %s: %w", s.path, err)
	}
	if _, err := f.WriteString(encodeRecord(rec)); err != nil {
		f.Close()
		return fmt.Errorf("append reservation %d: %w", rec.ID, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store %s: %w", s.path, err)
	}
	return nil
}

// RemoveByID deletes the first record whose header id equals id and
// reports what was removed. The filtered content goes to a temp file in
// the store's directory, which replaces the store via rename only after
// a fully successful write and close; any earlier failure leaves the
// original untouched. Returns ErrNotFound when no header matched; the
// store content is rewritten unchanged in that case.
func (s *FileStore) RemoveByID(id int) (*RemovedInfo, error) {
	src, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", s.path, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".reservations-*")
	if err != nil {
		return nil, fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	tmpOpen := true
	defer func() {
		if tmpOpen {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	scanner := bufio.NewScanner(src)
	var removed *RemovedInfo
	inRecord := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		// Passenger lines of a record that is being kept are copied
		// verbatim without header parsing, so a line like "1234 Smith"
		// can never be mistaken for a header.
		if inRecord {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return nil, fmt.Errorf("write temp store: %w", err)
			}
			if trimmed == sentinel {
				inRecord = false
			}
			continue
		}

		if trimmed == "" || trimmed == sentinel {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return nil, fmt.Errorf("write temp store: %w", err)
			}
			continue
		}

		// Only the first match is removed; duplicate ids stay behind.
		if removed == nil {
			if h, perr := parseHeader(line); perr == nil && h.id == id {
				removed = &RemovedInfo{
					FlightNumber:   h.flightNumber,
					PassengerCount: h.passengerCount,
				}
				skipToSentinel(scanner)
				continue
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("write temp store: %w", err)
		}
		inRecord = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("flush temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		tmpOpen = false
		os.Remove(tmpName)
		return nil, fmt.Errorf("close temp store: %w", err)
	}
	tmpOpen = false

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("replace store %s: %w", s.path, err)
	}

	if removed == nil {
		return nil, ErrNotFound
	}
	s.logger.Debug("removed reservation",
		logger.Int("id", id),
		logger.String("flight", removed.FlightNumber),
		logger.Int("passengers", removed.PassengerCount))
	return removed, nil
}

// FindByDate returns every record whose flightDate field equals date,
// in store order. The date is matched as an opaque string. The store is
// reopened on every call, so repeated calls with no intervening writes
// yield identical results. Unparsable records are logged and skipped.
func (s *FileStore) FindByDate(date string) ([]*domain.Reservation, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", s.path, err)
	}
	defer f.Close()

	var out []*domain.Reservation
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == sentinel {
			continue
		}
		h, err := parseHeader(line)
		if err != nil {
			s.logger.Warn("skipping unparsable record", logger.Error(err))
			skipToSentinel(scanner)
			continue
		}
		rec := &domain.Reservation{
			ID:           h.id,
			FlightNumber: h.flightNumber,
			FlightDate:   h.flightDate,
			TotalFare:    h.totalFare,
		}
		for scanner.Scan() {
			pline := strings.TrimSpace(scanner.Text())
			if pline == sentinel {
				break
			}
			rec.Passengers = append(rec.Passengers, parsePassenger(pline))
		}
		if rec.FlightDate == date {
			out = append(out, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	return out, nil
}

// skipToSentinel advances past the current record's remaining lines.
func skipToSentinel(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == sentinel {
			return
		}
	}
}

var _ ReservationStore = (*FileStore)(nil)
