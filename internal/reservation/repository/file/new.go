package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

const (
	ReservationsFile = "reservations.json"
	CustomersFile    = "customers.json"
)

type storedReservation struct {
	ID        string    `json:"id"`
	Ordinal   int       `json:"ordinal"`
	Name      string    `json:"name"`
	People    int       `json:"people"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type storedCustomer struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Visits    int    `json:"visits"`
	LastVisit string `json:"last_visit"`
}

// date -> time -> reservations in commit order
type reservationBook map[string]map[string][]storedReservation

type implRepository struct {
	mu           sync.Mutex
	dir          string
	reservations reservationBook
	customers    map[string]storedCustomer
	l            log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New loads both JSON stores from dir. Missing files start empty.
func New(ctx context.Context, dir string, l log.Logger) (*implRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	r := &implRepository{
		dir:          dir,
		reservations: reservationBook{},
		customers:    map[string]storedCustomer{},
		l:            l,
	}
	if err := readJSON(filepath.Join(dir, ReservationsFile), &r.reservations); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, CustomersFile), &r.customers); err != nil {
		return nil, err
	}

	l.Infof(ctx, "file store loaded from %s: %d dates, %d customers", dir, len(r.reservations), len(r.customers))
	return r, nil
}

func (r *implRepository) Close() error {
	return nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeJSON replaces path through a temp file and rename so a failed write
// leaves the previous file intact.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
