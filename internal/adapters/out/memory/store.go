// Package memory is the in-process storage driver. A Store owns the whole
// application state; units of work take exclusive ownership of it from Begin
// until Commit or Rollback, work on a private copy, and swap the copy in on
// Commit. The state can be written to and read from a versioned JSON snapshot.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/pkg/errs"
)

// state is everything the store holds. Orders are kept newest first.
type state struct {
	orders  []orderRecord
	rates   *ratesRecord
	balance int64
	history []entryRecord
	recent  []string
	profile *profileRecord
}

func (s state) clone() state {
	c := s
	c.orders = slices.Clone(s.orders)
	c.history = slices.Clone(s.history)
	c.recent = slices.Clone(s.recent)
	if s.rates != nil {
		r := *s.rates
		c.rates = &r
	}
	if s.profile != nil {
		p := *s.profile
		c.profile = &p
	}
	return c
}

// Store is the single owner of the in-memory state.
type Store struct {
	sem          chan struct{}
	state        state
	defaultRates rates.Table
	dirty        bool
}

// NewStore returns an empty store. defaultRates is served by the rate
// repository until a table has been saved.
func NewStore(defaultRates rates.Table) *Store {
	return &Store{
		sem:          make(chan struct{}, 1),
		defaultRates: defaultRates,
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// Save writes the committed state as a JSON snapshot and clears the dirty flag.
func (s *Store) Save(ctx context.Context, w io.Writer) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return s.saveLocked(w)
}

func (s *Store) saveLocked(w io.Writer) error {
	snap := snapshot{
		Version:        snapshotVersion,
		Orders:         s.state.orders,
		Rates:          s.state.rates,
		Balance:        s.state.balance,
		History:        s.state.history,
		RecentTracking: s.state.recent,
		Profile:        s.state.profile,
	}
	if snap.Orders == nil {
		snap.Orders = []orderRecord{}
	}
	if snap.History == nil {
		snap.History = []entryRecord{}
	}
	if snap.RecentTracking == nil {
		snap.RecentTracking = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.dirty = false
	return nil
}

// Load replaces the whole state with a snapshot. Every record is checked
// against the domain model first; on any error the current state is kept.
func (s *Store) Load(ctx context.Context, r io.Reader) error {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return errs.NewVersionIsInvalidErrorWithCause("snapshot",
			fmt.Errorf("got %d, want %d", snap.Version, snapshotVersion))
	}

	seen := make(map[string]struct{}, len(snap.Orders))
	for _, rec := range snap.Orders {
		if _, dup := seen[rec.OrderNo]; dup {
			return errs.NewValueIsInvalidErrorWithCause("snapshot", fmt.Errorf("duplicate order %s", rec.OrderNo))
		}
		seen[rec.OrderNo] = struct{}{}
		if _, err := rec.toDomain(); err != nil {
			return err
		}
	}
	if _, err := walletToDomain(snap.Balance, snap.History); err != nil {
		return err
	}
	if snap.Rates != nil {
		if err := snap.Rates.toDomain().Validate(); err != nil {
			return err
		}
	}

	loaded := state{
		orders:  snap.Orders,
		rates:   snap.Rates,
		balance: snap.Balance,
		history: snap.History,
		recent:  recentToDomain(snap.RecentTracking).Numbers(),
		profile: snap.Profile,
	}

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	s.state = loaded.clone()
	s.dirty = false
	return nil
}

// SaveFile writes a snapshot to path through a temporary file in the same
// directory, so a crash never leaves a truncated snapshot behind.
func (s *Store) SaveFile(ctx context.Context, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err = s.Save(ctx, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// LoadFile loads the snapshot at path. A missing file leaves the store empty
// and reports false.
func (s *Store) LoadFile(ctx context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	if err = s.Load(ctx, f); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// Dirty reports whether anything was committed since the last Save or Load.
func (s *Store) Dirty(ctx context.Context) (bool, error) {
	if err := s.acquire(ctx); err != nil {
		return false, err
	}
	defer s.release()

	return s.dirty, nil
}
