package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store owns the mutable reference catalogs. All reads return copies. Every
// mutation builds the next snapshot, persists it through the injected port,
// and commits it in memory only after the save succeeds, so the catalogs
// never diverge from the persisted settings.
type Store struct {
	mu      sync.RWMutex
	port    Port
	fetcher HolidayFetcher

	leaveTypes      []LeaveType
	offices         []ProsecutorOffice
	holidays        []Holiday
	excludeWeekends bool
}

// NewStore loads persisted settings through the port, falling back to the
// built-in seed when nothing usable is stored.
func NewStore(ctx context.Context, port Port, fetcher HolidayFetcher) (*Store, error) {
	snap, ok, err := port.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		slog.Info("no persisted settings, using seed catalogs")
		snap = SeedSnapshot()
	}

	return &Store{
		port:            port,
		fetcher:         fetcher,
		leaveTypes:      snap.LeaveTypes,
		offices:         snap.Offices,
		holidays:        snap.Holidays,
		excludeWeekends: snap.ExcludeWeekends,
	}, nil
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		LeaveTypes:      append([]LeaveType(nil), s.leaveTypes...),
		Offices:         append([]ProsecutorOffice(nil), s.offices...),
		Holidays:        append([]Holiday(nil), s.holidays...),
		ExcludeWeekends: s.excludeWeekends,
	}
}

// applyLocked persists snap and, only on success, makes it the current state.
func (s *Store) applyLocked(ctx context.Context, snap Snapshot) error {
	if err := s.port.Save(ctx, snap); err != nil {
		return err
	}
	s.leaveTypes = snap.LeaveTypes
	s.offices = snap.Offices
	s.holidays = snap.Holidays
	s.excludeWeekends = snap.ExcludeWeekends
	return nil
}

// Snapshot returns a copy of the full catalog state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// LeaveTypes returns the leave types in display order: group ascending, then
// group index ascending.
func (s *Store) LeaveTypes() []LeaveType {
	s.mu.RLock()
	types := append([]LeaveType(nil), s.leaveTypes...)
	s.mu.RUnlock()

	sort.SliceStable(types, func(i, j int) bool {
		if types[i].Group != types[j].Group {
			return types[i].Group < types[j].Group
		}
		return types[i].GroupIndex < types[j].GroupIndex
	})
	return types
}

// LeaveTypeByID returns the leave type with the given id, or false.
func (s *Store) LeaveTypeByID(id string) (LeaveType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.leaveTypes {
		if t.ID == id {
			return t, true
		}
	}
	return LeaveType{}, false
}

// Offices returns the offices in catalog order.
func (s *Store) Offices() []ProsecutorOffice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ProsecutorOffice(nil), s.offices...)
}

// OfficeByID returns the office with the given id, or false.
func (s *Store) OfficeByID(id string) (ProsecutorOffice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.offices {
		if o.ID == id {
			return o, true
		}
	}
	return ProsecutorOffice{}, false
}

// Holidays returns the holiday catalog.
func (s *Store) Holidays() []Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Holiday(nil), s.holidays...)
}

// ExcludeWeekends reports the global weekend/holiday exclusion flag.
func (s *Store) ExcludeWeekends() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.excludeWeekends
}

// SetExcludeWeekends updates the global exclusion flag.
func (s *Store) SetExcludeWeekends(ctx context.Context, exclude bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshotLocked()
	snap.ExcludeWeekends = exclude
	return s.applyLocked(ctx, snap)
}

func (s *Store) groupIndexTakenLocked(t LeaveType) bool {
	for _, existing := range s.leaveTypes {
		if existing.ID != t.ID && existing.Group == t.Group && existing.GroupIndex == t.GroupIndex {
			return true
		}
	}
	return false
}

// AddLeaveType appends a leave type, assigning a fresh id when absent.
func (s *Store) AddLeaveType(ctx context.Context, t LeaveType) (LeaveType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if s.groupIndexTakenLocked(t) {
		return LeaveType{}, ErrDuplicateGroupIndex
	}
	snap := s.snapshotLocked()
	snap.LeaveTypes = append(snap.LeaveTypes, t)
	if err := s.applyLocked(ctx, snap); err != nil {
		return LeaveType{}, err
	}
	return t, nil
}

// UpdateLeaveType replaces the entry whose id matches, returning ErrNotFound
// for unknown ids.
func (s *Store) UpdateLeaveType(ctx context.Context, t LeaveType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.leaveTypes {
		if existing.ID == t.ID {
			if s.groupIndexTakenLocked(t) {
				return ErrDuplicateGroupIndex
			}
			snap := s.snapshotLocked()
			snap.LeaveTypes[i] = t
			return s.applyLocked(ctx, snap)
		}
	}
	return ErrNotFound
}

// DeleteLeaveType removes the entry with that id; no-op when absent.
func (s *Store) DeleteLeaveType(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.leaveTypes {
		if existing.ID == id {
			snap := s.snapshotLocked()
			snap.LeaveTypes = append(snap.LeaveTypes[:i], snap.LeaveTypes[i+1:]...)
			return s.applyLocked(ctx, snap)
		}
	}
	return nil
}

// AddOffice appends an office, assigning a fresh id when absent.
func (s *Store) AddOffice(ctx context.Context, o ProsecutorOffice) (ProsecutorOffice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	snap := s.snapshotLocked()
	snap.Offices = append(snap.Offices, o)
	if err := s.applyLocked(ctx, snap); err != nil {
		return ProsecutorOffice{}, err
	}
	return o, nil
}

// UpdateOffice replaces the entry whose id matches, returning ErrNotFound
// for unknown ids.
func (s *Store) UpdateOffice(ctx context.Context, o ProsecutorOffice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.offices {
		if existing.ID == o.ID {
			snap := s.snapshotLocked()
			snap.Offices[i] = o
			return s.applyLocked(ctx, snap)
		}
	}
	return ErrNotFound
}

// DeleteOffice removes the entry with that id; no-op when absent.
func (s *Store) DeleteOffice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.offices {
		if existing.ID == id {
			snap := s.snapshotLocked()
			snap.Offices = append(snap.Offices[:i], snap.Offices[i+1:]...)
			return s.applyLocked(ctx, snap)
		}
	}
	return nil
}

// AddHoliday appends a holiday, assigning a fresh id when absent.
func (s *Store) AddHoliday(ctx context.Context, h Holiday) (Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	snap := s.snapshotLocked()
	snap.Holidays = append(snap.Holidays, h)
	if err := s.applyLocked(ctx, snap); err != nil {
		return Holiday{}, err
	}
	return h, nil
}

// UpdateHoliday replaces the entry whose id matches, returning ErrNotFound
// for unknown ids.
func (s *Store) UpdateHoliday(ctx context.Context, h Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.holidays {
		if existing.ID == h.ID {
			snap := s.snapshotLocked()
			snap.Holidays[i] = h
			return s.applyLocked(ctx, snap)
		}
	}
	return ErrNotFound
}

// DeleteHoliday removes the entry with that id; no-op when absent.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.holidays {
		if existing.ID == id {
			snap := s.snapshotLocked()
			snap.Holidays = append(snap.Holidays[:i], snap.Holidays[i+1:]...)
			return s.applyLocked(ctx, snap)
		}
	}
	return nil
}

// ImportHolidays fetches holidays for a year and merges them into the
// catalog. A fetched holiday whose literal date string matches an existing
// entry is skipped, so re-importing the same year never produces duplicates.
// Fetch, parse or persist failures propagate without touching the catalog.
func (s *Store) ImportHolidays(ctx context.Context, year int) (added int, err error) {
	fetched, err := s.fetcher.FetchYear(ctx, year)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	existing := make(map[string]bool, len(snap.Holidays))
	for _, h := range snap.Holidays {
		existing[h.Date] = true
	}
	for _, h := range fetched {
		if existing[h.Date] {
			continue
		}
		existing[h.Date] = true
		snap.Holidays = append(snap.Holidays, h)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.applyLocked(ctx, snap); err != nil {
		return 0, err
	}
	return added, nil
}
