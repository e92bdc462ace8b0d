// Package repositorytest provides an in-process booking store for tests that exercise the
// booking service without a database.
package repositorytest

import (
	"context"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	"sort"
	"sync"
	"time"
)

// Memory keeps bookings in process. The joined fields are stored as given on Insert.
type Memory struct {
	mu       sync.RWMutex
	bookings map[string]model.Booking
}

var _ repository.Booking = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{bookings: map[string]model.Booking{}}
}

func (m *Memory) Insert(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings[booking.ID] = booking

	return nil
}

func (m *Memory) GetByID(_ context.Context, id string) (model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.bookings[id], nil
}

func (m *Memory) FindByBooker(_ context.Context, bookerID string, state model.State, now time.Time) ([]model.Booking, error) {
	return m.find(func(b model.Booking) bool {
		return b.BookerID == bookerID && state.Matches(b, now)
	}), nil
}

func (m *Memory) FindByItemOwner(_ context.Context, ownerID string, state model.State, now time.Time) ([]model.Booking, error) {
	return m.find(func(b model.Booking) bool {
		return b.ItemOwnerID == ownerID && state.Matches(b, now)
	}), nil
}

func (m *Memory) ExistFinished(_ context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	found := m.find(func(b model.Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && b.End.Before(now)
	})

	return len(found) > 0, nil
}

func (m *Memory) UpdateStatus(_ context.Context, id string, status model.Status, modifiedBy string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}

	booking.Status = status
	booking.ModifiedBy = modifiedBy
	booking.ModifiedAt = at
	m.bookings[id] = booking

	return nil
}

func (m *Memory) FindLastNext(_ context.Context, itemIDs []string, dayStart, nextDayStart time.Time) (map[string]model.LastNext, error) {
	wanted := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make(map[string]model.LastNext, len(itemIDs))

	for _, booking := range m.bookings {
		if _, ok := wanted[booking.ItemID]; !ok {
			continue
		}

		entry := res[booking.ItemID]

		switch {
		case booking.Start.Before(dayStart):
			if entry.Last == nil || later(booking, *entry.Last) {
				candidate := booking
				entry.Last = &candidate
			}
		case !booking.Start.Before(nextDayStart):
			if entry.Next == nil || earlier(booking, *entry.Next) {
				candidate := booking
				entry.Next = &candidate
			}
		default:
			continue
		}

		res[booking.ItemID] = entry
	}

	return res, nil
}

func (m *Memory) find(match func(model.Booking) bool) []model.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()

	found := []model.Booking{}

	for _, booking := range m.bookings {
		if match(booking) {
			found = append(found, booking)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return later(found[i], found[j])
	})

	return found
}

// later orders by start descending, then by id ascending.
func later(a, b model.Booking) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.After(b.Start)
	}

	return a.ID < b.ID
}

// earlier orders by start ascending, then by id ascending.
func earlier(a, b model.Booking) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}

	return a.ID < b.ID
}
