package services

import (
	"context"
	"errors"
	"fmt"

	"guesthouse/internal/domain"
	"guesthouse/internal/fallback"
	applog "guesthouse/internal/log"
	"guesthouse/internal/metrics"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

var ErrInvalidDirection = errors.New("direction must be up or down")

type RoomService struct {
	Store RoomStore
}

func NewRoomService(store RoomStore) *RoomService {
	return &RoomService{Store: store}
}

// Resolve returns the rooms in display order, or the single built-in room when the store
// is empty or unreadable.
func (s *RoomService) Resolve(ctx context.Context) []domain.Room {
	rooms, err := s.Store.List(ctx)
	if err != nil {
		metrics.ObserveFallback("rooms", "error")
		applog.L().Warn().Err(err).Str("action", "rooms.resolve.fallback").Send()
		return fallback.Rooms()
	}
	if len(rooms) == 0 {
		metrics.ObserveFallback("rooms", "empty")
		return fallback.Rooms()
	}
	return rooms
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.Store.List(ctx)
}

func (s *RoomService) Get(ctx context.Context, id string) (domain.Room, error) {
	return s.Store.Get(ctx, id)
}

// Create appends draft at the end of the display order and returns the stored room.
func (s *RoomService) Create(ctx context.Context, draft domain.Room) (domain.Room, error) {
	n, err := s.Store.Count(ctx)
	if err != nil {
		return domain.Room{}, fmt.Errorf("count rooms: %w", err)
	}
	draft.SortOrder = n
	id, err := s.Store.Insert(ctx, draft)
	metrics.ObserveAdminWrite("room", "insert", err)
	if err != nil {
		return domain.Room{}, err
	}
	draft.ID = id
	return draft, nil
}

func (s *RoomService) Update(ctx context.Context, room domain.Room) error {
	err := s.Store.Update(ctx, room)
	metrics.ObserveAdminWrite("room", "update", err)
	return err
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	metrics.ObserveAdminWrite("room", "delete", err)
	return err
}

// Move swaps the room's sort_order with its neighbour in dir and returns the reloaded list.
// At the boundary it writes nothing. When the two rooms share a sort_order the whole list is
// renumbered by position instead, so ties and gaps disappear. Writes are not atomic: a failure
// leaves the earlier updates applied.
func (s *RoomService) Move(ctx context.Context, id, dir string) ([]domain.Room, error) {
	if dir != DirectionUp && dir != DirectionDown {
		return nil, ErrInvalidDirection
	}
	rooms, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, r := range rooms {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("room %s: %w", id, domain.ErrNotFound)
	}

	other := idx - 1
	if dir == DirectionDown {
		other = idx + 1
	}
	if other < 0 || other >= len(rooms) {
		return rooms, nil
	}

	a, b := rooms[idx], rooms[other]
	if a.SortOrder == b.SortOrder {
		rooms[idx], rooms[other] = b, a
		if err := s.renumber(ctx, rooms); err != nil {
			return nil, err
		}
		return s.Store.List(ctx)
	}

	err = s.Store.SetSortOrder(ctx, a.ID, b.SortOrder)
	metrics.ObserveAdminWrite("room", "move", err)
	if err != nil {
		return nil, err
	}
	err = s.Store.SetSortOrder(ctx, b.ID, a.SortOrder)
	metrics.ObserveAdminWrite("room", "move", err)
	if err != nil {
		return nil, fmt.Errorf("swap %s with %s: %w", a.ID, b.ID, err)
	}
	return s.Store.List(ctx)
}

// renumber sets each room's sort_order to its index, skipping rows already in place.
func (s *RoomService) renumber(ctx context.Context, rooms []domain.Room) error {
	for i, r := range rooms {
		if r.SortOrder == i {
			continue
		}
		err := s.Store.SetSortOrder(ctx, r.ID, i)
		metrics.ObserveAdminWrite("room", "move", err)
		if err != nil {
			return fmt.Errorf("renumber %s to %d: %w", r.ID, i, err)
		}
	}
	return nil
}
