package services_test

import (
	"context"
	"errors"
	"sort"

	"guesthouse/internal/domain"
)

var errStoreDown = errors.New("store unreachable")

type brokenContent struct{}

func (brokenContent) TextsByLanguage(context.Context, string) ([]domain.KeyedText, error) {
	return nil, errStoreDown
}
func (brokenContent) ListSections(context.Context) ([]domain.ContentSection, error) {
	return nil, errStoreDown
}
func (brokenContent) ListTranslations(context.Context) ([]domain.ContentTranslation, error) {
	return nil, errStoreDown
}
func (brokenContent) InsertTranslation(context.Context, domain.ContentTranslation) (string, error) {
	return "", errStoreDown
}
func (brokenContent) UpdateTranslation(context.Context, string, string) error { return errStoreDown }

// memContent keeps translations in memory and can fail the n-th write.
type memContent struct {
	texts   []domain.KeyedText
	writes  int
	failAt  int
	updated map[string]string
	added   []domain.ContentTranslation
}

func (m *memContent) TextsByLanguage(context.Context, string) ([]domain.KeyedText, error) {
	return m.texts, nil
}
func (m *memContent) ListSections(context.Context) ([]domain.ContentSection, error) { return nil, nil }
func (m *memContent) ListTranslations(context.Context) ([]domain.ContentTranslation, error) {
	return nil, nil
}
func (m *memContent) write() error {
	m.writes++
	if m.failAt > 0 && m.writes == m.failAt {
		return errStoreDown
	}
	return nil
}
func (m *memContent) InsertTranslation(_ context.Context, t domain.ContentTranslation) (string, error) {
	if err := m.write(); err != nil {
		return "", err
	}
	m.added = append(m.added, t)
	return "id-new", nil
}
func (m *memContent) UpdateTranslation(_ context.Context, id, content string) error {
	if err := m.write(); err != nil {
		return err
	}
	if m.updated == nil {
		m.updated = map[string]string{}
	}
	m.updated[id] = content
	return nil
}

type fakeProperty struct {
	p   domain.PropertyInfo
	err error
}

func (f *fakeProperty) Get(context.Context) (domain.PropertyInfo, error) { return f.p, f.err }
func (f *fakeProperty) Update(_ context.Context, p domain.PropertyInfo) error {
	if f.err != nil {
		return f.err
	}
	f.p = p
	return nil
}

// memRooms is an in-memory RoomStore; failSetAfter > 0 makes that SetSortOrder call fail.
type memRooms struct {
	rooms        map[string]domain.Room
	listErr      error
	nextID       int
	sets         int
	failSetAfter int
}

func newMemRooms(rooms ...domain.Room) *memRooms {
	m := &memRooms{rooms: map[string]domain.Room{}}
	for _, r := range rooms {
		m.rooms[r.ID] = r
	}
	return m
}

func (m *memRooms) List(context.Context) ([]domain.Room, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memRooms) Get(_ context.Context, id string) (domain.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *memRooms) Count(context.Context) (int, error) { return len(m.rooms), nil }

func (m *memRooms) Insert(_ context.Context, r domain.Room) (string, error) {
	m.nextID++
	r.ID = "room-" + string(rune('a'+m.nextID-1))
	m.rooms[r.ID] = r
	return r.ID, nil
}

func (m *memRooms) Update(_ context.Context, r domain.Room) error {
	if _, ok := m.rooms[r.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rooms[r.ID] = r
	return nil
}

func (m *memRooms) SetSortOrder(_ context.Context, id string, order int) error {
	m.sets++
	if m.failSetAfter > 0 && m.sets == m.failSetAfter {
		return errStoreDown
	}
	r, ok := m.rooms[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.SortOrder = order
	m.rooms[id] = r
	return nil
}

func (m *memRooms) Delete(_ context.Context, id string) error {
	if _, ok := m.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rooms, id)
	return nil
}

func (m *memRooms) orders() map[string]int {
	out := map[string]int{}
	for id, r := range m.rooms {
		out[id] = r.SortOrder
	}
	return out
}
