package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"guesthouse/internal/domain"
)

type RoomRepo struct{ db *sqlx.DB }

func NewRoomRepo(db *sqlx.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, name, description, max_guests, bed_type, size_sqm, price_per_night,
  amenities_json, images_json, is_available, sort_order, created_at, updated_at`

// List returns every room in display order.
func (r *RoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	err := r.db.SelectContext(ctx, &out, `SELECT `+roomColumns+` FROM rooms ORDER BY sort_order ASC, id ASC`)
	return out, err
}

func (r *RoomRepo) Get(ctx context.Context, id string) (domain.Room, error) {
	var room domain.Room
	err := r.db.GetContext(ctx, &room, r.db.Rebind(`SELECT `+roomColumns+` FROM rooms WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, fmt.Errorf("room %s: %w", id, domain.ErrNotFound)
	}
	return room, err
}

func (r *RoomRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM rooms`)
	return n, err
}

// Insert stores room under a fresh id and returns it.
func (r *RoomRepo) Insert(ctx context.Context, room domain.Room) (string, error) {
	room.ID = uuid.NewString()
	room.CreatedAt, room.UpdatedAt = now(), now()
	if err := insertRoom(ctx, r.db, room); err != nil {
		return "", fmt.Errorf("insert room: %w", err)
	}
	return room.ID, nil
}

func insertRoom(ctx context.Context, db sqlx.ExtContext, room domain.Room) error {
	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO rooms(`+roomColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		room.ID, room.Name, room.Description, room.MaxGuests, room.BedType, room.SizeSqm,
		room.PricePerNight, room.Amenities, room.Images, room.IsAvailable, room.SortOrder,
		room.CreatedAt, room.UpdatedAt)
	return err
}

// Update overwrites every editable field of the room with room.ID.
func (r *RoomRepo) Update(ctx context.Context, room domain.Room) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE rooms SET
		  name = ?, description = ?, max_guests = ?, bed_type = ?, size_sqm = ?, price_per_night = ?,
		  amenities_json = ?, images_json = ?, is_available = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`),
		room.Name, room.Description, room.MaxGuests, room.BedType, room.SizeSqm, room.PricePerNight,
		room.Amenities, room.Images, room.IsAvailable, room.SortOrder, now(), room.ID)
	if err != nil {
		return fmt.Errorf("update room %s: %w", room.ID, err)
	}
	return expectRow(res, "room", room.ID)
}

func (r *RoomRepo) SetSortOrder(ctx context.Context, id string, order int) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE rooms SET sort_order = ?, updated_at = ? WHERE id = ?`), order, now(), id)
	if err != nil {
		return fmt.Errorf("set sort order %s: %w", id, err)
	}
	return expectRow(res, "room", id)
}

func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM rooms WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete room %s: %w", id, err)
	}
	return expectRow(res, "room", id)
}
