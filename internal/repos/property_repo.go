package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"guesthouse/internal/domain"
)

type PropertyRepo struct{ db *sqlx.DB }

func NewPropertyRepo(db *sqlx.DB) *PropertyRepo { return &PropertyRepo{db: db} }

const propertyColumns = `id, name, description, address, max_guests, bedrooms, bathrooms,
  price_per_night, currency, amenities_json, images_json`

// Get returns the single property row, or domain.ErrNotFound when none is seeded.
func (r *PropertyRepo) Get(ctx context.Context) (domain.PropertyInfo, error) {
	var p domain.PropertyInfo
	err := r.db.GetContext(ctx, &p, `SELECT `+propertyColumns+` FROM property_info ORDER BY id LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PropertyInfo{}, domain.ErrNotFound
	}
	return p, err
}

func (r *PropertyRepo) Update(ctx context.Context, p domain.PropertyInfo) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE property_info SET
		  name = ?, description = ?, address = ?, max_guests = ?, bedrooms = ?, bathrooms = ?,
		  price_per_night = ?, currency = ?, amenities_json = ?, images_json = ?, updated_at = ?
		WHERE id = ?`),
		p.Name, p.Description, p.Address, p.MaxGuests, p.Bedrooms, p.Bathrooms,
		p.PricePerNight, p.Currency, p.Amenities, p.Images, now(), p.ID)
	if err != nil {
		return fmt.Errorf("update property %s: %w", p.ID, err)
	}
	return expectRow(res, "property", p.ID)
}

func expectRow(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	return nil
}
