package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"guesthouse/internal/domain"
	"guesthouse/internal/fallback"
	"guesthouse/internal/i18n"
	applog "guesthouse/internal/log"
)

// PropertyID is the id of the seeded singleton property row.
const PropertyID = "main"

type SeedOptions struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// Seed inserts the built-in sections, translations, property and the admin account when they
// are missing, plus a starter room when the property row is created. Safe to run on every startup.
func Seed(ctx context.Context, db *sqlx.DB, opts SeedOptions) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedContent(ctx, tx); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	firstRun, err := seedProperty(ctx, tx)
	if err != nil {
		return fmt.Errorf("seed property: %w", err)
	}
	// rooms deleted by an admin stay deleted; only a fresh store gets the starter room
	if firstRun {
		if err := seedRooms(ctx, tx); err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
	}
	if err := seedAdmin(ctx, tx, opts); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return tx.Commit()
}

func seedContent(ctx context.Context, tx *sqlx.Tx) error {
	var keys []string
	if err := tx.SelectContext(ctx, &keys, `SELECT section_key FROM content_sections`); err != nil {
		return err
	}
	existing := make(map[string]bool, len(keys))
	for _, k := range keys {
		existing[k] = true
	}

	bundles := make(map[string]map[string]string, len(i18n.Supported))
	for _, lang := range i18n.Supported {
		bundles[lang] = fallback.Content(lang)
	}

	inserted := 0
	for _, s := range fallback.Sections {
		if existing[s.Key] {
			continue
		}
		sid := uuid.NewString()
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO content_sections(id, section_key, section_name, content_type)
			VALUES (?, ?, ?, ?)`), sid, s.Key, s.Name, s.ContentType); err != nil {
			return err
		}
		for _, lang := range i18n.Supported {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`
				INSERT INTO content_translations(id, section_id, language_code, content, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?)`), uuid.NewString(), sid, lang, bundles[lang][s.Key], now(), now()); err != nil {
				return err
			}
		}
		inserted++
	}
	if inserted > 0 {
		applog.L().Info().Int("sections", inserted).Msg("seed.content")
	}
	return nil
}

// seedProperty reports whether it inserted the property row, which marks a first run.
func seedProperty(ctx context.Context, tx *sqlx.Tx) (bool, error) {
	var n int
	if err := tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM property_info`); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	p := fallback.Property()
	p.ID = PropertyID
	_, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO property_info(id, name, description, address, max_guests, bedrooms, bathrooms,
		  price_per_night, currency, amenities_json, images_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		p.ID, p.Name, p.Description, p.Address, p.MaxGuests, p.Bedrooms, p.Bathrooms,
		p.PricePerNight, p.Currency, p.Amenities, p.Images, now())
	if err != nil {
		return false, err
	}
	applog.L().Info().Str("id", p.ID).Msg("seed.property")
	return true, nil
}

func seedRooms(ctx context.Context, tx *sqlx.Tx) error {
	var n int
	if err := tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM rooms`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	r := fallback.Room()
	r.ID = uuid.NewString()
	r.CreatedAt, r.UpdatedAt = now(), now()
	return insertRoom(ctx, tx, r)
}

func seedAdmin(ctx context.Context, tx *sqlx.Tx, opts SeedOptions) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		applog.L().Warn().Msg("seed.admin skipped: ADMIN_EMAIL or ADMIN_PASSWORD is empty")
		return nil
	}
	name := opts.AdminName
	if name == "" {
		name = "Admin"
	}
	h, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO users(id, email, name, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING`),
		uuid.NewString(), opts.AdminEmail, name, string(h), domain.RoleAdmin, now())
	return err
}
