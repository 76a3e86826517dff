package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"guesthouse/internal/domain"
)

type ContentRepo struct{ db *sqlx.DB }

func NewContentRepo(db *sqlx.DB) *ContentRepo { return &ContentRepo{db: db} }

// TextsByLanguage returns every translation for lang joined to its section key.
func (r *ContentRepo) TextsByLanguage(ctx context.Context, lang string) ([]domain.KeyedText, error) {
	var out []domain.KeyedText
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT s.section_key, t.content
		FROM content_translations t
		JOIN content_sections s ON s.id = t.section_id
		WHERE t.language_code = ?
		ORDER BY t.created_at, t.id`), lang)
	return out, err
}

func (r *ContentRepo) ListSections(ctx context.Context) ([]domain.ContentSection, error) {
	var out []domain.ContentSection
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, section_key, section_name, content_type
		FROM content_sections
		ORDER BY section_name`)
	return out, err
}

func (r *ContentRepo) ListTranslations(ctx context.Context) ([]domain.ContentTranslation, error) {
	var out []domain.ContentTranslation
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, section_id, language_code, content
		FROM content_translations
		ORDER BY created_at, id`)
	return out, err
}

// InsertTranslation stores t under a fresh id and returns it.
func (r *ContentRepo) InsertTranslation(ctx context.Context, t domain.ContentTranslation) (string, error) {
	id := uuid.NewString()
	ts := now()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO content_translations(id, section_id, language_code, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`), id, t.SectionID, t.LanguageCode, t.Content, ts, ts)
	if err != nil {
		return "", fmt.Errorf("insert translation: %w", err)
	}
	return id, nil
}

func (r *ContentRepo) UpdateTranslation(ctx context.Context, id, content string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE content_translations SET content = ?, updated_at = ? WHERE id = ?`), content, now(), id)
	if err != nil {
		return fmt.Errorf("update translation %s: %w", id, err)
	}
	return expectRow(res, "translation", id)
}
