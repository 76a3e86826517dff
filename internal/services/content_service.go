package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"guesthouse/internal/domain"
	"guesthouse/internal/fallback"
	"guesthouse/internal/i18n"
	applog "guesthouse/internal/log"
	"guesthouse/internal/metrics"
)

// ErrSavePartial wraps the first failed write of a translation save; earlier writes stay applied.
var ErrSavePartial = errors.New("translations partially saved")

type ContentService struct {
	Store ContentStore
}

func NewContentService(store ContentStore) *ContentService {
	return &ContentService{Store: store}
}

// Resolve returns the page texts for lang. Store values are laid over the built-in bundle,
// so every bundle key is present; any store failure yields the bundle alone.
func (s *ContentService) Resolve(ctx context.Context, lang string) map[string]string {
	if !i18n.IsSupported(lang) {
		metrics.ObserveFallback("content", "unsupported")
		return fallback.Content(lang)
	}
	texts, err := s.Store.TextsByLanguage(ctx, lang)
	if err != nil {
		metrics.ObserveFallback("content", "error")
		applog.L().Warn().Err(err).Str("action", "content.resolve.fallback").Str("lang", lang).Send()
		return fallback.Content(lang)
	}
	out := fallback.Content(lang)
	if len(texts) == 0 {
		metrics.ObserveFallback("content", "empty")
		return out
	}
	for _, t := range texts {
		if t.Content == "" {
			continue
		}
		out[t.SectionKey] = t.Content
	}
	return out
}

// EditorEntry is one editable field of the content editor.
type EditorEntry struct {
	Section     domain.ContentSection
	Translation domain.ContentTranslation
}

// ContentEditor holds every section once per supported language.
type ContentEditor struct {
	Sections  []domain.ContentSection
	Languages []string
	Entries   map[string][]EditorEntry // by language
}

// LoadEditor reads sections and translations fresh from the store. Missing translations get
// a temporary id so a later save inserts them.
func (s *ContentService) LoadEditor(ctx context.Context) (ContentEditor, error) {
	sections, err := s.Store.ListSections(ctx)
	if err != nil {
		return ContentEditor{}, fmt.Errorf("load sections: %w", err)
	}
	translations, err := s.Store.ListTranslations(ctx)
	if err != nil {
		return ContentEditor{}, fmt.Errorf("load translations: %w", err)
	}

	type slot struct{ section, lang string }
	first := make(map[slot]domain.ContentTranslation, len(translations))
	for _, t := range translations {
		k := slot{t.SectionID, t.LanguageCode}
		if _, seen := first[k]; !seen {
			first[k] = t
		}
	}

	ed := ContentEditor{
		Sections:  sections,
		Languages: append([]string(nil), i18n.Supported...),
		Entries:   make(map[string][]EditorEntry, len(i18n.Supported)),
	}
	for _, lang := range ed.Languages {
		entries := make([]EditorEntry, 0, len(sections))
		for _, sec := range sections {
			t, ok := first[slot{sec.ID, lang}]
			if !ok {
				t = domain.ContentTranslation{
					ID:           fmt.Sprintf("%s%s-%s", domain.TempIDPrefix, uuid.NewString(), lang),
					SectionID:    sec.ID,
					LanguageCode: lang,
				}
			}
			entries = append(entries, EditorEntry{Section: sec, Translation: t})
		}
		ed.Entries[lang] = entries
	}
	return ed, nil
}

// SaveTranslations inserts new edits and updates persisted ones in order, stopping at the
// first failure. New edits with empty content are skipped. It returns the number of rows written.
func (s *ContentService) SaveTranslations(ctx context.Context, edits []domain.ContentTranslation) (int, error) {
	written := 0
	for _, e := range edits {
		var err error
		if e.IsNew() {
			if e.Content == "" {
				continue
			}
			_, err = s.Store.InsertTranslation(ctx, domain.ContentTranslation{
				SectionID:    e.SectionID,
				LanguageCode: e.LanguageCode,
				Content:      e.Content,
			})
			metrics.ObserveAdminWrite("translation", "insert", err)
		} else {
			err = s.Store.UpdateTranslation(ctx, e.ID, e.Content)
			metrics.ObserveAdminWrite("translation", "update", err)
		}
		if err != nil {
			return written, fmt.Errorf("%w after %d writes: %w", ErrSavePartial, written, err)
		}
		written++
	}
	return written, nil
}
