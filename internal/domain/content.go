package domain

import "strings"

const (
	ContentPlainText = "plain_text"
	ContentRichText  = "rich_text"
)

// TempIDPrefix marks a translation that has not been persisted yet.
const TempIDPrefix = "temp-"

type ContentSection struct {
	ID          string `db:"id"`
	SectionKey  string `db:"section_key"`
	SectionName string `db:"section_name"`
	ContentType string `db:"content_type"` // plain_text | rich_text
}

func (s ContentSection) IsRichText() bool { return s.ContentType == ContentRichText }

type ContentTranslation struct {
	ID           string `db:"id"`
	SectionID    string `db:"section_id"`
	LanguageCode string `db:"language_code"`
	Content      string `db:"content"`
}

// IsNew reports whether the translation still carries a temporary id.
func (t ContentTranslation) IsNew() bool {
	return t.ID == "" || strings.HasPrefix(t.ID, TempIDPrefix)
}

// KeyedText is a translation joined to its section key.
type KeyedText struct {
	SectionKey string `db:"section_key"`
	Content    string `db:"content"`
}
