package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/internal/fallback"
	"guesthouse/internal/i18n"
)

func TestEveryLanguageHasEverySection(t *testing.T) {
	for _, lang := range i18n.Supported {
		b := fallback.Content(lang)
		for _, s := range fallback.Sections {
			assert.NotEmpty(t, b[s.Key], "lang=%s key=%s", lang, s.Key)
		}
		assert.Len(t, b, len(fallback.Sections), "lang=%s", lang)
	}
}

func TestUnknownLanguageIsEnglish(t *testing.T) {
	assert.Equal(t, fallback.Content(i18n.English), fallback.Content("de"))
	assert.Equal(t, fallback.Content(i18n.English), fallback.Content(""))
}

func TestContentReturnsCopy(t *testing.T) {
	b := fallback.Content(i18n.French)
	b[fallback.HeroTitle] = "changed"
	require.NotEqual(t, "changed", fallback.Content(i18n.French)[fallback.HeroTitle])
}

func TestRoomsIsSingleFallbackRoom(t *testing.T) {
	rs := fallback.Rooms()
	require.Len(t, rs, 1)
	assert.Equal(t, fallback.Room(), rs[0])
	assert.Equal(t, fallback.ID, rs[0].ID)

	rs[0].Amenities[0] = "mutated"
	assert.Equal(t, "Free WiFi", fallback.Room().Amenities[0])
}
