package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/internal/domain"
)

func TestStringListValueAndScan(t *testing.T) {
	v, err := domain.StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = domain.StringList{"WiFi", "Parking"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["WiFi","Parking"]`, v)

	var l domain.StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, domain.StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	require.NoError(t, l.Scan("  "))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("{not json"))
}

func TestRoomImagesCappedAndUnique(t *testing.T) {
	var r domain.Room
	for _, img := range []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg"} {
		require.True(t, r.AddImage(img))
	}
	assert.False(t, r.AddImage("/e.jpg"), "fifth image refused")
	assert.Len(t, r.Images, domain.MaxRoomImages)

	require.True(t, r.RemoveImage(0))
	assert.False(t, r.AddImage("/b.jpg"), "duplicate refused")
	assert.True(t, r.AddImage("/e.jpg"))
	assert.Equal(t, domain.StringList{"/b.jpg", "/c.jpg", "/d.jpg", "/e.jpg"}, r.Images)
	assert.False(t, r.RemoveImage(9))
}

func TestAmenityHelpers(t *testing.T) {
	var p domain.PropertyInfo
	assert.False(t, p.AddAmenity("   "))
	assert.True(t, p.AddAmenity(" WiFi "))
	assert.True(t, p.AddAmenity("Garden"))
	assert.Equal(t, domain.StringList{"WiFi", "Garden"}, p.Amenities)

	assert.True(t, p.RemoveAmenity(0))
	assert.Equal(t, domain.StringList{"Garden"}, p.Amenities)
	assert.False(t, p.RemoveAmenity(-1))

	var r domain.Room
	for i := 0; i < 10; i++ {
		r.AddAmenity("x")
	}
	assert.Len(t, r.Amenities, 10, "amenities are uncapped")
}

func TestTranslationIsNew(t *testing.T) {
	assert.True(t, domain.ContentTranslation{}.IsNew())
	assert.True(t, domain.ContentTranslation{ID: domain.TempIDPrefix + "abc-en"}.IsNew())
	assert.False(t, domain.ContentTranslation{ID: "9b1d"}.IsNew())
}
