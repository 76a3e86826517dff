package domain

import "strings"

// MaxRoomImages caps the gallery selection for a single room.
const MaxRoomImages = 4

type Room struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	MaxGuests     int        `db:"max_guests"`
	BedType       string     `db:"bed_type"`
	SizeSqm       int        `db:"size_sqm"`
	PricePerNight float64    `db:"price_per_night"`
	Amenities     StringList `db:"amenities_json"`
	Images        StringList `db:"images_json"`
	IsAvailable   bool       `db:"is_available"`
	SortOrder     int        `db:"sort_order"`
	CreatedAt     string     `db:"created_at"`
	UpdatedAt     string     `db:"updated_at"`
}

func (r *Room) AddAmenity(a string) bool {
	return r.Amenities.add(a, 0)
}

func (r *Room) RemoveAmenity(i int) bool {
	return r.Amenities.removeAt(i)
}

// AddImage selects an image; refused once MaxRoomImages are selected or if already present.
func (r *Room) AddImage(url string) bool {
	if r.Images.Contains(strings.TrimSpace(url)) {
		return false
	}
	return r.Images.add(url, MaxRoomImages)
}

func (r *Room) RemoveImage(i int) bool {
	return r.Images.removeAt(i)
}
