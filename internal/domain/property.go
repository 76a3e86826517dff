package domain

import "strings"

type PropertyInfo struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	Address       string     `db:"address"`
	MaxGuests     int        `db:"max_guests"`
	Bedrooms      int        `db:"bedrooms"`
	Bathrooms     int        `db:"bathrooms"`
	PricePerNight float64    `db:"price_per_night"`
	Currency      string     `db:"currency"`
	Amenities     StringList `db:"amenities_json"`
	Images        StringList `db:"images_json"`
}

// AddAmenity appends a trimmed, non-empty amenity.
func (p *PropertyInfo) AddAmenity(a string) bool {
	return p.Amenities.add(a, 0)
}

func (p *PropertyInfo) RemoveAmenity(i int) bool {
	return p.Amenities.removeAt(i)
}

// AddImage appends an image URL unless it is already selected.
func (p *PropertyInfo) AddImage(url string) bool {
	if p.Images.Contains(strings.TrimSpace(url)) {
		return false
	}
	return p.Images.add(url, 0)
}

func (p *PropertyInfo) RemoveImage(i int) bool {
	return p.Images.removeAt(i)
}
